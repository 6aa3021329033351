// Package http provides HTTP middleware for authenticating employees and
// limiting their request rate.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	authUseCase "github.com/xenosis/employees/internal/auth/usecase"
	apperrors "github.com/xenosis/employees/internal/errors"
	"github.com/xenosis/employees/internal/httputil"
)

// realm is advertised in the WWW-Authenticate challenge.
const realm = "employees"

// AuthenticationMiddleware authenticates requests with HTTP Basic credentials
// (email and password) and stores the resulting principal in the request
// context, where the authorization decorators pick it up.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Unknown email or wrong password → 401 Unauthorized
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(authUC authUseCase.AuthenticationUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			logger.Debug("authentication failed: missing or malformed basic credentials")
			unauthorized(c, apperrors.ErrUnauthorized, logger)
			return
		}

		principal, err := authUC.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrUnauthorized) {
				logger.Debug("authentication failed", slog.String("email", email))
				unauthorized(c, err, logger)
				return
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := authDomain.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.Int64("employee_id", principal.ID))

		c.Next()
	}
}

func unauthorized(c *gin.Context, err error, logger *slog.Logger) {
	c.Header("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
	httputil.HandleErrorGin(c, err, logger)
	c.Abort()
}

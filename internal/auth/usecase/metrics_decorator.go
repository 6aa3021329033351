package usecase

import (
	"context"
	"time"

	employeeDomain "github.com/xenosis/employees/internal/employee/domain"
	"github.com/xenosis/employees/internal/metrics"
)

// authenticationUseCaseWithMetrics decorates AuthenticationUseCase with metrics instrumentation.
type authenticationUseCaseWithMetrics struct {
	next    AuthenticationUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthenticationUseCaseWithMetrics wraps an AuthenticationUseCase with metrics recording.
func NewAuthenticationUseCaseWithMetrics(
	useCase AuthenticationUseCase,
	m metrics.BusinessMetrics,
) AuthenticationUseCase {
	return &authenticationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for authentication attempts.
func (a *authenticationUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	email, password string,
) (*employeeDomain.Principal, error) {
	start := time.Now()
	principal, err := a.next.Authenticate(ctx, email, password)
	metrics.Observe(ctx, a.metrics, "auth", "authenticate", start, err)
	return principal, err
}

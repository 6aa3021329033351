package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// employeeCORSConfig allows browser front ends to drive the employee API with
// Basic credentials and read the headers clients need for retries and auth prompts.
func employeeCORSConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"X-Request-Id", "Retry-After", "WWW-Authenticate"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// createCORSMiddleware returns nil when CORS is off or the origin list is empty.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but CORS_ALLOW_ORIGINS is empty, skipping")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))
	return cors.New(employeeCORSConfig(origins))
}

// parseOrigins splits a comma-separated origin list, dropping blanks.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return slices.DeleteFunc(origins, func(o string) bool { return o == "" })
}

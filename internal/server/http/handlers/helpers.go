package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sellerdesk/sellerdesk/internal/domain/errors"
	"github.com/sellerdesk/sellerdesk/internal/server/http/middleware"
)

// CurrentCustomerID extracts the authenticated customer identifier from context.
func CurrentCustomerID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.CustomerIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// errorStatus maps domain error classes onto HTTP status codes. Upstream
// transport and server failures surface as bad gateway since this service
// only proxies them.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrNetwork), errors.Is(err, domainErrors.ErrServer):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

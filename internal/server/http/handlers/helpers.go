package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/scentshop/internal/domain/errors"
	"github.com/polkiloo/scentshop/internal/domain/model"
	"github.com/polkiloo/scentshop/internal/server/http/dto"
	"github.com/polkiloo/scentshop/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) model.UserRole {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.UserRole)
	return role
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// reported as a generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var (
		outOfStock *domainErrors.OutOfStockError
		stock      *domainErrors.StockError
	)

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domainErrors.ErrValidation),
		errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrPaymentVerification),
		errors.Is(err, domainErrors.ErrUnpaidShipment),
		errors.As(err, &outOfStock),
		errors.As(err, &stock):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, domainErrors.ErrEmailNotVerified):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrAlreadyPaid),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrNotCancellable),
		errors.Is(err, domainErrors.ErrStatusConflict):
		status, message = http.StatusConflict, err.Error()
	}

	c.JSON(status, dto.ErrorResponse{Error: message})
}

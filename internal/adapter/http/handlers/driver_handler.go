package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "boxertrucks/internal/adapter/http/dto/request"
	response "boxertrucks/internal/adapter/http/dto/response"
	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/usecase"
	"boxertrucks/pkg"
)

// DriverHandler handles HTTP requests for worker registration.

type DriverHandler struct {
	usecase usecase.IDriverUseCase
}

func NewDriverHandler(uc usecase.IDriverUseCase) *DriverHandler {
	return &DriverHandler{usecase: uc}
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var payload request.DriverCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DRIVER_INPUT", "Invalid driver payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	driver, err := h.usecase.Create(c.Request.Context(), payload.FullName, payload.Phone, entities.VehicleType(payload.VehicleType))
	if err != nil {
		appErr := mapDriverError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDriver(driver))
}

func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDriverError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDrivers(drivers))
}

func mapDriverError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDriverName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

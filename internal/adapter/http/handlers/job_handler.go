package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "boxertrucks/internal/adapter/http/dto/request"
	response "boxertrucks/internal/adapter/http/dto/response"
	"boxertrucks/internal/usecase"
	"boxertrucks/pkg"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for the job lifecycle.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob commits a quote into a job.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.JobCreatedResponse{JobID: job.ID, Status: string(job.Status)})
}

// AssignJob replaces the job's worker set and commits its pay range.
func (h *JobHandler) AssignJob(c *gin.Context) {
	var payload request.AssignJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	if err := payload.Validate(); err != nil {
		appErr := pkg.NewDomainErrorSimple("HELPERS_INVALID", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err := h.usecase.Assign(c.Request.Context(), c.Param("job_id"), payload.MainDriverID, payload.HelperIDs)
	h.respondTransition(c, err)
}

// StartJob starts the job clock.
func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

// CompleteJob stops the job clock and settles pay against actual hours.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

// CancelJob cancels a job that has not reached a terminal state.
func (h *JobHandler) CancelJob(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// GetJobDetails returns the job snapshot with its assignment list.
func (h *JobHandler) GetJobDetails(c *gin.Context) {
	details, err := h.usecase.GetDetails(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobDetails(details))
}

func (h *JobHandler) transition(c *gin.Context, op func(ctx context.Context, jobID string) error) {
	h.respondTransition(c, op(c.Request.Context(), c.Param("job_id")))
}

func (h *JobHandler) respondTransition(c *gin.Context, err error) {
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKResponse{OK: true})
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMainDriverInvalid):
		return pkg.NewDomainErrorSimple("MAIN_DRIVER_INVALID", "Main driver must be active with a box truck, van, or pickup", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHelpersInvalid):
		return pkg.NewDomainErrorSimple("HELPERS_INVALID", "One or more helpers not found or inactive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotAssignable),
		errors.Is(err, usecase.ErrJobNotStartable),
		errors.Is(err, usecase.ErrJobNotInProgress),
		errors.Is(err, usecase.ErrJobMissingStart),
		errors.Is(err, usecase.ErrJobNotCancellable):
		return pkg.NewDomainErrorSimple("INVALID_JOB_STATE", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package routes

import (
	"boxertrucks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathJobs    = "/jobs"
	PathDrivers = "/drivers"
)

func addMovingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, jobHandler *handlers.JobHandler, driverHandler *handlers.DriverHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/estimate", quoteHandler.CreateEstimate)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJobDetails)
		jobs.POST("/:job_id/assign", jobHandler.AssignJob)
		jobs.POST("/:job_id/start", jobHandler.StartJob)
		jobs.POST("/:job_id/complete", jobHandler.CompleteJob)
		jobs.POST("/:job_id/cancel", jobHandler.CancelJob)
	}

	drivers := rg.Group(PathDrivers)
	{
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("", driverHandler.ListDrivers)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"riskwise/internal/controllers"
	"riskwise/internal/middleware"
)

// RegisterAssessmentRoutes wires the assessment endpoints. Everything except
// the health probe sits behind JWT auth.
func RegisterAssessmentRoutes(router *gin.Engine, controller *controllers.AssessmentController) {
	router.GET("/assessment/health", controller.EngineHealth)

	assessment := router.Group("/assessment")
	assessment.Use(middleware.AuthMiddleware())
	{
		assessment.POST("", controller.CreateAssessment)
		assessment.POST("/async", controller.CreateAssessmentAsync)

		assessment.GET("/me", controller.GetUserAssessments)
		assessment.GET("/me/date-range", controller.GetAssessmentsByDateRange)
		assessment.GET("/me/trend", controller.GetRiskTrend)

		assessment.POST("/what-if", controller.WhatIfAssessment)
		assessment.GET("/what-if/:scenario_id", controller.GetScenario)

		assessment.GET("/jobs", controller.GetUserJobs)
		assessment.GET("/job/:job_id/status", controller.GetJobStatus)
		assessment.GET("/job/:job_id/result", controller.GetJobResult)
		assessment.POST("/job/:job_id/cancel", controller.CancelJob)

		assessment.GET("/:id", controller.GetAssessmentByID)
		assessment.DELETE("/:id", controller.DeleteAssessment)
	}
}

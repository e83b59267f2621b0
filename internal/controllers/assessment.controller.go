package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riskwise/internal/models"
	"riskwise/internal/repository"
	"riskwise/internal/risk"
	"riskwise/internal/services"
)

// AssessmentJobSubmitter is the slice of the job worker the controller needs.
type AssessmentJobSubmitter interface {
	SubmitJob(jobRequest models.AssessmentJobRequest) error
}

// ScenarioCache stores what-if results; satisfied by cache.RedisClient.
type ScenarioCache interface {
	StoreScenarioResult(scenarioID string, result map[string]interface{}, duration time.Duration) error
	GetScenarioResult(scenarioID string) (map[string]interface{}, bool, error)
}

const scenarioTTL = time.Hour

type AssessmentController struct {
	repo     repository.AssessmentRepository
	jobRepo  repository.AssessmentJobRepository
	worker   AssessmentJobSubmitter
	engine   *risk.Engine
	insights services.InsightGenerator
	cache    ScenarioCache
}

func NewAssessmentController(
	repo repository.AssessmentRepository,
	jobRepo repository.AssessmentJobRepository,
	worker AssessmentJobSubmitter,
	engine *risk.Engine,
	insights services.InsightGenerator,
	cache ScenarioCache,
) *AssessmentController {
	return &AssessmentController{
		repo:     repo,
		jobRepo:  jobRepo,
		worker:   worker,
		engine:   engine,
		insights: insights,
		cache:    cache,
	}
}

func reportPayload(report *risk.AssessmentReport) []gin.H {
	results := make([]gin.H, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, gin.H{
			"condition":       res.Condition,
			"display_name":    risk.DisplayName(res.Condition),
			"risk_percentage": res.RiskPercentage,
			"key_factors":     res.KeyFactors,
		})
	}
	return results
}

// CreateAssessment godoc
// @Summary Run a risk assessment
// @Description Score all tracked conditions from the submitted patient fields and persist the result (requires authentication)
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body models.AssessmentInput true "Patient fields"
// @Success 201 {object} map[string]interface{} "Assessment result"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Assessment failed"
// @Router /assessment [post]
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var input models.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assessment input",
			"error":   err.Error(),
		})
		return
	}

	rec, err := risk.NewPatientRecord(input.ToPatientInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Patient record rejected",
			"error":   err.Error(),
		})
		return
	}

	report, err := ac.engine.CalculateAllRisks(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Risk assessment failed",
			"error":   err.Error(),
		})
		return
	}

	assessment := models.NewAssessment(userID.(uint), input, rec)
	assessment.SetReport(report)

	// Narrative failure is logged, not surfaced: the scores stand on their own.
	if ac.insights != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		summary, _, _, err := ac.insights.GenerateRiskInsights(ctx, rec, report)
		cancel()
		if err != nil {
			log.Printf("Narrative generation failed for user %d: %v", userID.(uint), err)
		} else {
			assessment.Narrative = summary
		}
	}

	if err := ac.repo.SaveAssessment(assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Assessment completed",
		"data": gin.H{
			"assessment_id": assessment.ID,
			"bmi":           rec.BMI,
			"results":       reportPayload(report),
			"narrative":     assessment.Narrative,
		},
	})
}

// CreateAssessmentAsync godoc
// @Summary Submit an assessment job
// @Description Queue a risk assessment for background processing; narrative generation happens off the request path (requires authentication)
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body models.AssessmentInput true "Patient fields"
// @Success 202 {object} map[string]interface{} "Job accepted"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 429 {object} map[string]interface{} "Too many active jobs"
// @Router /assessment/async [post]
func (ac *AssessmentController) CreateAssessmentAsync(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var input models.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assessment input",
			"error":   err.Error(),
		})
		return
	}

	// Reject degenerate input before queueing; the worker would only fail later.
	if _, err := risk.NewPatientRecord(input.ToPatientInput()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Patient record rejected",
			"error":   err.Error(),
		})
		return
	}

	payload, err := json.Marshal(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to encode job input",
			"error":   err.Error(),
		})
		return
	}

	job := &models.AssessmentJob{
		ID:           uuid.New().String(),
		UserID:       userID.(uint),
		Status:       models.JobStatusPending,
		InputPayload: string(payload),
	}

	if err := ac.jobRepo.SaveJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create assessment job",
			"error":   err.Error(),
		})
		return
	}

	jobRequest := models.AssessmentJobRequest{
		JobID:  job.ID,
		UserID: job.UserID,
		Input:  input,
	}

	if err := ac.worker.SubmitJob(jobRequest); err != nil {
		errMsg := err.Error()
		_ = ac.jobRepo.UpdateJobStatus(job.ID, models.JobStatusFailed, &errMsg)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "Failed to queue assessment job",
			"error":   errMsg,
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Assessment job queued",
		"data": gin.H{
			"job_id":     job.ID,
			"job_status": job.Status,
			"created_at": job.CreatedAt,
		},
	})
}

// GetJobStatus godoc
// @Summary Get assessment job status
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job status"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /assessment/job/{job_id}/status [get]
func (ac *AssessmentController) GetJobStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	jobID := c.Param("job_id")
	owned, err := ac.jobRepo.IsJobOwnedByUser(jobID, userID.(uint))
	if err != nil || !owned {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
		return
	}

	job, err := ac.jobRepo.GetJobByID(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"job_id":        job.ID,
			"job_status":    job.Status,
			"error_message": job.ErrorMessage,
			"created_at":    job.CreatedAt,
			"completed_at":  job.CompletedAt,
		},
	})
}

// GetJobResult godoc
// @Summary Get assessment job result
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Completed assessment"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job not finished"
// @Router /assessment/job/{job_id}/result [get]
func (ac *AssessmentController) GetJobResult(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	jobID := c.Param("job_id")
	owned, err := ac.jobRepo.IsJobOwnedByUser(jobID, userID.(uint))
	if err != nil || !owned {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
		return
	}

	job, err := ac.jobRepo.GetJobByID(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
		return
	}

	if job.Status != models.JobStatusCompleted || job.Assessment == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":     "error",
			"message":    "Job has not completed",
			"job_status": job.Status,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"job_id":        job.ID,
			"assessment_id": job.Assessment.ID,
			"results":       reportPayload(job.Assessment.Report()),
			"narrative":     job.Assessment.Narrative,
			"completed_at":  job.CompletedAt,
		},
	})
}

// CancelJob godoc
// @Summary Cancel a queued assessment job
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job cancelled"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /assessment/job/{job_id}/cancel [post]
func (ac *AssessmentController) CancelJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	jobID := c.Param("job_id")
	owned, err := ac.jobRepo.IsJobOwnedByUser(jobID, userID.(uint))
	if err != nil || !owned {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Job not found"})
		return
	}

	if err := ac.jobRepo.CancelJob(jobID); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Job cannot be cancelled",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Job cancelled"})
}

// GetUserJobs godoc
// @Summary List the caller's assessment jobs
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Jobs"
// @Router /assessment/jobs [get]
func (ac *AssessmentController) GetUserJobs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	jobs, err := ac.jobRepo.GetJobsByUserID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch jobs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": jobs})
}

// WhatIfAssessment godoc
// @Summary Re-score a stored assessment with hypothetical changes
// @Description Apply field overrides to a stored assessment, re-run the engine and cache the scenario result (requires authentication)
// @Tags assessment
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body models.WhatIfInput true "Field overrides"
// @Success 200 {object} map[string]interface{} "Scenario result"
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessment/what-if [post]
func (ac *AssessmentController) WhatIfAssessment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	var overrides models.WhatIfInput
	if err := c.ShouldBindJSON(&overrides); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid what-if input",
			"error":   err.Error(),
		})
		return
	}

	assessment, err := ac.repo.GetAssessmentByID(overrides.AssessmentID)
	if err != nil || assessment.UserID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Assessment not found"})
		return
	}

	input := assessmentToInput(assessment)
	applyOverrides(&input, overrides)

	rec, err := risk.NewPatientRecord(input.ToPatientInput())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Patient record rejected",
			"error":   err.Error(),
		})
		return
	}

	report, err := ac.engine.CalculateAllRisks(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Risk assessment failed",
			"error":   err.Error(),
		})
		return
	}

	baseline := assessment.Report()
	deltas := make([]gin.H, 0, len(report.Results))
	for i, res := range report.Results {
		deltas = append(deltas, gin.H{
			"condition": res.Condition,
			"delta":     res.RiskPercentage - baseline.Results[i].RiskPercentage,
		})
	}

	scenarioID := uuid.New().String()
	result := map[string]interface{}{
		"scenario_id":   scenarioID,
		"assessment_id": assessment.ID,
		"user_id":       userID.(uint),
		"bmi":           rec.BMI,
		"results":       reportPayload(report),
		"deltas":        deltas,
	}

	if ac.cache != nil {
		if err := ac.cache.StoreScenarioResult(scenarioID, result, scenarioTTL); err != nil {
			log.Printf("Failed to cache scenario %s: %v", scenarioID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

// GetScenario godoc
// @Summary Fetch a cached what-if scenario
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param scenario_id path string true "Scenario ID"
// @Success 200 {object} map[string]interface{} "Scenario result"
// @Failure 404 {object} map[string]interface{} "Scenario not found or expired"
// @Router /assessment/what-if/{scenario_id} [get]
func (ac *AssessmentController) GetScenario(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	if ac.cache == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Scenario cache unavailable"})
		return
	}

	scenarioID := c.Param("scenario_id")
	result, found, err := ac.cache.GetScenarioResult(scenarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to read scenario cache",
			"error":   err.Error(),
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Scenario not found or expired"})
		return
	}

	// Scenario results are user-scoped
	if scenarioOwner(result) != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Scenario not found or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": result})
}

// GetAssessmentByID godoc
// @Summary Get one assessment
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Assessment"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessment/{id} [get]
func (ac *AssessmentController) GetAssessmentByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid assessment ID"})
		return
	}

	assessment, err := ac.repo.GetAssessmentByID(uint(id))
	if err != nil || assessment.UserID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Assessment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"assessment": assessment,
			"results":    reportPayload(assessment.Report()),
		},
	})
}

// GetUserAssessments godoc
// @Summary List the caller's assessments
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Assessments"
// @Router /assessment/me [get]
func (ac *AssessmentController) GetUserAssessments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	assessments, err := ac.repo.GetAssessmentsByUserID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch assessments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": assessments})
}

// GetAssessmentsByDateRange godoc
// @Summary List the caller's assessments in a date range
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Assessments"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Router /assessment/me/date-range [get]
func (ac *AssessmentController) GetAssessmentsByDateRange(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid start_date, use YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid end_date, use YYYY-MM-DD"})
		return
	}
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	assessments, err := ac.repo.GetAssessmentsByUserIDAndDateRange(userID.(uint), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch assessments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": assessments})
}

// GetRiskTrend godoc
// @Summary Risk score trend for the caller
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Scores over time"
// @Router /assessment/me/trend [get]
func (ac *AssessmentController) GetRiskTrend(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid start_date, use YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid end_date, use YYYY-MM-DD"})
		return
	}
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	scores, err := ac.repo.GetRiskTrendByUserID(userID.(uint), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch risk trend",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": scores})
}

// DeleteAssessment godoc
// @Summary Delete an assessment
// @Tags assessment
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessment/{id} [delete]
func (ac *AssessmentController) DeleteAssessment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized access"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid assessment ID"})
		return
	}

	assessment, err := ac.repo.GetAssessmentByID(uint(id))
	if err != nil || assessment.UserID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Assessment not found"})
		return
	}

	if err := ac.repo.DeleteAssessment(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Assessment deleted"})
}

// EngineHealth godoc
// @Summary Scoring engine health
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]interface{} "Engine status"
// @Router /assessment/health [get]
func (ac *AssessmentController) EngineHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"conditions": ac.engine.Conditions(),
		},
	})
}

// scenarioOwner reads the user_id out of a cached scenario; the value comes
// back as float64 after the JSON round trip through Redis.
func scenarioOwner(result map[string]interface{}) uint {
	switch v := result["user_id"].(type) {
	case float64:
		return uint(v)
	case uint:
		return v
	default:
		return 0
	}
}

// assessmentToInput rebuilds the request payload from a stored row.
func assessmentToInput(a *models.Assessment) models.AssessmentInput {
	return models.AssessmentInput{
		Age:                 a.Age,
		Gender:              a.Gender,
		Height:              a.Height,
		Weight:              a.Weight,
		Smoking:             a.Smoking,
		Alcohol:             a.Alcohol,
		Exercise:            a.Exercise,
		Diet:                a.Diet,
		GestationalDiabetes: a.GestationalDiabetes,
		DepressionHistory:   a.DepressionHistory,
		FamilyDiabetes:      a.FamilyDiabetes,
		FamilyHypertension:  a.FamilyHypertension,
		FamilyCancer:        a.FamilyCancer,
		SystolicBP:          a.SystolicBP,
		DiastolicBP:         a.DiastolicBP,
		HeartRate:           a.HeartRate,
		FastingGlucose:      a.FastingGlucose,
		HbA1c:               a.HbA1c,
		TotalCholesterol:    a.TotalCholesterol,
		LDLCholesterol:      a.LDLCholesterol,
		HDLCholesterol:      a.HDLCholesterol,
	}
}

func applyOverrides(input *models.AssessmentInput, o models.WhatIfInput) {
	if o.Weight != nil {
		input.Weight = *o.Weight
	}
	if o.Smoking != nil {
		input.Smoking = *o.Smoking
	}
	if o.Alcohol != nil {
		input.Alcohol = *o.Alcohol
	}
	if o.Exercise != nil {
		input.Exercise = *o.Exercise
	}
	if o.Diet != nil {
		input.Diet = *o.Diet
	}
	if o.SystolicBP != nil {
		input.SystolicBP = *o.SystolicBP
	}
	if o.DiastolicBP != nil {
		input.DiastolicBP = *o.DiastolicBP
	}
	if o.FastingGlucose != nil {
		input.FastingGlucose = *o.FastingGlucose
	}
	if o.HbA1c != nil {
		input.HbA1c = *o.HbA1c
	}
	if o.LDLCholesterol != nil {
		input.LDLCholesterol = *o.LDLCholesterol
	}
	if o.HDLCholesterol != nil {
		input.HDLCholesterol = *o.HDLCholesterol
	}
}

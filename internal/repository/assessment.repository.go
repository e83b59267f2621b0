package repository

import (
	"time"

	"gorm.io/gorm"

	"riskwise/internal/models"
)

type AssessmentRepository interface {
	SaveAssessment(assessment *models.Assessment) error
	UpdateAssessment(assessment *models.Assessment) error
	GetAssessmentByID(id uint) (*models.Assessment, error)
	GetAssessmentsByUserID(userID uint) ([]models.Assessment, error)
	GetAssessmentsByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Assessment, error)
	DeleteAssessment(id uint) error
	GetRiskTrendByUserID(userID uint, startDate, endDate time.Time) ([]AssessmentScore, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db}
}

func (r *assessmentRepository) SaveAssessment(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) UpdateAssessment(assessment *models.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) GetAssessmentByID(id uint) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) GetAssessmentsByUserID(userID uint) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) GetAssessmentsByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, startDate, endDate).
		Order("created_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) DeleteAssessment(id uint) error {
	return r.db.Delete(&models.Assessment{}, id).Error
}

// AssessmentScore is one point of a user's risk trend.
type AssessmentScore struct {
	DiabetesRisk       float64   `json:"diabetes_risk"`
	HypertensionRisk   float64   `json:"hypertension_risk"`
	CardiovascularRisk float64   `json:"cardiovascular_risk"`
	DepressionRisk     float64   `json:"depression_risk"`
	CancerRisk         float64   `json:"cancer_risk"`
	CreatedAt          time.Time `json:"created_at"`
}

func (r *assessmentRepository) GetRiskTrendByUserID(userID uint, startDate, endDate time.Time) ([]AssessmentScore, error) {
	var assessments []models.Assessment
	err := r.db.Model(&models.Assessment{}).
		Select("diabetes_risk, hypertension_risk, cardiovascular_risk, depression_risk, cancer_risk, created_at").
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, startDate, endDate).
		Order("created_at DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}

	scores := make([]AssessmentScore, 0, len(assessments))
	for _, a := range assessments {
		scores = append(scores, AssessmentScore{
			DiabetesRisk:       a.DiabetesRisk,
			HypertensionRisk:   a.HypertensionRisk,
			CardiovascularRisk: a.CardiovascularRisk,
			DepressionRisk:     a.DepressionRisk,
			CancerRisk:         a.CancerRisk,
			CreatedAt:          a.CreatedAt,
		})
	}
	return scores, nil
}

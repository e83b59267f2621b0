package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"riskwise/internal/models"
	"riskwise/internal/risk"
)

const (
	DefaultNumAssessments = 1000
	DefaultNumUsers       = 50
)

// ==================== SEEDING ====================

// SeedAssessments creates demo assessments spread over numUsers synthetic
// users. Every row is scored by the real engine so trends and what-if
// scenarios behave like production data.
func SeedAssessments(numAssessments, numUsers int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	log.Printf("Starting to seed %d assessments across %d users", numAssessments, numUsers)

	engine := risk.NewEngine()
	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	startTime := time.Now()

	batchSize := 500
	for i := 0; i < numAssessments; i += batchSize {
		end := i + batchSize
		if end > numAssessments {
			end = numAssessments
		}

		var rows []models.Assessment
		for j := i; j < end; j++ {
			row, err := generateAssessment(engine, r, numUsers)
			if err != nil {
				return fmt.Errorf("failed to generate assessment %d: %v", j, err)
			}
			rows = append(rows, *row)
		}

		if err := db.CreateInBatches(&rows, 100).Error; err != nil {
			return fmt.Errorf("failed to create assessments %d-%d: %v", i, end-1, err)
		}

		log.Printf("Created assessments %d-%d", i, end-1)
	}

	elapsed := time.Since(startTime)
	log.Printf("Successfully created %d assessments in %s (%.2f rows/sec)",
		numAssessments, elapsed, float64(numAssessments)/elapsed.Seconds())
	return nil
}

// DeleteSeededAssessments removes assessments for the synthetic user ID range.
func DeleteSeededAssessments(startUserID, endUserID int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	result := db.Unscoped().
		Where("user_id BETWEEN ? AND ?", startUserID, endUserID).
		Delete(&models.Assessment{})
	if result.Error != nil {
		return fmt.Errorf("error deleting assessments: %v", result.Error)
	}

	log.Printf("Deleted %d assessments", result.RowsAffected)
	return nil
}

// GetAssessmentCount reports how many assessment rows exist.
func GetAssessmentCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&models.Assessment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assessments: %v", err)
	}
	return count, nil
}

// ==================== CORE DATABASE FUNCTIONS ====================

func connectToDatabase() (*gorm.DB, error) {
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "riskwise")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbHost, dbUser, dbPassword, dbName, dbPort, dbSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// ==================== HELPER FUNCTIONS ====================

var (
	genders    = []string{"Female", "Male", "Other"}
	smoking    = []string{"Never", "Never", "Former", "Current"}
	alcohol    = []string{"None", "Occasional", "Moderate", "Heavy"}
	exercise   = []string{"Sedentary", "Light", "Moderate", "Active", "Very Active"}
	diets      = []string{"Standard", "Standard", "Mediterranean", "Plant-based", "Low-carb", "Other"}
	cancerType = []string{"None", "None", "None", "Breast", "Prostate", "Lung", "Colorectal", "Other"}
)

func generateAssessment(engine *risk.Engine, r *mathrand.Rand, numUsers int) (*models.Assessment, error) {
	input := models.AssessmentInput{
		Age:                 18 + r.Intn(73),
		Gender:              genders[r.Intn(len(genders))],
		Height:              150 + r.Float64()*45,
		Weight:              45 + r.Float64()*75,
		Smoking:             smoking[r.Intn(len(smoking))],
		Alcohol:             alcohol[r.Intn(len(alcohol))],
		Exercise:            exercise[r.Intn(len(exercise))],
		Diet:                diets[r.Intn(len(diets))],
		GestationalDiabetes: r.Intn(10) == 0,
		DepressionHistory:   r.Intn(6) == 0,
		FamilyDiabetes:      r.Intn(4) == 0,
		FamilyHypertension:  r.Intn(4) == 0,
		FamilyCancer:        cancerType[r.Intn(len(cancerType))],
		SystolicBP:          100 + r.Intn(70),
		DiastolicBP:         60 + r.Intn(40),
		HeartRate:           55 + r.Intn(50),
		FastingGlucose:      75 + r.Float64()*80,
		HbA1c:               4.5 + r.Float64()*3.5,
		TotalCholesterol:    150 + r.Float64()*120,
		LDLCholesterol:      70 + r.Float64()*130,
		HDLCholesterol:      30 + r.Float64()*50,
	}

	rec, err := risk.NewPatientRecord(input.ToPatientInput())
	if err != nil {
		return nil, err
	}

	report, err := engine.CalculateAllRisks(rec)
	if err != nil {
		return nil, err
	}

	row := models.NewAssessment(uint(1+r.Intn(numUsers)), input, rec)
	row.SetReport(report)

	// Spread rows over the last 90 days so trend queries have data
	createdAt := time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour)
	row.CreatedAt = createdAt
	row.UpdatedAt = createdAt

	return row, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

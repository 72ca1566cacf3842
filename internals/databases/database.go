package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"folio_backend/internals/configs"
	contactModel "folio_backend/internals/features/contact/model"
	profileModel "folio_backend/internals/features/profile/model"
	projectModel "folio_backend/internals/features/projects/model"
	resumeModel "folio_backend/internals/features/resume/model"
	serviceModel "folio_backend/internals/features/services/model"
	settingsModel "folio_backend/internals/features/settings/model"
	testimonialModel "folio_backend/internals/features/testimonials/model"
	authModel "folio_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=folio&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	DB = db
	log.Println("DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates or updates the one-table-per-content-type schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authModel.AdminUserModel{},
		&profileModel.ProfileModel{},
		&contactModel.ContactInfoModel{},
		&contactModel.ContactMessageModel{},
		&serviceModel.ServiceModel{},
		&projectModel.ProjectModel{},
		&testimonialModel.TestimonialModel{},
		&resumeModel.EducationModel{},
		&resumeModel.CertificationModel{},
		&resumeModel.SkillModel{},
		&resumeModel.ExperienceModel{},
		&settingsModel.SettingsModel{},
	)
}

package database

import (
	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/crypto"

	"gorm.io/gorm"
)

// Change these after the first deployment with `folio setting`.
const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
)

// EnsureAdminAccount creates the administrator only when no credential exists.
func EnsureAdminAccount(db *gorm.DB, username, password string) error {
	empty, err := isTableEmpty(db, &model.User{})
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	if err := db.Create(&model.User{Username: username, PasswordHash: hash}).Error; err != nil {
		return err
	}
	logger.Noticef("default admin account %q created, change its password", username)
	return nil
}

// EnsureSampleContent inserts one illustrative row into every empty
// collection among profile, experience, project and technology.
func EnsureSampleContent(db *gorm.DB) error {
	samples := []any{
		&model.Profile{
			Id:         model.ProfileID,
			Name:       "Your Name",
			Title:      "Full Stack Developer",
			Department: "Software Engineering",
			Bio:        "Welcome to my portfolio! I am a passionate developer with experience in modern web technologies. I love creating innovative solutions and learning new technologies.",
			Email:      "your.email@example.com",
			Phone:      "+1234567890",
			Location:   "Your City, Country",
		},
		&model.Experience{
			Company:     "Sample Company",
			Position:    "Full Stack Developer",
			StartDate:   "Jan 2023",
			EndDate:     "Present",
			Current:     true,
			Description: "Developed and maintained web applications using modern technologies.",
		},
		&model.Project{
			Title:        "Portfolio Website",
			Description:  "A responsive portfolio website with an admin panel for editing its content.",
			Technologies: "Go, Gin, GORM, SQLite, HTML, CSS, JavaScript",
			ProjectURL:   "https://example.com",
			GithubURL:    "https://github.com/example/portfolio",
			Featured:     true,
		},
		&model.Technology{
			Name:        "Go",
			Category:    "Backend",
			Proficiency: 5,
			Icon:        "fab fa-golang",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sample := range samples {
			empty, err := isTableEmpty(tx, sample)
			if err != nil {
				return err
			}
			if !empty {
				continue
			}
			if err := tx.Create(sample).Error; err != nil {
				return err
			}
			logger.Debugf("seeded sample %T", sample)
		}
		return nil
	})
}

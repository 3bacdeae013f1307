package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/database"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createStudent(t *testing.T, db *gorm.DB, email, campus string) models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Role: models.RoleStudent, Campus: campus}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return u
}

func createInterest(t *testing.T, db *gorm.DB, name string) models.Interest {
	t.Helper()
	i := models.Interest{Name: name}
	if err := db.Create(&i).Error; err != nil {
		t.Fatalf("create interest %s: %v", name, err)
	}
	return i
}

func createSociety(t *testing.T, db *gorm.DB, name, category, campus string) models.Society {
	t.Helper()
	s := models.Society{Name: name}
	if category != "" {
		s.Category = &category
	}
	if campus != "" {
		s.Campus = &campus
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("create society %s: %v", name, err)
	}
	return s
}

func weightPtr(w float64) *float64 { return &w }

func strPtr(s string) *string { return &s }

func profileInterests(t *testing.T, db *gorm.DB, studentID string) []string {
	t.Helper()
	var p models.StudentProfile
	if err := db.First(&p, "student_id = ?", studentID).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return []string(p.Interests)
}

func edgeNames(edges []models.StudentInterest) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Interest.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gearguard-backend/internal/config"
	"gearguard-backend/internal/database"
	"gearguard-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed file schema

type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	Technicians []string `yaml:"technicians,omitempty"` // usernames
}

type EquipmentData struct {
	Name         string `yaml:"name"`
	SerialNumber string `yaml:"serial_number"`
	Location     string `yaml:"location"`
	Status       string `yaml:"status,omitempty"`
	Team         string `yaml:"team,omitempty"` // team name
}

type RequestData struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Type            string `yaml:"type"`
	Status          string `yaml:"status,omitempty"`
	Priority        string `yaml:"priority,omitempty"`
	EquipmentSerial string `yaml:"equipment_serial"`
	RequestedBy     string `yaml:"requested_by"` // username
	DurationMinutes *int   `yaml:"duration_minutes,omitempty"`
	ScheduledDate   string `yaml:"scheduled_date,omitempty"` // YYYY-MM-DD
}

type SeedFile struct {
	Users     []UserData      `yaml:"users"`
	Teams     []TeamData      `yaml:"teams"`
	Equipment []EquipmentData `yaml:"equipment"`
	Requests  []RequestData   `yaml:"requests"`
}

func main() {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = "scripts/seed.yaml"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if err := loadUsers(db, seed.Users); err != nil {
		log.Fatalf("failed to load users: %v", err)
	}
	if err := loadTeams(db, seed.Teams); err != nil {
		log.Fatalf("failed to load teams: %v", err)
	}
	if err := loadEquipment(db, seed.Equipment); err != nil {
		log.Fatalf("failed to load equipment: %v", err)
	}
	if err := loadRequests(db, seed.Requests); err != nil {
		log.Fatalf("failed to load requests: %v", err)
	}

	log.Printf("seed complete: %d users, %d teams, %d equipment, %d requests",
		len(seed.Users), len(seed.Teams), len(seed.Equipment), len(seed.Requests))
}

func loadUsers(db *gorm.DB, users []UserData) error {
	for _, u := range users {
		var existing models.User
		err := db.First(&existing, "email = ?", u.Email).Error
		if err == nil {
			log.Printf("user %s already exists, skipping", u.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		role := models.UserRole(u.Role)
		if u.Role == "" {
			role = models.UserRoleUser
		}
		if !role.IsValid() {
			return fmt.Errorf("user %s has unknown role %q", u.Username, u.Role)
		}
		password := u.Password
		if password == "" {
			password = "changeme123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Username:     u.Username,
			Email:        u.Email,
			FullName:     u.FullName,
			Role:         role,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("created user %s (%s)", u.Username, role)
	}
	return nil
}

func loadTeams(db *gorm.DB, teams []TeamData) error {
	for _, t := range teams {
		var team models.MaintenanceTeam
		err := db.First(&team, "name = ?", t.Name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			team = models.MaintenanceTeam{Name: t.Name}
			if err := db.Create(&team).Error; err != nil {
				return err
			}
			log.Printf("created team %s", t.Name)
		} else if err != nil {
			return err
		}

		for _, username := range t.Technicians {
			var user models.User
			if err := db.First(&user, "username = ?", username).Error; err != nil {
				return fmt.Errorf("team %s lists unknown technician %q: %w", t.Name, username, err)
			}
			if user.Role != models.UserRoleTechnician {
				return fmt.Errorf("team %s member %q does not hold the TECHNICIAN role", t.Name, username)
			}
			var count int64
			db.Model(&models.TeamTechnician{}).
				Where("team_id = ? AND user_id = ?", team.ID, user.ID).
				Count(&count)
			if count > 0 {
				continue
			}
			if err := db.Create(&models.TeamTechnician{TeamID: team.ID, UserID: user.ID}).Error; err != nil {
				return err
			}
			log.Printf("added %s to team %s", username, t.Name)
		}
	}
	return nil
}

func loadEquipment(db *gorm.DB, items []EquipmentData) error {
	for _, e := range items {
		var existing models.Equipment
		err := db.First(&existing, "serial_number = ?", e.SerialNumber).Error
		if err == nil {
			log.Printf("equipment %s already exists, skipping", e.SerialNumber)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		status := models.EquipmentStatus(e.Status)
		if e.Status == "" {
			status = models.EquipmentStatusActive
		}
		if !status.IsValid() {
			return fmt.Errorf("equipment %s has unknown status %q", e.SerialNumber, e.Status)
		}

		equipment := models.Equipment{
			Name:         e.Name,
			SerialNumber: e.SerialNumber,
			Location:     e.Location,
			Status:       status,
		}
		if e.Team != "" {
			var team models.MaintenanceTeam
			if err := db.First(&team, "name = ?", e.Team).Error; err != nil {
				return fmt.Errorf("equipment %s references unknown team %q: %w", e.SerialNumber, e.Team, err)
			}
			equipment.AssignedTeamID = &team.ID
		}
		if err := db.Create(&equipment).Error; err != nil {
			return err
		}
		log.Printf("created equipment %s (%s)", e.Name, e.SerialNumber)
	}
	return nil
}

func loadRequests(db *gorm.DB, requests []RequestData) error {
	for _, r := range requests {
		var equipment models.Equipment
		if err := db.First(&equipment, "serial_number = ?", r.EquipmentSerial).Error; err != nil {
			return fmt.Errorf("request %q references unknown equipment %q: %w", r.Title, r.EquipmentSerial, err)
		}
		var requester models.User
		if err := db.First(&requester, "username = ?", r.RequestedBy).Error; err != nil {
			return fmt.Errorf("request %q references unknown user %q: %w", r.Title, r.RequestedBy, err)
		}

		var count int64
		db.Model(&models.MaintenanceRequest{}).
			Where("title = ? AND equipment_id = ?", r.Title, equipment.ID).
			Count(&count)
		if count > 0 {
			log.Printf("request %q already exists, skipping", r.Title)
			continue
		}

		requestType := models.RequestType(r.Type)
		if !requestType.IsValid() {
			return fmt.Errorf("request %q has unknown type %q", r.Title, r.Type)
		}
		status := models.RequestStatus(r.Status)
		if r.Status == "" {
			status = models.RequestStatusNew
		}
		if !status.IsValid() {
			return fmt.Errorf("request %q has unknown status %q", r.Title, r.Status)
		}
		priority := models.RequestPriority(r.Priority)
		if r.Priority == "" {
			priority = models.RequestPriorityMedium
		}
		if !priority.IsValid() {
			return fmt.Errorf("request %q has unknown priority %q", r.Title, r.Priority)
		}

		request := models.MaintenanceRequest{
			Title:           r.Title,
			Description:     r.Description,
			Type:            requestType,
			Status:          status,
			Priority:        priority,
			EquipmentID:     equipment.ID,
			AssignedTeamID:  equipment.AssignedTeamID,
			RequestedByID:   requester.ID,
			DurationMinutes: r.DurationMinutes,
		}
		if r.ScheduledDate != "" {
			if requestType != models.RequestTypePreventive {
				return fmt.Errorf("request %q sets scheduled_date but is not PREVENTIVE", r.Title)
			}
			scheduled, err := time.Parse("2006-01-02", r.ScheduledDate)
			if err != nil {
				return fmt.Errorf("request %q has invalid scheduled_date: %w", r.Title, err)
			}
			request.ScheduledDate = &scheduled
		}
		if err := db.Create(&request).Error; err != nil {
			return err
		}
		log.Printf("created request %q for %s", r.Title, r.EquipmentSerial)
	}
	return nil
}

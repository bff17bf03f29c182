package models

import (
	"strings"
	"time"
)

// InvestorProfile represents the investor_profiles table. One row per owner
// identity; holding one is what gates discovery and outgoing connections.
type InvestorProfile struct {
	ID           string      `gorm:"column:id;type:varchar(255);primaryKey" json:"id"`
	UserID       string      `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"user_id"`
	Email        string      `gorm:"column:email;type:text" json:"email"`
	Name         string      `gorm:"column:name;type:text;not null" json:"name"`
	FirmName     *string     `gorm:"column:firm_name;type:text" json:"firm_name,omitempty"`
	InvestorType string      `gorm:"column:investor_type;type:text;not null" json:"investor_type"`
	CheckSize    string      `gorm:"column:check_size;type:text;not null" json:"check_size"`
	Sectors      StringArray `gorm:"column:sectors;type:jsonb" json:"sectors"`
	Stages       StringArray `gorm:"column:stages;type:jsonb" json:"stages"`
	Geography    string      `gorm:"column:geography;type:text" json:"geography"`
	Thesis       *string     `gorm:"column:thesis;type:text" json:"thesis,omitempty"`

	OnboardingCompleted bool      `gorm:"column:onboarding_completed;not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (InvestorProfile) TableName() string {
	return "investor_profiles"
}

// CreateInvestorProfileRequest is the payload for PUT /api/investor
type CreateInvestorProfileRequest struct {
	Name         string   `json:"name"`
	FirmName     *string  `json:"firm_name,omitempty"`
	InvestorType string   `json:"investor_type"`
	CheckSize    string   `json:"check_size"`
	Sectors      []string `json:"sectors"`
	Stages       []string `json:"stages"`
	Geography    string   `json:"geography"`
	Thesis       *string  `json:"thesis,omitempty"`
}

// Validate checks the payload and returns the first offending field
func (r *CreateInvestorProfileRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.Name) == "" {
		return Invalid("name", "Name is required")
	}
	if !oneOf(InvestorTypes, r.InvestorType) {
		return Invalid("investor_type", "Invalid investor type")
	}
	if !oneOf(CheckSizes, r.CheckSize) {
		return Invalid("check_size", "Invalid check size")
	}
	if len(r.Sectors) < 1 {
		return Invalid("sectors", "Select at least one sector")
	}
	for _, sector := range r.Sectors {
		if !oneOf(Industries, sector) {
			return Invalid("sectors", "Invalid sector")
		}
	}
	if len(r.Stages) < 1 {
		return Invalid("stages", "Select at least one stage")
	}
	for _, stage := range r.Stages {
		if !oneOf(Stages, stage) {
			return Invalid("stages", "Invalid stage")
		}
	}
	return nil
}

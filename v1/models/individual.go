package models

import (
	"strings"
	"time"
)

// IndividualProfile represents the individual_profiles table. Students,
// freelancers and other operators register here and wait for admin approval.
type IndividualProfile struct {
	ID           string  `gorm:"column:id;type:varchar(255);primaryKey" json:"id"`
	UserID       string  `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"user_id"`
	FullName     string  `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email        string  `gorm:"column:email;type:text;not null" json:"email"`
	Phone        string  `gorm:"column:phone;type:text;not null" json:"phone"`
	LinkedinURL  *string `gorm:"column:linkedin_url;type:text" json:"linkedin_url,omitempty"`
	PortfolioURL *string `gorm:"column:portfolio_url;type:text" json:"portfolio_url,omitempty"`
	ProfileType  string  `gorm:"column:profile_type;type:text;not null" json:"profile_type"`

	Skills          StringArray `gorm:"column:skills;type:jsonb" json:"skills"`
	ExperienceLevel *string     `gorm:"column:experience_level;type:text" json:"experience_level,omitempty"`
	ToolsUsed       *string     `gorm:"column:tools_used;type:text" json:"tools_used,omitempty"`

	LookingFor          StringArray `gorm:"column:looking_for;type:jsonb" json:"looking_for"`
	PreferredRoles      *string     `gorm:"column:preferred_roles;type:text" json:"preferred_roles,omitempty"`
	PreferredIndustries *string     `gorm:"column:preferred_industries;type:text" json:"preferred_industries,omitempty"`
	Availability        *string     `gorm:"column:availability;type:text" json:"availability,omitempty"`
	WorkMode            *string     `gorm:"column:work_mode;type:text" json:"work_mode,omitempty"`
	ExpectedPay         *string     `gorm:"column:expected_pay;type:text" json:"expected_pay,omitempty"`
	Location            *string     `gorm:"column:location;type:text" json:"location,omitempty"`

	ResumeURL    *string `gorm:"column:resume_url;type:text" json:"resume_url,omitempty"`
	Projects     *string `gorm:"column:projects;type:text" json:"projects,omitempty"`
	Achievements *string `gorm:"column:achievements;type:text" json:"achievements,omitempty"`
	GithubURL    *string `gorm:"column:github_url;type:text" json:"github_url,omitempty"`

	Approved            bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	OnboardingCompleted bool      `gorm:"column:onboarding_completed;not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (IndividualProfile) TableName() string {
	return "individual_profiles"
}

// CreateIndividualProfileRequest is the payload for PUT /api/individual
type CreateIndividualProfileRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	LinkedinURL  *string `json:"linkedin_url,omitempty"`
	PortfolioURL *string `json:"portfolio_url,omitempty"`
	ProfileType  string  `json:"profile_type"`

	Skills          []string `json:"skills"`
	ExperienceLevel *string  `json:"experience_level,omitempty"`
	ToolsUsed       *string  `json:"tools_used,omitempty"`

	LookingFor          []string `json:"looking_for"`
	PreferredRoles      *string  `json:"preferred_roles,omitempty"`
	PreferredIndustries *string  `json:"preferred_industries,omitempty"`
	Availability        *string  `json:"availability,omitempty"`
	WorkMode            *string  `json:"work_mode,omitempty"`
	ExpectedPay         *string  `json:"expected_pay,omitempty"`
	Location            *string  `json:"location,omitempty"`

	ResumeURL    *string `json:"resume_url,omitempty"`
	Projects     *string `json:"projects,omitempty"`
	Achievements *string `json:"achievements,omitempty"`
	GithubURL    *string `json:"github_url,omitempty"`
}

// Validate checks the payload and returns the first offending field
func (r *CreateIndividualProfileRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.FullName) == "" {
		return Invalid("full_name", "Name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return Invalid("email", "Please enter a valid email address")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return Invalid("phone", "Phone is required")
	}
	if !oneOf(IndividualProfileTypes, r.ProfileType) {
		return Invalid("profile_type", "Invalid profile type")
	}
	if len(r.Skills) < 1 {
		return Invalid("skills", "Select at least one skill")
	}
	if len(r.LookingFor) < 1 {
		return Invalid("looking_for", "Select at least one option")
	}
	return nil
}

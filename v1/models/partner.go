package models

import (
	"strings"
	"time"
)

// PartnerProfile represents the partner_profiles table. Agencies and service
// providers register here and wait for admin approval.
type PartnerProfile struct {
	ID          string  `gorm:"column:id;type:varchar(255);primaryKey" json:"id"`
	UserID      string  `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"user_id"`
	FullName    string  `gorm:"column:full_name;type:text;not null" json:"full_name"`
	CompanyName string  `gorm:"column:company_name;type:text;not null" json:"company_name"`
	Email       string  `gorm:"column:email;type:text;not null" json:"email"`
	Phone       string  `gorm:"column:phone;type:text;not null" json:"phone"`
	Website     *string `gorm:"column:website;type:text" json:"website,omitempty"`
	LinkedinURL *string `gorm:"column:linkedin_url;type:text" json:"linkedin_url,omitempty"`
	PartnerType string  `gorm:"column:partner_type;type:text;not null" json:"partner_type"`

	ServicesOffered  StringArray `gorm:"column:services_offered;type:jsonb" json:"services_offered"`
	IndustriesServed StringArray `gorm:"column:industries_served;type:jsonb" json:"industries_served"`
	StagesServed     StringArray `gorm:"column:stages_served;type:jsonb" json:"stages_served"`

	PricingModel    *string `gorm:"column:pricing_model;type:text" json:"pricing_model,omitempty"`
	AverageDealSize *string `gorm:"column:average_deal_size;type:text" json:"average_deal_size,omitempty"`
	TeamSize        *string `gorm:"column:team_size;type:text" json:"team_size,omitempty"`
	YearsExperience *string `gorm:"column:years_experience;type:text" json:"years_experience,omitempty"`
	ToolsTechStack  *string `gorm:"column:tools_tech_stack;type:text" json:"tools_tech_stack,omitempty"`
	WorkMode        *string `gorm:"column:work_mode;type:text" json:"work_mode,omitempty"`
	PortfolioLinks  *string `gorm:"column:portfolio_links;type:text" json:"portfolio_links,omitempty"`
	CaseStudies     *string `gorm:"column:case_studies;type:text" json:"case_studies,omitempty"`
	PastClients     *string `gorm:"column:past_clients;type:text" json:"past_clients,omitempty"`
	Certifications  *string `gorm:"column:certifications;type:text" json:"certifications,omitempty"`

	LookingFor           StringArray `gorm:"column:looking_for;type:jsonb" json:"looking_for"`
	MonthlyCapacity      *string     `gorm:"column:monthly_capacity;type:text" json:"monthly_capacity,omitempty"`
	PreferredBudgetRange *string     `gorm:"column:preferred_budget_range;type:text" json:"preferred_budget_range,omitempty"`

	Approved            bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	OnboardingCompleted bool      `gorm:"column:onboarding_completed;not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (PartnerProfile) TableName() string {
	return "partner_profiles"
}

// CreatePartnerProfileRequest is the payload for PUT /api/partner
type CreatePartnerProfileRequest struct {
	FullName    string  `json:"full_name"`
	CompanyName string  `json:"company_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Website     *string `json:"website,omitempty"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	PartnerType string  `json:"partner_type"`

	ServicesOffered  []string `json:"services_offered"`
	IndustriesServed []string `json:"industries_served"`
	StagesServed     []string `json:"stages_served"`

	PricingModel    *string `json:"pricing_model,omitempty"`
	AverageDealSize *string `json:"average_deal_size,omitempty"`
	TeamSize        *string `json:"team_size,omitempty"`
	YearsExperience *string `json:"years_experience,omitempty"`
	ToolsTechStack  *string `json:"tools_tech_stack,omitempty"`
	WorkMode        *string `json:"work_mode,omitempty"`
	PortfolioLinks  *string `json:"portfolio_links,omitempty"`
	CaseStudies     *string `json:"case_studies,omitempty"`
	PastClients     *string `json:"past_clients,omitempty"`
	Certifications  *string `json:"certifications,omitempty"`

	LookingFor           []string `json:"looking_for"`
	MonthlyCapacity      *string  `json:"monthly_capacity,omitempty"`
	PreferredBudgetRange *string  `json:"preferred_budget_range,omitempty"`
}

// Validate checks the payload and returns the first offending field
func (r *CreatePartnerProfileRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.FullName) == "" {
		return Invalid("full_name", "Name is required")
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		return Invalid("company_name", "Company name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return Invalid("email", "Please enter a valid email address")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return Invalid("phone", "Phone is required")
	}
	if !oneOf(PartnerTypes, r.PartnerType) {
		return Invalid("partner_type", "Invalid partner type")
	}
	if len(r.ServicesOffered) < 1 {
		return Invalid("services_offered", "Select at least one service")
	}
	if len(r.IndustriesServed) < 1 {
		return Invalid("industries_served", "Select at least one industry")
	}
	if len(r.StagesServed) < 1 {
		return Invalid("stages_served", "Select at least one stage")
	}
	if len(r.LookingFor) < 1 {
		return Invalid("looking_for", "Select at least one option")
	}
	return nil
}

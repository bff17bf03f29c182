package models

import (
	"encoding/json"
	"strings"
	"time"
)

// StartupProfile represents the startup_profiles table. Exactly one row exists
// per owner identity (unique on user_id, upsert semantics).
type StartupProfile struct {
	ID     string `gorm:"column:id;type:varchar(255);primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex" json:"user_id"`
	Email  string `gorm:"column:email;type:text" json:"email"`

	// Identity
	Name     string `gorm:"column:name;type:text;not null" json:"name"`
	JobTitle string `gorm:"column:job_title;type:text;not null" json:"job_title"`

	// Company
	CompanyName        string `gorm:"column:company_name;type:text;not null" json:"company_name"`
	CompanyDescription string `gorm:"column:company_description;type:text;not null" json:"company_description"`

	// Category
	Industry      string `gorm:"column:industry;type:text;not null" json:"industry"`
	Stage         string `gorm:"column:stage;type:text;not null" json:"stage"`
	BusinessModel string `gorm:"column:business_model;type:text;not null" json:"business_model"`

	// Clarity
	TargetCustomer string `gorm:"column:target_customer;type:text;not null" json:"target_customer"`
	PrimaryProblem string `gorm:"column:primary_problem;type:text;not null" json:"primary_problem"`

	// Goals
	Goals       StringArray `gorm:"column:goals;type:jsonb" json:"goals"`
	SpecificAsk string      `gorm:"column:specific_ask;type:text" json:"specific_ask"`

	Location string `gorm:"column:location;type:text;not null" json:"location"`

	// Traction
	TractionRange     *string     `gorm:"column:traction_range;type:text" json:"traction_range,omitempty"`
	RevenueStatus     *string     `gorm:"column:revenue_status;type:text" json:"revenue_status,omitempty"`
	FundraisingStatus *string     `gorm:"column:fundraising_status;type:text" json:"fundraising_status,omitempty"`
	CapitalUse        StringArray `gorm:"column:capital_use;type:jsonb" json:"capital_use"`

	// Extended onboarding
	Phone              *string        `gorm:"column:phone;type:text" json:"phone,omitempty"`
	Website            *string        `gorm:"column:website;type:text" json:"website,omitempty"`
	ProductLink        *string        `gorm:"column:product_link;type:text" json:"product_link,omitempty"`
	IsRegistered       *bool          `gorm:"column:is_registered" json:"is_registered,omitempty"`
	ProductDescription *string        `gorm:"column:product_description;type:text" json:"product_description,omitempty"`
	NumUsers           *string        `gorm:"column:num_users;type:text" json:"num_users,omitempty"`
	MonthlyRevenue     *string        `gorm:"column:monthly_revenue;type:text" json:"monthly_revenue,omitempty"`
	TractionHighlights *string        `gorm:"column:traction_highlights;type:text" json:"traction_highlights,omitempty"`
	Intents            StringArray    `gorm:"column:intents;type:jsonb" json:"intents"`
	IntentDetails      *IntentDetails `gorm:"column:intent_details;type:jsonb" json:"intent_details,omitempty"`

	// Progressive profiling (PATCH whitelist)
	TeamSize            *string     `gorm:"column:team_size;type:text" json:"team_size,omitempty"`
	MissingRoles        StringArray `gorm:"column:missing_roles;type:jsonb" json:"missing_roles,omitempty"`
	HiringUrgency       *string     `gorm:"column:hiring_urgency;type:text" json:"hiring_urgency,omitempty"`
	PartnershipWhy      StringArray `gorm:"column:partnership_why;type:jsonb" json:"partnership_why,omitempty"`
	IdealPartnerType    *string     `gorm:"column:ideal_partner_type;type:text" json:"ideal_partner_type,omitempty"`
	PartnershipMaturity *string     `gorm:"column:partnership_maturity;type:text" json:"partnership_maturity,omitempty"`
	RoundType           *string     `gorm:"column:round_type;type:text" json:"round_type,omitempty"`
	InvestorWarmth      StringArray `gorm:"column:investor_warmth;type:jsonb" json:"investor_warmth,omitempty"`
	Geography           *string     `gorm:"column:geography;type:text" json:"geography,omitempty"`
	SpeedPreference     *string     `gorm:"column:speed_preference;type:text" json:"speed_preference,omitempty"`
	RiskAppetite        *string     `gorm:"column:risk_appetite;type:text" json:"risk_appetite,omitempty"`
	ExistingBackers     *string     `gorm:"column:existing_backers;type:text" json:"existing_backers,omitempty"`
	NotableCustomers    *string     `gorm:"column:notable_customers;type:text" json:"notable_customers,omitempty"`
	DeckLink            *string     `gorm:"column:deck_link;type:text" json:"deck_link,omitempty"`
	LinkedinURL         *string     `gorm:"column:linkedin_url;type:text" json:"linkedin_url,omitempty"`

	Approved            bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	OnboardingCompleted bool      `gorm:"column:onboarding_completed;not null;default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (StartupProfile) TableName() string {
	return "startup_profiles"
}

// redactedStartupFields are the contact vectors stripped before a startup
// profile is shown to a non-owning, non-admin viewer. All contact must go
// through the connection request flow instead.
var redactedStartupFields = []string{"email", "name", "linkedin_url", "deck_link", "website"}

// Sanitized returns the redacted public view of the profile: contact fields
// removed and the founder displayed under a generic label.
func (p *StartupProfile) Sanitized() map[string]interface{} {
	raw, err := json.Marshal(p)
	if err != nil {
		// Marshaling a plain profile struct should never fail
		panic(err)
	}

	var view map[string]interface{}
	if err := json.Unmarshal(raw, &view); err != nil {
		panic(err)
	}

	for _, field := range redactedStartupFields {
		delete(view, field)
	}
	view["founder_label"] = "Founder"
	return view
}

// CreateStartupProfileRequest is the full onboarding payload for PUT /api/profile
type CreateStartupProfileRequest struct {
	Name               string   `json:"name"`
	JobTitle           string   `json:"job_title"`
	CompanyName        string   `json:"company_name"`
	CompanyDescription string   `json:"company_description"`
	Industry           string   `json:"industry"`
	Stage              string   `json:"stage"`
	BusinessModel      string   `json:"business_model"`
	TargetCustomer     string   `json:"target_customer"`
	PrimaryProblem     string   `json:"primary_problem"`
	Goals              []string `json:"goals"`
	SpecificAsk        string   `json:"specific_ask"`
	Location           string   `json:"location"`
	TractionRange      *string  `json:"traction_range,omitempty"`
	RevenueStatus      *string  `json:"revenue_status,omitempty"`
	FundraisingStatus  *string  `json:"fundraising_status,omitempty"`
	CapitalUse         []string `json:"capital_use"`

	Phone              *string  `json:"phone,omitempty"`
	Website            *string  `json:"website,omitempty"`
	ProductLink        *string  `json:"product_link,omitempty"`
	IsRegistered       *bool    `json:"is_registered,omitempty"`
	ProductDescription *string  `json:"product_description,omitempty"`
	NumUsers           *string  `json:"num_users,omitempty"`
	MonthlyRevenue     *string  `json:"monthly_revenue,omitempty"`
	TractionHighlights *string  `json:"traction_highlights,omitempty"`
	Intents            []string `json:"intents"`

	IntentValidation   *IntentValidation   `json:"intent_validation,omitempty"`
	IntentHiring       *IntentHiring       `json:"intent_hiring,omitempty"`
	IntentPartnerships *IntentPartnerships `json:"intent_partnerships,omitempty"`
	IntentPromotions   *IntentPromotions   `json:"intent_promotions,omitempty"`
	IntentFundraising  *IntentFundraising  `json:"intent_fundraising,omitempty"`
}

// Validate checks the payload and returns the first offending field
func (r *CreateStartupProfileRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.Name) == "" {
		return Invalid("name", "Name is required")
	}
	if strings.TrimSpace(r.JobTitle) == "" {
		return Invalid("job_title", "Job title is required")
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		return Invalid("company_name", "Company name is required")
	}
	if strings.TrimSpace(r.CompanyDescription) == "" {
		return Invalid("company_description", "Description required")
	}
	if len(r.CompanyDescription) > 130 {
		return Invalid("company_description", "Keep it under 130 characters")
	}
	if !oneOf(Industries, r.Industry) {
		return Invalid("industry", "Invalid industry")
	}
	if !oneOf(Stages, r.Stage) {
		return Invalid("stage", "Invalid stage")
	}
	if !oneOf(BusinessModels, r.BusinessModel) {
		return Invalid("business_model", "Invalid business model")
	}
	if strings.TrimSpace(r.TargetCustomer) == "" {
		return Invalid("target_customer", "Required")
	}
	if strings.TrimSpace(r.PrimaryProblem) == "" {
		return Invalid("primary_problem", "Required")
	}
	if len(r.Goals) < 1 {
		return Invalid("goals", "Select at least one goal")
	}
	for _, goal := range r.Goals {
		if !oneOf(StartupGoals, goal) {
			return Invalid("goals", "Invalid goal")
		}
	}
	if strings.TrimSpace(r.Location) == "" {
		return Invalid("location", "Location required")
	}
	if r.TractionRange != nil && !oneOf(TractionRanges, *r.TractionRange) {
		return Invalid("traction_range", "Invalid traction range")
	}
	if r.RevenueStatus != nil && !oneOf(RevenueStatuses, *r.RevenueStatus) {
		return Invalid("revenue_status", "Invalid revenue status")
	}
	if r.FundraisingStatus != nil && !oneOf(FundraisingStatuses, *r.FundraisingStatus) {
		return Invalid("fundraising_status", "Invalid fundraising status")
	}
	return nil
}

// IntentPayloads folds the per-intent payloads into a single details column,
// or nil when no intent data was supplied.
func (r *CreateStartupProfileRequest) IntentPayloads() *IntentDetails {
	if r.IntentValidation == nil && r.IntentHiring == nil && r.IntentPartnerships == nil &&
		r.IntentPromotions == nil && r.IntentFundraising == nil {
		return nil
	}
	return &IntentDetails{
		Validation:   r.IntentValidation,
		Hiring:       r.IntentHiring,
		Partnerships: r.IntentPartnerships,
		Promotions:   r.IntentPromotions,
		Fundraising:  r.IntentFundraising,
	}
}

// UpdateStartupProfileRequest is the progressive-profiling payload for
// PATCH /api/profile. Every field is optional; only supplied fields are written.
type UpdateStartupProfileRequest struct {
	TeamSize            *string  `json:"team_size,omitempty"`
	MissingRoles        []string `json:"missing_roles,omitempty"`
	HiringUrgency       *string  `json:"hiring_urgency,omitempty"`
	PartnershipWhy      []string `json:"partnership_why,omitempty"`
	IdealPartnerType    *string  `json:"ideal_partner_type,omitempty"`
	PartnershipMaturity *string  `json:"partnership_maturity,omitempty"`
	RoundType           *string  `json:"round_type,omitempty"`
	InvestorWarmth      []string `json:"investor_warmth,omitempty"`
	Geography           *string  `json:"geography,omitempty"`
	SpeedPreference     *string  `json:"speed_preference,omitempty"`
	RiskAppetite        *string  `json:"risk_appetite,omitempty"`
	ExistingBackers     *string  `json:"existing_backers,omitempty"`
	NotableCustomers    *string  `json:"notable_customers,omitempty"`
	DeckLink            *string  `json:"deck_link,omitempty"`
	Website             *string  `json:"website,omitempty"`
	LinkedinURL         *string  `json:"linkedin_url,omitempty"`
}

// Changes returns the column assignments for the supplied fields only.
// The whitelist is the struct itself: nothing outside it can be patched.
func (r *UpdateStartupProfileRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r.TeamSize != nil {
		changes["team_size"] = *r.TeamSize
	}
	if r.MissingRoles != nil {
		changes["missing_roles"] = StringArray(r.MissingRoles)
	}
	if r.HiringUrgency != nil {
		changes["hiring_urgency"] = *r.HiringUrgency
	}
	if r.PartnershipWhy != nil {
		changes["partnership_why"] = StringArray(r.PartnershipWhy)
	}
	if r.IdealPartnerType != nil {
		changes["ideal_partner_type"] = *r.IdealPartnerType
	}
	if r.PartnershipMaturity != nil {
		changes["partnership_maturity"] = *r.PartnershipMaturity
	}
	if r.RoundType != nil {
		changes["round_type"] = *r.RoundType
	}
	if r.InvestorWarmth != nil {
		changes["investor_warmth"] = StringArray(r.InvestorWarmth)
	}
	if r.Geography != nil {
		changes["geography"] = *r.Geography
	}
	if r.SpeedPreference != nil {
		changes["speed_preference"] = *r.SpeedPreference
	}
	if r.RiskAppetite != nil {
		changes["risk_appetite"] = *r.RiskAppetite
	}
	if r.ExistingBackers != nil {
		changes["existing_backers"] = *r.ExistingBackers
	}
	if r.NotableCustomers != nil {
		changes["notable_customers"] = *r.NotableCustomers
	}
	if r.DeckLink != nil {
		changes["deck_link"] = *r.DeckLink
	}
	if r.Website != nil {
		changes["website"] = *r.Website
	}
	if r.LinkedinURL != nil {
		changes["linkedin_url"] = *r.LinkedinURL
	}
	return changes
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray is a JSON-encoded string list stored in a jsonb column.
// Scan and Value keep it portable across PostgreSQL and SQLite.
type StringArray []string

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// GormDataType gorm common data type
func (StringArray) GormDataType() string {
	return "jsonb"
}

// IntentValidation holds the payload for the "validation" intent
type IntentValidation struct {
	FeedbackType      []string `json:"feedback_type,omitempty"`
	TargetAudience    string   `json:"target_audience,omitempty"`
	ProductLink       string   `json:"product_link,omitempty"`
	SpecificQuestions string   `json:"specific_questions,omitempty"`
	Timeline          string   `json:"timeline,omitempty"`
	ResponseCount     string   `json:"response_count,omitempty"`
}

// IntentHiring holds the payload for the "hiring" intent
type IntentHiring struct {
	Role            string `json:"role,omitempty"`
	HiringType      string `json:"hiring_type,omitempty"`
	WorkMode        string `json:"work_mode,omitempty"`
	BudgetRange     string `json:"budget_range,omitempty"`
	Urgency         string `json:"urgency,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	KeySkills       string `json:"key_skills,omitempty"`
}

// IntentPartnerships holds the payload for the "partnerships" intent
type IntentPartnerships struct {
	RequirementType    []string `json:"requirement_type,omitempty"`
	PartnerDescription string   `json:"partner_description,omitempty"`
	Goals              string   `json:"goals,omitempty"`
	Budget             string   `json:"budget,omitempty"`
	Timeline           string   `json:"timeline,omitempty"`
}

// IntentPromotions holds the payload for the "promotions" intent
type IntentPromotions struct {
	PromotionType   []string `json:"promotion_type,omitempty"`
	CampaignGoal    string   `json:"campaign_goal,omitempty"`
	TargetAudience  string   `json:"target_audience,omitempty"`
	Budget          string   `json:"budget,omitempty"`
	Timeline        string   `json:"timeline,omitempty"`
	ExpectedOutcome string   `json:"expected_outcome,omitempty"`
}

// IntentFundraising holds the payload for the "fundraising" intent
type IntentFundraising struct {
	CapitalAmount       string `json:"capital_amount,omitempty"`
	FundUse             string `json:"fund_use,omitempty"`
	FundingType         string `json:"funding_type,omitempty"`
	AnnualRevenue       string `json:"annual_revenue,omitempty"`
	ExistingLoans       string `json:"existing_loans,omitempty"`
	PitchDeckLink       string `json:"pitch_deck_link,omitempty"`
	InvestorsApproached string `json:"investors_approached,omitempty"`
	InvestorFeedback    string `json:"investor_feedback,omitempty"`
	ComplianceStatus    string `json:"compliance_status,omitempty"`
	GstFilingStatus     string `json:"gst_filing_status,omitempty"`
	PastDefaults        string `json:"past_defaults,omitempty"`
	FundraisingReason   string `json:"fundraising_reason,omitempty"`
	InvestorTypesSought string `json:"investor_types_sought,omitempty"`
	TicketSize          string `json:"ticket_size,omitempty"`
	ReadyForEngagement  string `json:"ready_for_engagement,omitempty"`
}

// IntentDetails maps each declared intent to its typed optional payload.
// Stored as a single jsonb column on the startup profile.
type IntentDetails struct {
	Validation   *IntentValidation   `json:"validation,omitempty"`
	Hiring       *IntentHiring       `json:"hiring,omitempty"`
	Partnerships *IntentPartnerships `json:"partnerships,omitempty"`
	Promotions   *IntentPromotions   `json:"promotions,omitempty"`
	Fundraising  *IntentFundraising  `json:"fundraising,omitempty"`
}

// Scan implements the sql.Scanner interface for IntentDetails
func (d *IntentDetails) Scan(value interface{}) error {
	if value == nil {
		*d = IntentDetails{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into IntentDetails", value)
	}

	return json.Unmarshal(bytes, d)
}

// Value implements the driver.Valuer interface for IntentDetails
func (d IntentDetails) Value() (driver.Value, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// GormDataType gorm common data type
func (IntentDetails) GormDataType() string {
	return "jsonb"
}

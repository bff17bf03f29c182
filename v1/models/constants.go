package models

// WaitlistRoles are the roles accepted at waitlist signup
var WaitlistRoles = []string{"Founder", "Student", "Operator", "Freelancer", "Investor", "Agency", "Other"}

// Startup profile enums
var (
	Industries          = []string{"FinTech", "HealthTech", "AI/ML", "SaaS B2B", "Consumer", "Marketplace", "DeepTech", "Other"}
	Stages              = []string{"Idea", "Pre-Product", "Pre-Revenue", "Early Revenue", "Scaling"}
	BusinessModels      = []string{"B2B", "B2C", "Marketplace", "SaaS", "D2C", "Other"}
	StartupGoals        = []string{"Investors", "Customers", "Co-founders", "Partners", "Enterprise Clients", "Mentors", "Talent"}
	TractionRanges      = []string{"0", "<100", "100-1k", "1k-10k", "10k+"}
	RevenueStatuses     = []string{"Pre-revenue", "Early revenue", "Scaling revenue"}
	FundraisingStatuses = []string{"Not raising", "Planning", "Actively raising", "Closed recently"}
)

// Investor profile enums
var (
	InvestorTypes = []string{"VC", "Angel", "Family Office", "Strategic", "Other"}
	CheckSizes    = []string{"<$50k", "$50k-$250k", "$250k-$1M", "$1M-$5M", "$5M+"}
)

// PartnerTypes are the partner profile categories
var PartnerTypes = []string{"Agency", "Investor", "Service Provider", "Institutional Firm"}

// IndividualProfileTypes are the individual profile categories
var IndividualProfileTypes = []string{"Student", "Freelancer", "Professional", "Content Creator", "Community Admin"}

// ConnectionStatus represents the lifecycle state of a connection request
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusDeclined ConnectionStatus = "declined"
)

// ProfileKind selects a moderated profile collection
type ProfileKind string

const (
	ProfileKindStartup    ProfileKind = "startup"
	ProfileKindPartner    ProfileKind = "partner"
	ProfileKindIndividual ProfileKind = "individual"
)

// IsValid checks whether the kind names a moderated collection
func (k ProfileKind) IsValid() bool {
	switch k {
	case ProfileKindStartup, ProfileKindPartner, ProfileKindIndividual:
		return true
	}
	return false
}

func oneOf(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

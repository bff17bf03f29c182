package models

import (
	"strings"
	"time"
)

// Connection represents the connections table. The composite unique index
// enforces at most one request per investor/startup pair.
type Connection struct {
	ID         string           `gorm:"column:id;type:varchar(255);primaryKey" json:"id"`
	StartupID  string           `gorm:"column:startup_id;type:varchar(255);not null;uniqueIndex:idx_connection_pair" json:"startup_id"`
	InvestorID string           `gorm:"column:investor_id;type:varchar(255);not null;uniqueIndex:idx_connection_pair" json:"investor_id"`
	Status     ConnectionStatus `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	Message    *string          `gorm:"column:message;type:text" json:"message,omitempty"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "connections"
}

// CreateConnectionRequest is the payload for POST /api/connections
type CreateConnectionRequest struct {
	StartupID string  `json:"startup_id"`
	Message   *string `json:"message,omitempty"`
}

// Validate checks the payload and returns the first offending field
func (r *CreateConnectionRequest) Validate() *ValidationError {
	if strings.TrimSpace(r.StartupID) == "" {
		return Invalid("startup_id", "Startup id required")
	}
	return nil
}

// ConnectionStartupInfo is the summary of the target startup attached to an
// outgoing connection listing.
type ConnectionStartupInfo struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Stage       string `json:"stage"`
}

// ConnectionInvestorInfo is the summary of the requesting investor attached
// to an incoming connection listing.
type ConnectionInvestorInfo struct {
	Name         string  `json:"name"`
	FirmName     *string `json:"firm_name,omitempty"`
	InvestorType string  `json:"investor_type"`
	CheckSize    string  `json:"check_size"`
}

// OutgoingConnection is a connection seen from the investor side
type OutgoingConnection struct {
	Connection
	Startup *ConnectionStartupInfo `json:"startup,omitempty"`
}

// IncomingConnection is a connection seen from the founder side
type IncomingConnection struct {
	Connection
	Investor *ConnectionInvestorInfo `json:"investor,omitempty"`
}

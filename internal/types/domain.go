package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// ConfigVersion represents one numbered snapshot of a service
// configuration, exactly as the Fastly API reports it. Versions are
// created by the API; the client never fabricates field values.
type ConfigVersion struct {
	ServiceID string     `json:"service_id"`
	Number    int        `json:"number"`
	Active    bool       `json:"active"`
	Locked    bool       `json:"locked"`
	Deployed  bool       `json:"deployed"`
	Staging   bool       `json:"staging"`
	Testing   bool       `json:"testing"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Vcl represents a named VCL file attached to a config version. At most
// one VCL per version carries the main flag.
type Vcl struct {
	ServiceID string     `json:"service_id"`
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	Main      bool       `json:"main"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

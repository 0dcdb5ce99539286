package domain

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

type ReportStatus string

const (
	ReportCreated    ReportStatus = "created"
	ReportAssigned   ReportStatus = "assigned"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
)

type Location struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Address   string  `json:"address,omitempty"`
}

// Report is a citizen-submitted waste observation. AssignedTo is set only
// together with NGOID and only after a successful worker match.
type Report struct {
	ID          uuid.UUID    `json:"id"`
	Location    *Location    `json:"location,omitempty"`
	Category    Category     `json:"category"`
	Severity    Severity     `json:"severity"`
	Status      ReportStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	NGOID       string       `json:"ngo_id,omitempty"`
	UserID      string       `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// StatusHistory rows are append-only: one per status mutation, never rewritten.
type StatusHistory struct {
	ID         uuid.UUID    `json:"id"`
	ReportID   uuid.UUID    `json:"report_id"`
	Status     ReportStatus `json:"status"`
	WorkerID   string       `json:"worker_id,omitempty"`
	WorkerName string       `json:"worker_name,omitempty"`
	Message    string       `json:"message,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

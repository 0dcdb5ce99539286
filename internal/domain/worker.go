package domain

import "time"

const RoleWorker = "worker"

// Worker is an NGO field worker account. CurrentLocation may be stale or
// absent: the worker app checks in, the core never writes it.
type Worker struct {
	UID             string    `json:"uid"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	NGOID           string    `json:"ngo_id"`
	IsActive        bool      `json:"is_active"`
	CurrentLocation *Location `json:"current_location,omitempty"`
	FCMToken        string    `json:"fcm_token,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NGO is static reference data: an organization scoped to a subset of the
// category enumeration, owning a roster of workers.
type NGO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
}

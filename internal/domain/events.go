package domain

import "time"

type TriggerKind string

const (
	TriggerReportCreated TriggerKind = "report.created"
	TriggerReportUpdated TriggerKind = "report.updated"
	TriggerWorkerCreated TriggerKind = "worker.created"
)

// TriggerEvent is the queue payload a lifecycle mutation leaves behind.
// Delivery is at-least-once: handlers must tolerate re-invocation.
// Before/After carry report snapshots for report.* kinds; Worker is set
// for worker.created.
type TriggerEvent struct {
	Kind      TriggerKind `json:"kind"`
	Before    *Report     `json:"before,omitempty"`
	After     *Report     `json:"after,omitempty"`
	Worker    *Worker     `json:"worker,omitempty"`
	EmittedAt time.Time   `json:"emitted_at"`
}

// PushMessage is a single outbound notification. Target is the device
// token; absence of a target upstream means the send is skipped entirely.
type PushMessage struct {
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
	Target string            `json:"target"`
}

type ReportStats struct {
	Total      int64 `json:"total"`
	Created    int64 `json:"created"`
	Assigned   int64 `json:"assigned"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

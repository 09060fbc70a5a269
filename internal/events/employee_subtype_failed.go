package events

import "time"

const EmployeeSubtypeFailedTopic = "erp.employee.subtype.failed.v1"

// EmployeeSubtypeFailedEvent announces a base employee whose subtype record is still missing.
type EmployeeSubtypeFailedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RepairID   string    `json:"repair_id"`
	EmployeeID int64     `json:"employee_id"`
	Kind       string    `json:"kind"`
	Attempts   int       `json:"attempts"`
	OccurredAt time.Time `json:"occurred_at"`
}

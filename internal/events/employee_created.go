package events

import "time"

const EmployeeCreatedTopic = "erp.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  int64     `json:"employee_id"`
	Designation string    `json:"designation"`
	Kind        string    `json:"kind"`
	CreatedBy   string    `json:"created_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

package repair

type RecordRequest struct {
	EmployeeID  int64
	Kind        string
	Value       string
	DraftID     string
	RequestedBy string
	Reason      string
}

type RepairResponse struct {
	ID          string  `json:"id"`
	EmployeeID  int64   `json:"employee_id"`
	Kind        string  `json:"kind"`
	Value       string  `json:"value"`
	DraftID     string  `json:"draft_id,omitempty"`
	RequestedBy string  `json:"requested_by,omitempty"`
	Status      string  `json:"status"`
	Attempts    int     `json:"attempts"`
	LastError   string  `json:"last_error,omitempty"`
	ResolvedAt  *string `json:"resolved_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

package department

// Department is owned by the ERP backend. The gateway only reads it.
type Department struct {
	ID   int64
	Name string
}

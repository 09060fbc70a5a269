package repair

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// SubtypeRepair tracks a base employee created in the backend whose subtype
// record (driver, accountant, supervisor) is still missing. ClaimedUntil is set
// while a caller is sending the subtype create.
type SubtypeRepair struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   int64     `gorm:"not null;index"`
	Kind         string    `gorm:"size:32;not null"`
	Value        string    `gorm:"size:255;not null"`
	DraftID      string    `gorm:"size:64"`
	RequestedBy  string    `gorm:"size:255"`
	Status       string    `gorm:"size:16;not null;index"`
	Attempts     int       `gorm:"not null;default:0"`
	LastError    string    `gorm:"size:500"`
	ClaimedUntil *time.Time
	ResolvedAt   *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (SubtypeRepair) TableName() string {
	return "subtype_repairs"
}

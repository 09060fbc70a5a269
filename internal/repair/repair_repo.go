package repair

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=repair_repo.go -destination=mock/repair_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *SubtypeRepair) error
	Save(ctx context.Context, r *SubtypeRepair) error
	FindByID(ctx context.Context, id string) (*SubtypeRepair, error)
	FindPendingByEmployee(ctx context.Context, employeeID int64) (*SubtypeRepair, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]SubtypeRepair, error)
	Claim(ctx context.Context, id string, now, until time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn runs statements on the caller's transaction when one is attached.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, rec *SubtypeRepair) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) Save(ctx context.Context, rec *SubtypeRepair) error {
	return r.conn(ctx).Save(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SubtypeRepair, error) {
	var rec SubtypeRepair
	err := r.conn(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindPendingByEmployee(ctx context.Context, employeeID int64) (*SubtypeRepair, error) {
	var rec SubtypeRepair
	err := r.conn(ctx).
		Where("employee_id = ? AND status = ?", employeeID, StatusPending).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string, limit int) ([]SubtypeRepair, error) {
	var recs []SubtypeRepair
	q := r.conn(ctx).Where("status = ?", status).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recs).Error
	return recs, err
}

// Claim takes a pending repair until the given time. It reports false when the repair is
// resolved or another caller holds a claim that has not expired.
func (r *repository) Claim(ctx context.Context, id string, now, until time.Time) (bool, error) {
	res := r.conn(ctx).
		Model(&SubtypeRepair{}).
		Where("id = ? AND status = ? AND (claimed_until IS NULL OR claimed_until < ?)", id, StatusPending, now).
		Update("claimed_until", until)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

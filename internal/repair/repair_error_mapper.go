package repair

import (
	"errors"
	"strings"

	repairerrors "grainsync-console/internal/repair/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniquePendingRepair = "uq_subtype_repair_pending_employee"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repairerrors.ErrRepairNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == uniquePendingRepair {
				return repairerrors.ErrRepairAlreadyExists
			}
		case "22P02":
			return repairerrors.ErrInvalidRepairID
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniquePendingRepair) {
		return repairerrors.ErrRepairAlreadyExists
	}

	return err
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "grainsync-console/internal/employee/errors"

	"github.com/redis/go-redis/v9"
)

const (
	DraftKeyPrefix  = "employee:drafts:"
	DefaultDraftTTL = 24 * time.Hour
	submitLockTTL   = 2 * time.Minute
)

func DraftKey(owner, id string) string {
	return fmt.Sprintf("%s%s:%s", DraftKeyPrefix, owner, id)
}

func draftLockKey(owner, id string) string {
	return DraftKey(owner, id) + ":lock"
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type DraftRepository interface {
	Save(ctx context.Context, d *Draft) error
	FindByID(ctx context.Context, owner, id string) (*Draft, error)
	Delete(ctx context.Context, owner, id string) error
	Lock(ctx context.Context, owner, id string) (bool, error)
	Unlock(ctx context.Context, owner, id string) error
}

type draftRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewDraftRepository stores drafts per owner with a sliding TTL.
func NewDraftRepository(rdb redis.Cmdable, ttl time.Duration) DraftRepository {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &draftRepository{rdb: rdb, ttl: ttl}
}

func (r *draftRepository) Save(ctx context.Context, d *Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, DraftKey(d.Owner, d.ID), raw, r.ttl).Err()
}

func (r *draftRepository) FindByID(ctx context.Context, owner, id string) (*Draft, error) {
	raw, err := r.rdb.Get(ctx, DraftKey(owner, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, employeeerrors.ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *draftRepository) Delete(ctx context.Context, owner, id string) error {
	n, err := r.rdb.Del(ctx, DraftKey(owner, id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return employeeerrors.ErrDraftNotFound
	}
	return nil
}

// Lock guards a draft while it is being submitted.
func (r *draftRepository) Lock(ctx context.Context, owner, id string) (bool, error) {
	return r.rdb.SetNX(ctx, draftLockKey(owner, id), "1", submitLockTTL).Result()
}

func (r *draftRepository) Unlock(ctx context.Context, owner, id string) error {
	return r.rdb.Del(ctx, draftLockKey(owner, id)).Err()
}

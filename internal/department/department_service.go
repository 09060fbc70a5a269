package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "grainsync-console/internal/department/errors"
	"grainsync-console/internal/designation"
	"grainsync-console/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentAllKey = "departments:all"
	cacheTTL         = 30 * time.Minute
)

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (DepartmentResponse, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DepartmentAllKey).Result()
		if err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DepartmentAllKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, DepartmentAllKey, jsonData, cacheTTL).Err(); err != nil {
					logger.Warn("failed to cache departments", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		logger.Error("failed to load departments", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DepartmentResponse, error) {
	if id <= 0 {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}
	for _, d := range all {
		if d.ID == id {
			return d, nil
		}
	}
	return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, DepartmentAllKey).Err()
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           dept.ID,
		Name:         dept.Name,
		Designations: designation.Designations(dept.Name),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}

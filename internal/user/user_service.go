package user

import (
	"context"
	"strconv"
	"strings"

	"grainsync-console/internal/audit"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/session"
	"grainsync-console/internal/shared/contextutil"
	usererrors "grainsync-console/internal/user/errors"

	"go.uber.org/zap"
)

const (
	MinPasswordLength        = 8
	DefaultProtectedUsername = "h_malik"
)

type Service interface {
	ListUnregistered(ctx context.Context) ([]UnregisteredEmployeeResponse, error)
	Register(ctx context.Context, req RegisterRequest) error
	List(ctx context.Context, currentUsername string) ([]UserResponse, error)
	Delete(ctx context.Context, currentUsername string, id int64) error
	MakeAdmin(ctx context.Context, id int64) error
}

type service struct {
	repo      Repository
	protected string
	audit     audit.Logger
	logger    *zap.Logger
}

func NewService(repo Repository, protectedUsername string, logger ...*zap.Logger) Service {
	return NewServiceWithAudit(repo, protectedUsername, audit.NewZapLogger(logger...), logger...)
}

// NewServiceWithAudit records register, delete and promote actions through auditLogger.
func NewServiceWithAudit(
	repo Repository,
	protectedUsername string,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if protectedUsername == "" {
		protectedUsername = DefaultProtectedUsername
	}
	return &service{repo: repo, protected: protectedUsername, audit: auditLogger, logger: l}
}

func (s *service) ListUnregistered(ctx context.Context) ([]UnregisteredEmployeeResponse, error) {
	employees, err := s.repo.ListUnregisteredEmployees(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UnregisteredEmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, UnregisteredEmployeeResponse{
			EmployeeID: e.ID,
			FullName:   strings.TrimSpace(e.FirstName + " " + e.LastName),
			Department: e.Department.Name,
		})
	}
	return resp, nil
}

// Register checks the form locally before asking the backend whether the username is free.
func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if len(req.Password) < MinPasswordLength {
		return usererrors.ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return usererrors.ErrPasswordMismatch
	}

	username := strings.TrimSpace(req.Username)
	taken, err := s.repo.UsernameTaken(ctx, username)
	if err != nil {
		l.Error("check username failed", zap.String("username", username), zap.Error(err))
		return err
	}
	if taken {
		return usererrors.ErrUsernameTaken
	}

	if err := s.repo.RegisterFromEmployee(ctx, erpclient.RegisterFromEmployeeRequest{
		EmployeeID: req.EmployeeID,
		Username:   username,
		Password:   req.Password,
	}); err != nil {
		l.Error("register user failed", zap.String("username", username), zap.Error(err))
		return err
	}

	l.Info("user registered", zap.String("username", username), zap.String("employee_id", req.EmployeeID))
	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionUserRegistered,
		Message: "user registered from employee",
		Meta:    map[string]any{"username": username, "employee_id": req.EmployeeID},
	})
	return nil
}

func (s *service) List(ctx context.Context, currentUsername string) ([]UserResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			ID:           u.ID,
			Username:     u.Username,
			Role:         u.Role,
			CanDelete:    !s.isProtected(u.Username, currentUsername),
			CanMakeAdmin: u.Role != session.RoleAdmin,
		})
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, currentUsername string, id int64) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if s.isProtected(u.Username, currentUsername) {
		l.Warn("refused to delete protected user", zap.String("username", u.Username))
		return usererrors.ErrProtectedUser
	}

	if err := s.repo.DeleteUser(ctx, strconv.FormatInt(id, 10)); err != nil {
		l.Error("delete user failed", zap.Int64("user_id", id), zap.Error(err))
		return err
	}
	l.Info("user deleted", zap.String("username", u.Username))
	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionUserDeleted,
		Message: "user deleted",
		Meta:    map[string]any{"user_id": id, "username": u.Username},
	})
	return nil
}

func (s *service) MakeAdmin(ctx context.Context, id int64) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == session.RoleAdmin {
		return usererrors.ErrAlreadyAdmin
	}

	if err := s.repo.MakeAdmin(ctx, strconv.FormatInt(id, 10)); err != nil {
		l.Error("make admin failed", zap.Int64("user_id", id), zap.Error(err))
		return err
	}
	l.Info("user promoted to admin", zap.String("username", u.Username))
	s.audit.Log(ctx, audit.Entry{
		Action:  audit.ActionUserPromoted,
		Message: "user promoted to admin",
		Meta:    map[string]any{"user_id": id, "username": u.Username},
	})
	return nil
}

// find resolves a user through the list endpoint; the backend has no single-user read.
func (s *service) find(ctx context.Context, id int64) (erpclient.User, error) {
	if id <= 0 {
		return erpclient.User{}, usererrors.ErrInvalidUserID
	}
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return erpclient.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return erpclient.User{}, usererrors.ErrUserNotFound
}

func (s *service) isProtected(username, currentUsername string) bool {
	return username == s.protected || (currentUsername != "" && username == currentUsername)
}

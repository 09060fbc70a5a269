package navigation

import (
	"strings"

	"grainsync-console/internal/domain"
	navigationerrors "grainsync-console/internal/navigation/errors"
	"grainsync-console/internal/session"

	"go.uber.org/zap"
)

type Enforcer interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type Service interface {
	Build(sess session.Session, dashboard string) (View, error)
	Dashboards(sess session.Session) ([]DashboardSummary, error)
}

type service struct {
	enforcer Enforcer
	logger   *zap.Logger
}

func NewService(enforcer Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("navigation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("navigation.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) can(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
}

func (s *service) Build(sess session.Session, name string) (View, error) {
	d, ok := lookup(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return View{}, navigationerrors.ErrDashboardNotFound
	}

	allowed, err := s.can(sess.Role, d.Resource(), "read")
	if err != nil {
		return View{}, err
	}
	if !allowed {
		s.logger.Debug("dashboard denied", zap.String("role", sess.Role), zap.String("dashboard", d.Name))
		return View{}, navigationerrors.ErrDashboardForbidden
	}

	cards := make([]Card, 0, len(d.Cards))
	for _, card := range d.Cards {
		ok, err := s.can(sess.Role, card.Resource, card.Action)
		if err != nil {
			return View{}, err
		}
		if ok {
			cards = append(cards, card)
		}
	}

	view := View{
		Dashboard:     d.Name,
		Title:         d.Title,
		Cards:         cards,
		ShowAdminBack: sess.IsAdmin(),
		ShowLogout:    sess.Role == d.OwnerRole,
	}
	if view.ShowLogout {
		view.DisplayName = sess.Username
	}
	return view, nil
}

func (s *service) Dashboards(sess session.Session) ([]DashboardSummary, error) {
	out := make([]DashboardSummary, 0, len(dashboards))
	for _, d := range dashboards {
		ok, err := s.can(sess.Role, d.Resource(), "read")
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, DashboardSummary{Name: d.Name, Title: d.Title, Path: d.Path})
		}
	}
	return out, nil
}

package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"grainsync-console/internal/erpclient"
	resourceerrors "grainsync-console/internal/resource/errors"
	"grainsync-console/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Backend sends raw requests to the ERP backend.
//
//go:generate mockgen -source=resource_service.go -destination=mock/resource_service_mock.go -package=mock
type Backend interface {
	Do(ctx context.Context, method, path string, query url.Values, body []byte) (json.RawMessage, error)
}

type Service interface {
	List(ctx context.Context, name string, query url.Values) (json.RawMessage, error)
	Get(ctx context.Context, name, id string) (json.RawMessage, error)
	Create(ctx context.Context, name string, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, name, id string, body json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, name, id string) error
}

type service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(backend Backend, logger ...*zap.Logger) Service {
	l := zap.L().Named("resource.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resource.service")
	}
	return &service{backend: backend, logger: l}
}

func (s *service) List(ctx context.Context, name string, query url.Values) (json.RawMessage, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := s.backend.Do(ctx, http.MethodGet, res.Path(), query, nil)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return json.RawMessage("[]"), nil
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, name, id string) (json.RawMessage, error) {
	res, err := lookup(name)
	if err != nil {
		return nil, err
	}
	path, err := itemPath(res, id)
	if err != nil {
		return nil, err
	}
	return s.backend.Do(ctx, http.MethodGet, path, nil, nil)
}

func (s *service) Create(ctx context.Context, name string, body json.RawMessage) (json.RawMessage, error) {
	res, err := writable(name)
	if err != nil {
		return nil, err
	}
	if err := checkBody(body); err != nil {
		return nil, err
	}

	out, err := s.backend.Do(ctx, http.MethodPost, res.Path(), nil, body)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("create resource failed",
			zap.String("resource", name),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, name, id string, body json.RawMessage) (json.RawMessage, error) {
	res, err := writable(name)
	if err != nil {
		return nil, err
	}
	path, err := itemPath(res, id)
	if err != nil {
		return nil, err
	}
	if err := checkBody(body); err != nil {
		return nil, err
	}

	out, err := s.backend.Do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("update resource failed",
			zap.String("resource", name),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, name, id string) error {
	res, err := writable(name)
	if err != nil {
		return err
	}
	path, err := itemPath(res, id)
	if err != nil {
		return err
	}

	if _, err := s.backend.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("delete resource failed",
			zap.String("resource", name),
			zap.String("id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func lookup(name string) (Resource, error) {
	res, ok := Lookup(name)
	if !ok {
		return Resource{}, resourceerrors.ErrUnknownResource
	}
	return res, nil
}

func writable(name string) (Resource, error) {
	res, err := lookup(name)
	if err != nil {
		return Resource{}, err
	}
	if res.ReadOnly {
		return Resource{}, resourceerrors.ErrReadOnlyResource
	}
	return res, nil
}

func itemPath(res Resource, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		return "", resourceerrors.ErrInvalidID
	}
	return res.Path() + "/" + url.PathEscape(id), nil
}

// checkBody accepts JSON objects only; the payload is otherwise passed through untouched.
func checkBody(body json.RawMessage) error {
	var obj map[string]json.RawMessage
	if len(body) == 0 || json.Unmarshal(body, &obj) != nil {
		return resourceerrors.ErrInvalidBody
	}
	return nil
}

var _ Backend = (*erpclient.Client)(nil)

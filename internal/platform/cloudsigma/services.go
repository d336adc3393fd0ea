package cloudsigma

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/imamik/ccs/internal/resource"
)

// ErrUnsupported is returned for operations a collection does not offer.
var ErrUnsupported = errors.New("operation not supported")

// listAll disables the API's default page size.
const listAll = "?limit=0"

type envelope[T any] struct {
	Objects []T `json:"objects"`
}

// collection implements resource.Service for one API collection.
type collection[T resource.Record] struct {
	c    *Client
	path string
}

func (s collection[T]) List(ctx context.Context) ([]T, error) {
	return s.list(ctx, s.path+"/"+listAll)
}

func (s collection[T]) ListDetail(ctx context.Context) ([]T, error) {
	return s.list(ctx, s.path+"/detail/"+listAll)
}

func (s collection[T]) list(ctx context.Context, path string) ([]T, error) {
	var env envelope[T]
	if err := s.c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Objects, nil
}

func (s collection[T]) Create(ctx context.Context, record T) (T, error) {
	var env envelope[T]
	if err := s.c.do(ctx, http.MethodPost, s.path+"/", envelope[T]{Objects: []T{record}}, &env); err != nil {
		var zero T
		return zero, err
	}
	if len(env.Objects) == 0 {
		var zero T
		return zero, fmt.Errorf("create %s: empty response", s.path)
	}
	return env.Objects[0], nil
}

func (s collection[T]) Update(ctx context.Context, id string, record T) (T, error) {
	var out T
	if err := s.c.do(ctx, http.MethodPut, s.itemPath(id), record, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (s collection[T]) itemPath(id string) string {
	return s.path + "/" + url.PathEscape(id) + "/"
}

func (s collection[T]) actionPath(id, action string) string {
	return s.itemPath(id) + "action/?do=" + url.QueryEscape(action)
}

type serverService struct {
	collection[resource.Server]
}

func (s *serverService) OpenConsole(ctx context.Context, id string) (resource.ActionResult, error) {
	return s.action(ctx, id, "open_console")
}

func (s *serverService) CloseConsole(ctx context.Context, id string) (resource.ActionResult, error) {
	return s.action(ctx, id, "close_console")
}

func (s *serverService) OpenDisplay(ctx context.Context, id string) (resource.ActionResult, error) {
	return s.action(ctx, id, "open_vnc")
}

func (s *serverService) CloseDisplay(ctx context.Context, id string) (resource.ActionResult, error) {
	return s.action(ctx, id, "close_vnc")
}

func (s *serverService) action(ctx context.Context, id, action string) (resource.ActionResult, error) {
	var result resource.ActionResult
	if err := s.c.do(ctx, http.MethodPost, s.actionPath(id, action), struct{}{}, &result); err != nil {
		return resource.ActionResult{}, err
	}
	return result, nil
}

type driveService struct {
	collection[resource.Drive]
}

// Resize submits drive through the resize action instead of a plain update.
func (s *driveService) Resize(ctx context.Context, id string, drive resource.Drive) (resource.Drive, error) {
	var out resource.Drive
	if err := s.c.do(ctx, http.MethodPost, s.actionPath(id, "resize"), drive, &out); err != nil {
		return resource.Drive{}, err
	}
	return out, nil
}

// capabilityService serves the capabilities document, which the API returns
// as a single bare object rather than an envelope.
type capabilityService struct {
	c *Client
}

func (s capabilityService) List(ctx context.Context) ([]resource.Capability, error) {
	var doc resource.Capability
	if err := s.c.do(ctx, http.MethodGet, "capabilities/", nil, &doc); err != nil {
		return nil, err
	}
	return []resource.Capability{doc}, nil
}

func (s capabilityService) ListDetail(ctx context.Context) ([]resource.Capability, error) {
	return s.List(ctx)
}

func (capabilityService) Create(context.Context, resource.Capability) (resource.Capability, error) {
	return nil, fmt.Errorf("create capabilities: %w", ErrUnsupported)
}

func (capabilityService) Update(context.Context, string, resource.Capability) (resource.Capability, error) {
	return nil, fmt.Errorf("update capabilities: %w", ErrUnsupported)
}

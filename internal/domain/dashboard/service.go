// Package dashboard loads table pages: it flattens the active filters of a
// view, asks the fetcher for one page of records and projects them into rows.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"paydash/internal/core/apperror"
	appctx "paydash/internal/core/context"
	"paydash/internal/domain/filter"
	"paydash/internal/domain/table"
	"paydash/pkg/logger"
)

var tracer = otel.Tracer("paydash/dashboard")

// DefaultPageSize is used when neither the request nor the service sets a limit.
const DefaultPageSize = 20

// Service serves dashboard pages from one filter store.
type Service struct {
	store    *filter.Store
	fetcher  Fetcher
	views    map[string]View
	order    []string
	pageSize int
	log      *logger.Logger
}

// ServiceConfig configures the service.
type ServiceConfig struct {
	Store   *filter.Store
	Fetcher Fetcher
	Views   []View

	// PageSize is the default limit; DefaultPageSize when zero.
	PageSize int

	// Logger is optional.
	Logger *logger.Logger
}

// NewService validates the views against the store's registry and creates
// the service. View names must be unique.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Store == nil || cfg.Fetcher == nil {
		return nil, apperror.NewValidation("dashboard service needs a store and a fetcher")
	}

	s := &Service{
		store:    cfg.Store,
		fetcher:  cfg.Fetcher,
		views:    make(map[string]View, len(cfg.Views)),
		pageSize: cfg.PageSize,
		log:      cfg.Logger,
	}
	if s.pageSize <= 0 {
		s.pageSize = DefaultPageSize
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	s.log = s.log.WithComponent("dashboard")

	reg := cfg.Store.Registry()
	for _, v := range cfg.Views {
		if _, dup := s.views[v.Name]; dup {
			return nil, apperror.NewValidation("duplicate view").WithDetail("view", v.Name)
		}
		if !reg.Has(v.Category) {
			return nil, apperror.NewUnknownCategory(string(v.Category)).WithDetail("view", v.Name)
		}
		s.views[v.Name] = v
		s.order = append(s.order, v.Name)
	}
	return s, nil
}

// Store returns the filter store the service reads.
func (s *Service) Store() *filter.Store { return s.store }

// Views returns the views in registration order.
func (s *Service) Views() []View {
	out := make([]View, len(s.order))
	for i, name := range s.order {
		out[i] = s.views[name]
	}
	return out
}

// View looks up a view by name.
func (s *Service) View(name string) (View, error) {
	v, ok := s.views[name]
	if !ok {
		return View{}, apperror.NewNotFound("view", name)
	}
	return v, nil
}

// Params returns the query params a Load of the view would send.
func (s *Service) Params(name string, req PageRequest) (map[string]string, error) {
	v, err := s.View(name)
	if err != nil {
		return nil, err
	}
	return s.params(v, req)
}

func (s *Service) params(v View, req PageRequest) (map[string]string, error) {
	params, err := s.store.QueryParams(v.Category)
	if err != nil {
		return nil, err
	}

	page, limit := req.Page, req.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.pageSize
	}
	// the registry keeps filter keys out of filter.ReservedParams
	params["page"] = strconv.Itoa(page)
	params["limit"] = strconv.Itoa(limit)
	return params, nil
}

// Load fetches one page of the view with the current filters of its
// category and projects the records with the view's columns.
// Fetcher errors are returned wrapped; *apperror.AppError values stay
// reachable through errors.As.
func (s *Service) Load(ctx context.Context, name string, req PageRequest) (Page, error) {
	ctx = appctx.EnsureTrace(ctx)
	ctx, span := tracer.Start(ctx, "dashboard.load",
		trace.WithAttributes(
			attribute.String("dashboard.view", name),
			attribute.Int("dashboard.page", req.Page),
		))
	defer span.End()

	log := s.log.WithContext(ctx).With("view", name)

	v, err := s.View(name)
	if err != nil {
		span.SetStatus(codes.Error, "unknown view")
		return Page{}, err
	}

	params, err := s.params(v, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "filters")
		return Page{}, err
	}
	span.SetAttributes(
		attribute.String("dashboard.resource", v.Resource),
		attribute.String("dashboard.query", filter.Encode(params)),
	)

	env, err := s.fetcher.Fetch(ctx, v.Resource, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		log.Warnw("fetch failed", "resource", v.Resource, "error", err)
		return Page{}, fmt.Errorf("fetch %s: %w", v.Resource, err)
	}

	rows := table.Project(v.Columns, env.Data)
	span.SetAttributes(attribute.Int("dashboard.rows", len(rows)))
	log.Debugw("page loaded", "rows", len(rows), "total", env.TotalRecord)

	return Page{
		View:    v.Name,
		Headers: table.Headers(v.Columns),
		Meta:    env.Meta(),
		Rows:    rows,
	}, nil
}

// SetFilter updates one filter of the view's category.
func (s *Service) SetFilter(name string, key filter.Key, value filter.Value) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	return s.store.SetFilter(v.Category, key, value)
}

// ChangeScope is called when the user switches to the named view: every
// other category's filters go back to their defaults while the view's own
// filters are kept.
func (s *Service) ChangeScope(name string) error {
	v, err := s.View(name)
	if err != nil {
		return err
	}
	s.store.ResetFilter(v.Category)
	s.log.Debugw("scope changed", "view", name, "category", v.Category)
	return nil
}

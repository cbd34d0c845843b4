package filter

import (
	"sync"
	"sync/atomic"

	"paydash/internal/core/apperror"
	"paydash/pkg/logger"
)

// Store is the single owner of the dashboard's filter state.
//
// Every write publishes a new immutable Snapshot with one atomic pointer
// swap, so readers always observe the last completed write and never a
// partially applied one. Writers are serialized.
type Store struct {
	registry   *Registry
	current    atomic.Pointer[Snapshot]
	mu         sync.Mutex
	log        *logger.Logger
	dateLayout string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for state transition debug logs.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDateLayout sets the layout used when date ranges become query params.
func WithDateLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// NewStore creates a store with every category at its registry default.
func NewStore(reg *Registry, opts ...Option) *Store {
	s := &Store{
		registry:   reg,
		log:        logger.NewNop(),
		dateLayout: DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("filter.store")

	initial := reg.Defaults()
	s.current.Store(&initial)
	return s
}

// Registry returns the registry the store was built from.
func (s *Store) Registry() *Registry { return s.registry }

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot { return *s.current.Load() }

// Category returns the current values of one category.
func (s *Store) Category(c Category) (Values, error) {
	v, ok := s.Snapshot().Category(c)
	if !ok {
		return Values{}, apperror.NewUnknownCategory(string(c))
	}
	return v, nil
}

// Get returns the current value at (c, k).
func (s *Store) Get(c Category, k Key) (Value, error) {
	v, err := s.Category(c)
	if err != nil {
		return nil, err
	}
	val, ok := v.Get(k)
	if !ok {
		return nil, apperror.NewUnknownKey(string(c), string(k))
	}
	return val, nil
}

// SetFilter replaces the value at (c, k). Every other leaf is left as is.
// Unknown categories, unknown keys and values of the wrong kind are
// rejected and leave the state untouched.
func (s *Store) SetFilter(c Category, k Key, value Value) error {
	if err := s.registry.Check(c, k, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.current.Load()
	cat, _ := old.Category(c)
	next := old.withCategory(c, cat.with(k, value))
	s.current.Store(&next)

	s.log.Debugw("filter set", "category", c, "key", k, "empty", value.IsEmpty())
	return nil
}

// ResetFilter restores every category except exclude to its default.
// An exclude that names no category resets everything.
func (s *Store) ResetFilter(exclude Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.registry.Defaults()
	old := s.current.Load()
	if kept, ok := old.Category(exclude); ok {
		next = next.withCategory(exclude, kept)
	}
	s.current.Store(&next)

	s.log.Debugw("filters reset", "kept", exclude)
}

// ResetAllFilters restores every category to its default.
func (s *Store) ResetAllFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.registry.Defaults()
	s.current.Store(&next)

	s.log.Debug("all filters reset")
}

// ResetCategory restores a single category to its default.
func (s *Store) ResetCategory(c Category) error {
	def, ok := s.registry.Default(c)
	if !ok {
		return apperror.NewUnknownCategory(string(c))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().withCategory(c, def)
	s.current.Store(&next)

	s.log.Debugw("category reset", "category", c)
	return nil
}

// QueryParams flattens the current filters of c for the HTTP layer.
func (s *Store) QueryParams(c Category) (map[string]string, error) {
	v, err := s.Category(c)
	if err != nil {
		return nil, err
	}
	return v.Params(s.dateLayout), nil
}

package project

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/inovacc/projtrack/internal/logging"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/store"
)

// RenderFunc receives the collection and its summary after every persist.
type RenderFunc func(projects []model.Project, summary model.Summary)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithRenderer registers the callback invoked after each persist.
func WithRenderer(fn RenderFunc) Option {
	return func(s *Store) { s.render = fn }
}

// WithClock overrides the time source used to derive ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey overrides the slot key holding the collection.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// Store owns the project collection.
type Store struct {
	mu       sync.Mutex
	slots    store.Slots
	key      string
	projects []model.Project
	logger   *slog.Logger
	render   RenderFunc
	now      func() time.Time
}

// New creates an empty store backed by slots. Call Load before use.
func New(slots store.Slots, opts ...Option) *Store {
	s := &Store{
		slots:    slots,
		key:      store.KeyProjects,
		projects: []model.Project{},
		logger:   logging.Discard(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads the collection from the slot. A missing or unparsable payload
// leaves the store empty; only a failing slot read is returned.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.slots.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("reading projects: %w", err)
	}

	projects := []model.Project{}

	if ok {
		decoded, err := DecodeCollection([]byte(raw))
		if err != nil {
			s.logger.Warn("stored projects are unreadable, starting empty",
				"slot", s.key, "error", err)
		} else {
			projects = decoded
		}
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()

	return nil
}

// Persist writes the current collection to the slot and renders it.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	err := s.write(ctx, s.projects)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.notify()

	return nil
}

// Add assigns p a fresh id, prepends it and persists.
func (s *Store) Add(ctx context.Context, p model.Project) (model.Project, error) {
	s.mu.Lock()

	p.ID = s.nextID()

	next := make([]model.Project, 0, len(s.projects)+1)
	next = append(next, p)
	next = append(next, s.projects...)

	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return model.Project{}, err
	}

	s.mu.Unlock()
	s.notify()

	return p, nil
}

// Update replaces every field of the project with the given id, keeping the
// id itself. The collection is left untouched when id is unknown.
func (s *Store) Update(ctx context.Context, id int64, p model.Project) (model.Project, error) {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Project{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	p.ID = id
	next := slices.Clone(s.projects)
	next[idx] = p

	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return model.Project{}, err
	}

	s.mu.Unlock()
	s.notify()

	return p, nil
}

// Remove deletes the project with the given id.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	next := slices.Delete(slices.Clone(s.projects), idx, idx+1)

	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return err
	}

	s.mu.Unlock()
	s.notify()

	return nil
}

// ReplaceAll swaps the whole collection for projects and persists. Order is
// preserved as given. A nil slice, duplicate ids or empty names are rejected
// and leave the current collection in place.
func (s *Store) ReplaceAll(ctx context.Context, projects []model.Project) error {
	if projects == nil {
		return fmt.Errorf("%w: no project sequence", ErrInvalidFormat)
	}

	seen := make(map[int64]struct{}, len(projects))

	for i, p := range projects {
		if p.Name == "" {
			return fmt.Errorf("%w: element %d has no name", ErrInvalidFormat, i)
		}

		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidFormat, p.ID)
		}

		seen[p.ID] = struct{}{}
	}

	s.mu.Lock()

	if err := s.commit(ctx, slices.Clone(projects)); err != nil {
		s.mu.Unlock()
		return err
	}

	s.mu.Unlock()
	s.notify()

	return nil
}

// Get returns the project with the given id.
func (s *Store) Get(id int64) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Project{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return s.projects[idx], nil
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.projects)
}

// Len returns the number of projects.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.projects)
}

// Summary returns the aggregate statistics of the collection.
func (s *Store) Summary() model.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.Summarize(s.projects)
}

// commit writes next and, on success, makes it the current collection.
// Caller holds s.mu.
func (s *Store) commit(ctx context.Context, next []model.Project) error {
	if err := s.write(ctx, next); err != nil {
		return err
	}

	s.projects = next

	return nil
}

func (s *Store) write(ctx context.Context, projects []model.Project) error {
	data, err := EncodeCollection(projects)
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}

	if err := s.slots.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("writing projects: %w", err)
	}

	return nil
}

func (s *Store) notify() {
	if s.render == nil {
		return
	}

	projects := s.List()
	s.render(projects, model.Summarize(projects))
}

// nextID derives an id from the clock, bumped past the largest id in use so
// that ids stay unique and increasing. Caller holds s.mu.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()

	for _, p := range s.projects {
		if p.ID >= id {
			id = p.ID + 1
		}
	}

	return id
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.projects, func(p model.Project) bool {
		return p.ID == id
	})
}

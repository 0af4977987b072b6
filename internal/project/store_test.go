package project

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *store.Memory) {
	t.Helper()

	slots := store.NewMemory()
	s := New(slots, opts...)
	require.NoError(t, s.Load(context.Background()))

	return s, slots
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.List())
}

func TestStore_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemory()
	require.NoError(t, slots.Put(ctx, store.KeyProjects, "{not json"))

	var buf bytes.Buffer

	s := New(slots, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, s.Load(ctx))

	assert.Equal(t, 0, s.Len())
	assert.Contains(t, buf.String(), "unreadable")
}

func TestStore_LoadExisting(t *testing.T) {
	ctx := context.Background()
	slots := store.NewMemory()
	require.NoError(t, slots.Put(ctx, store.KeyProjects,
		`[{"id":2,"name":"b","startDate":null,"endDate":null,"days":0,"status":"ongoing","payment":5,"paymentDate":null},
		  {"id":1,"name":"a","startDate":"2024-01-01","endDate":null,"days":3,"status":"completed","payment":2.5,"paymentDate":null}]`))

	s := New(slots)
	require.NoError(t, s.Load(ctx))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Name)
	assert.Equal(t, "2024-01-01", *list[1].StartDate)
	assert.Equal(t, 7.5, s.Summary().TotalPayment)
}

type failingSlots struct {
	*store.Memory
	err error
}

func (f failingSlots) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingSlots) Put(context.Context, string, string) error         { return f.err }

func TestStore_LoadSlotError(t *testing.T) {
	boom := errors.New("disk gone")
	s := New(failingSlots{Memory: store.NewMemory(), err: boom})

	assert.ErrorIs(t, s.Load(context.Background()), boom)
}

func TestStore_AddPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	s, slots := newTestStore(t, WithClock(fixedClock(1000)))

	first, err := s.Add(ctx, model.Project{Name: "first"})
	require.NoError(t, err)

	second, err := s.Add(ctx, model.Project{Name: "second"})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), first.ID)
	assert.Equal(t, int64(1001), second.ID, "same clock tick must not reuse an id")

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)

	reloaded := New(slots)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, list, reloaded.List())
}

func TestStore_AddIDMonotonicWhenClockGoesBack(t *testing.T) {
	ctx := context.Background()
	now := int64(5000)
	s, _ := newTestStore(t, WithClock(func() time.Time { return time.UnixMilli(now) }))

	a, err := s.Add(ctx, model.Project{Name: "a"})
	require.NoError(t, err)

	now = 10
	b, err := s.Add(ctx, model.Project{Name: "b"})
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, WithClock(fixedClock(1)))

	p, err := s.Add(ctx, model.Project{Name: "old", Payment: 1})
	require.NoError(t, err)

	updated, err := s.Update(ctx, p.ID, model.Project{ID: 999, Name: "new", Payment: 3})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID, "id is never replaced")

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, 3.0, got.Payment)
}

func TestStore_UpdateNotFoundLeavesCollection(t *testing.T) {
	ctx := context.Background()
	s, slots := newTestStore(t)

	_, err := s.Add(ctx, model.Project{Name: "keep"})
	require.NoError(t, err)

	before := s.List()
	raw, _, _ := slots.Get(ctx, store.KeyProjects)

	_, err = s.Update(ctx, 42, model.Project{Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, s.List())

	after, _, _ := slots.Get(ctx, store.KeyProjects)
	assert.Equal(t, raw, after)
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	p, err := s.Add(ctx, model.Project{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, p.ID))

	_, err = s.Get(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Remove(ctx, p.ID), ErrNotFound)
}

func TestStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Add(ctx, model.Project{Name: "existing"})
	require.NoError(t, err)

	incoming := []model.Project{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}}
	require.NoError(t, s.ReplaceAll(ctx, incoming))
	assert.Equal(t, incoming, s.List())

	require.NoError(t, s.ReplaceAll(ctx, []model.Project{}))
	assert.Equal(t, 0, s.Len())
}

func TestStore_ReplaceAllRejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		projects []model.Project
	}{
		{"nil", nil},
		{"duplicate ids", []model.Project{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}},
		{"empty name", []model.Project{{ID: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			_, err := s.Add(ctx, model.Project{Name: "keep"})
			require.NoError(t, err)

			assert.ErrorIs(t, s.ReplaceAll(ctx, tt.projects), ErrInvalidFormat)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("read-only")
	slots := failingSlots{Memory: store.NewMemory(), err: boom}

	s := New(slots)

	_, err := s.Add(ctx, model.Project{Name: "x"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestStore_RendererCalledAfterPersist(t *testing.T) {
	ctx := context.Background()

	var (
		calls   int
		summary model.Summary
	)

	s, _ := newTestStore(t, WithRenderer(func(p []model.Project, sum model.Summary) {
		calls++
		summary = sum
	}))

	_, err := s.Add(ctx, model.Project{Name: "a", Payment: 10.5})
	require.NoError(t, err)

	_, err = s.Add(ctx, model.Project{Name: "b", Payment: 0.25})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "10.75", summary.TotalFormatted())

	require.NoError(t, s.Persist(ctx))
	assert.Equal(t, 3, calls)

	_, err = s.Update(ctx, 12345, model.Project{Name: "missing"})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "failed mutations do not render")
}

func TestStore_RendererMayReadStore(t *testing.T) {
	ctx := context.Background()

	var s *Store

	s, _ = newTestStore(t, WithRenderer(func([]model.Project, model.Summary) {
		_ = s.Len()
	}))

	_, err := s.Add(ctx, model.Project{Name: "reentrant"})
	require.NoError(t, err)
}

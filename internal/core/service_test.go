package core

import (
	"context"
	"testing"

	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/project"
	"github.com/inovacc/projtrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "hunter2"

func yes(string) bool { return true }
func no(string) bool  { return false }

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()

	ctx := context.Background()
	slots := store.NewMemory()

	projects := project.New(slots)
	require.NoError(t, projects.Load(ctx))

	svc := NewService(projects, auth.NewGate(slots))
	require.NoError(t, svc.SetPassword(ctx, testPassword))

	return svc, slots
}

func TestService_CreateProject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{
		Name:      "Landing page",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		Payment:   "300",
	}, testPassword)
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, 5, p.Days)
	assert.Equal(t, model.StatusOngoing, p.Status)

	got, err := svc.ViewProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_CreateProjectFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateProject(ctx, ProjectInput{Name: ""}, testPassword)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateProject(ctx, ProjectInput{Name: "x"}, "guess")
		assert.ErrorIs(t, err, auth.ErrDenied)
		assert.Empty(t, svc.ListProjects())
	})

	t.Run("no password configured", func(t *testing.T) {
		slots := store.NewMemory()
		projects := project.New(slots)
		require.NoError(t, projects.Load(ctx))

		svc := NewService(projects, auth.NewGate(slots))
		_, err := svc.CreateProject(ctx, ProjectInput{Name: "x"}, "anything")
		assert.ErrorIs(t, err, auth.ErrNotConfigured)
	})
}

func TestService_CreateNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, name := range []string{"one", "two", "three"} {
		_, err := svc.CreateProject(ctx, ProjectInput{Name: name}, testPassword)
		require.NoError(t, err)
	}

	list := svc.ListProjects()
	require.Len(t, list, 3)
	assert.Equal(t, "three", list[0].Name)
	assert.Equal(t, "one", list[2].Name)
}

func TestService_EditProject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{Name: "draft"}, testPassword)
	require.NoError(t, err)

	in := FromProject(p)
	in.Name = "final"
	in.Status = "completed"

	updated, err := svc.EditProject(ctx, p.ID, in, testPassword)
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "final", updated.Name)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	_, err = svc.EditProject(ctx, p.ID, in, "wrong")
	assert.ErrorIs(t, err, auth.ErrDenied)
}

func TestService_EditProjectNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateProject(ctx, ProjectInput{Name: "keep"}, testPassword)
	require.NoError(t, err)

	before := svc.ListProjects()

	_, err = svc.EditProject(ctx, 404, ProjectInput{Name: "ghost"}, testPassword)
	assert.ErrorIs(t, err, project.ErrNotFound)
	assert.Equal(t, before, svc.ListProjects())
}

func TestService_DeleteProject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{Name: "doomed"}, testPassword)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteProject(ctx, p.ID, "wrong", yes), auth.ErrDenied)
	assert.ErrorIs(t, svc.DeleteProject(ctx, p.ID, testPassword, no), ErrNotConfirmed)
	assert.ErrorIs(t, svc.DeleteProject(ctx, p.ID, testPassword, nil), ErrNotConfirmed)

	_, err = svc.ViewProject(p.ID)
	require.NoError(t, err, "declined delete keeps the project")

	require.NoError(t, svc.DeleteProject(ctx, p.ID, testPassword, yes))

	_, err = svc.ViewProject(p.ID)
	assert.ErrorIs(t, err, project.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteProject(ctx, p.ID, testPassword, yes), project.ErrNotFound)
}

func TestService_ConfirmAfterPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{Name: "x"}, testPassword)
	require.NoError(t, err)

	asked := false
	err = svc.DeleteProject(ctx, p.ID, "wrong", func(string) bool {
		asked = true
		return true
	})
	assert.ErrorIs(t, err, auth.ErrDenied)
	assert.False(t, asked, "confirmation is only asked once authorized")
}

func TestService_BeginDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{Name: "pending"}, testPassword)
	require.NoError(t, err)

	pending, err := svc.BeginDelete(ctx, p.ID, yes)
	require.NoError(t, err)
	assert.Equal(t, auth.StateAwaitingInput, svc.Gate().State())

	_, err = svc.BeginDelete(ctx, p.ID, yes)
	assert.ErrorIs(t, err, auth.ErrBusy)

	pending.Cancel()
	assert.Equal(t, auth.StateIdle, svc.Gate().State())
	assert.Equal(t, 1, svc.Summary().Count, "cancelled delete keeps the project")

	pending, err = svc.BeginDelete(ctx, p.ID, yes)
	require.NoError(t, err)
	require.NoError(t, pending.Resolve(ctx, testPassword))
	assert.Equal(t, 0, svc.Summary().Count)

	_, err = svc.BeginDelete(ctx, p.ID, yes)
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestService_ExportNothing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportProjects(context.Background(), testPassword)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, in := range []ProjectInput{
		{Name: "a", Payment: "10"},
		{Name: "b", StartDate: "2024-01-01", EndDate: "2024-01-10", Status: "completed"},
		{Name: "c", PaymentDate: "2024-02-02", Payment: "2.5"},
	} {
		_, err := svc.CreateProject(ctx, in, testPassword)
		require.NoError(t, err)
	}

	original := svc.ListProjects()

	doc, err := svc.ExportProjects(ctx, testPassword)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "\n  {")

	_, err = svc.ExportProjects(ctx, "wrong")
	assert.ErrorIs(t, err, auth.ErrDenied)

	other, _ := newTestService(t)
	n, err := other.ImportProjects(ctx, doc, testPassword)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, original, other.ListProjects())
}

func TestService_ImportReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateProject(ctx, ProjectInput{Name: "local only"}, testPassword)
	require.NoError(t, err)

	n, err := svc.ImportProjects(ctx, []byte(`[{"id":1,"name":"imported","status":"ongoing"}]`), testPassword)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	list := svc.ListProjects()
	require.Len(t, list, 1)
	assert.Equal(t, "imported", list[0].Name)
}

func TestService_ImportInvalid(t *testing.T) {
	ctx := context.Background()

	docs := map[string]string{
		"object":         `{"id":1,"name":"x"}`,
		"garbage":        `not json`,
		"number":         `7`,
		"quoted payment": `[{"id":1,"name":"x","payment":"100"}]`,
		"duplicate ids":  `[{"id":1,"name":"x"},{"id":1,"name":"y"}]`,
		"empty name":     `[{"id":1,"name":""}]`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.CreateProject(ctx, ProjectInput{Name: "keep"}, testPassword)
			require.NoError(t, err)

			before := svc.ListProjects()

			_, err = svc.ImportProjects(ctx, []byte(doc), testPassword)
			assert.ErrorIs(t, err, project.ErrInvalidFormat)
			assert.Equal(t, before, svc.ListProjects())
		})
	}
}

func TestService_ImportWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.ImportProjects(ctx, []byte(`[]`), "wrong")
	assert.ErrorIs(t, err, auth.ErrDenied)
}

func TestService_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	svc, slots := newTestService(t)

	p, err := svc.CreateProject(ctx, ProjectInput{Name: "durable", Payment: "7"}, testPassword)
	require.NoError(t, err)

	projects := project.New(slots)
	require.NoError(t, projects.Load(ctx))

	again := NewService(projects, auth.NewGate(slots))
	got, err := again.ViewProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, "7.00", again.Summary().TotalFormatted())

	_, err = again.CreateProject(ctx, ProjectInput{Name: "second"}, testPassword)
	require.NoError(t, err, "credential survives a restart")
}

func TestService_SetPasswordEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	assert.ErrorIs(t, svc.SetPassword(context.Background(), " "), auth.ErrEmptyPassword)
}

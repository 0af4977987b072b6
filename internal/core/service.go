package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/logging"
	"github.com/inovacc/projtrack/internal/model"
	"github.com/inovacc/projtrack/internal/project"
)

// ExportFileName is the default name of the export document.
const ExportFileName = "projects_backup.json"

// Confirmer asks the user a yes/no question. It is consulted after the
// password has been accepted.
type Confirmer func(prompt string) bool

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// Service exposes the project operations.
type Service struct {
	projects *project.Store
	gate     *auth.Gate
	logger   *slog.Logger
}

// NewService wires a loaded store and a gate together.
func NewService(projects *project.Store, gate *auth.Gate, opts ...Option) *Service {
	s := &Service{
		projects: projects,
		gate:     gate,
		logger:   logging.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Gate returns the gate guarding the service, for callers that drive the
// prompt themselves.
func (s *Service) Gate() *auth.Gate {
	return s.gate
}

// SetPassword replaces the shared password. It is not a protected action.
func (s *Service) SetPassword(ctx context.Context, password string) error {
	return s.gate.SetCredential(ctx, password)
}

// CreateProject validates in and stores it as a new project.
func (s *Service) CreateProject(ctx context.Context, in ProjectInput, password string) (model.Project, error) {
	p, err := in.Build()
	if err != nil {
		return model.Project{}, err
	}

	var created model.Project

	err = s.gate.Guard(ctx, password, func(ctx context.Context) error {
		created, err = s.projects.Add(ctx, p)
		return err
	})
	if err != nil {
		return model.Project{}, err
	}

	s.logger.Info("project created", "id", created.ID)

	return created, nil
}

// EditProject replaces the fields of project id with in.
func (s *Service) EditProject(ctx context.Context, id int64, in ProjectInput, password string) (model.Project, error) {
	p, err := in.Build()
	if err != nil {
		return model.Project{}, err
	}

	if _, err := s.projects.Get(id); err != nil {
		return model.Project{}, err
	}

	var updated model.Project

	err = s.gate.Guard(ctx, password, func(ctx context.Context) error {
		updated, err = s.projects.Update(ctx, id, p)
		return err
	})
	if err != nil {
		return model.Project{}, err
	}

	s.logger.Info("project updated", "id", id)

	return updated, nil
}

// DeleteProject removes project id after the password and an explicit
// confirmation. A nil confirm counts as declined.
func (s *Service) DeleteProject(ctx context.Context, id int64, password string, confirm Confirmer) error {
	pending, err := s.BeginDelete(ctx, id, confirm)
	if err != nil {
		return err
	}

	err = pending.Resolve(ctx, password)
	if !auth.IsTerminal(pending.State()) {
		pending.Cancel()
	}

	return err
}

// BeginDelete opens an authorization request for deleting project id. The
// caller collects the password and settles the request with Resolve or
// Cancel; confirm is asked only once the password has been accepted.
func (s *Service) BeginDelete(ctx context.Context, id int64, confirm Confirmer) (*auth.Pending, error) {
	p, err := s.projects.Get(id)
	if err != nil {
		return nil, err
	}

	return s.gate.Request(ctx, func(ctx context.Context) error {
		if confirm == nil || !confirm(fmt.Sprintf("Delete project %q? [y/N]: ", p.Name)) {
			return ErrNotConfirmed
		}

		if err := s.projects.Remove(ctx, id); err != nil {
			return err
		}

		s.logger.Info("project deleted", "id", id)

		return nil
	})
}

// ExportProjects returns the collection as a pretty-printed JSON document.
func (s *Service) ExportProjects(ctx context.Context, password string) ([]byte, error) {
	var doc []byte

	err := s.gate.Guard(ctx, password, func(context.Context) error {
		projects := s.projects.List()
		if len(projects) == 0 {
			return ErrNothingToExport
		}

		var err error

		doc, err = project.EncodeDocument(projects)
		if err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ImportProjects replaces the whole collection with the records in document
// and returns how many were imported. The document is parsed before the
// password is checked.
func (s *Service) ImportProjects(ctx context.Context, document []byte, password string) (int, error) {
	projects, err := project.DecodeCollection(document)
	if err != nil {
		return 0, err
	}

	err = s.gate.Guard(ctx, password, func(ctx context.Context) error {
		return s.projects.ReplaceAll(ctx, projects)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("projects imported", "count", len(projects))

	return len(projects), nil
}

// ViewProject returns a single project. Reading needs no password.
func (s *Service) ViewProject(id int64) (model.Project, error) {
	return s.projects.Get(id)
}

// ListProjects returns the collection, newest first.
func (s *Service) ListProjects() []model.Project {
	return s.projects.List()
}

// Summary returns the project count and payment total.
func (s *Service) Summary() model.Summary {
	return s.projects.Summary()
}

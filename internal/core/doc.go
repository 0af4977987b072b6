// Package core provides the project operations of projtrack.
//
// This package contains all business rules separated from UI concerns.
// Functions here validate form input, ask the [auth.Gate] for permission and
// then mutate the [project.Store].
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Input is validated before the password is checked, so invalid input
//     never opens a prompt
//   - UI-specific logic belongs in the cmd and cli packages, not here
//
// # Protected operations
//
// Create, edit, delete, export and import each require the shared password.
// Setting the password and reading projects do not.
//
// Import replaces the whole collection with the document contents. Nothing
// is merged; projects absent from the document are gone afterwards.
package core

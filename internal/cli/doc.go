// Package cli provides the terminal user interface components for projtrack.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - ProjectList: filterable project list titled with the summary; Enter
//     views, e edits and d deletes the highlighted project
//   - Password: masked single-field prompt used to settle an
//     [auth.Pending] request through [Settle]
//   - RenderProject: boxed read-only detail view
//
// Models never touch storage. They report a selection or a typed value and
// the command that started them performs the operation afterwards.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli

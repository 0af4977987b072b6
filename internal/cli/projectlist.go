package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/projtrack/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	statusStyles = map[model.Status]lipgloss.Style{
		model.StatusOngoing:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		model.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		model.StatusCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		model.StatusPaused:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

// Action is what the user chose to do with the selected project.
type Action string

const (
	ActionNone   Action = ""
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var (
	editKey   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	deleteKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

type projectItem struct {
	project model.Project
}

func (i projectItem) Title() string {
	return i.project.Name
}

func (i projectItem) Description() string {
	p := i.project

	return fmt.Sprintf("%s → %s | %d days | %s | %.2f",
		model.DateString(p.StartDate, "-"),
		model.DateString(p.EndDate, "-"),
		p.Days,
		StatusLabel(p.Status),
		p.Payment)
}

func (i projectItem) FilterValue() string {
	return i.project.Name
}

// StatusLabel renders a status with its color.
func StatusLabel(s model.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}

	return style.Render(string(s))
}

// ProjectListModel is a filterable list of projects. Enter views, e edits
// and d deletes the highlighted project; the caller acts on the choice after
// the program exits.
type ProjectListModel struct {
	list     list.Model
	selected *model.Project
	action   Action
	quitting bool
}

// NewProjectList builds the list for projects, titled with the summary.
func NewProjectList(projects []model.Project, summary model.Summary) ProjectListModel {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = SummaryLine(summary)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{editKey, deleteKey}
	}

	return ProjectListModel{list: l}
}

// SummaryLine formats the collection summary.
func SummaryLine(s model.Summary) string {
	return fmt.Sprintf("Projects: %d | Total payment: %s", s.Count, s.TotalFormatted())
}

func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

func (m ProjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			return m.choose(ActionView)

		case "e":
			return m.choose(ActionEdit)

		case "d":
			return m.choose(ActionDelete)
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ProjectListModel) choose(action Action) (tea.Model, tea.Cmd) {
	i, ok := m.list.SelectedItem().(projectItem)
	if ok {
		m.selected = &i.project
		m.action = action
	}

	return m, tea.Quit
}

func (m ProjectListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selection returns the chosen project and action, or nil and ActionNone
// when the user quit.
func (m ProjectListModel) Selection() (*model.Project, Action) {
	return m.selected, m.action
}

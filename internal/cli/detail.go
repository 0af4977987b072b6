package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/projtrack/internal/model"
)

var (
	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().Bold(true)
	detailLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
)

// RenderProject renders the read-only detail view of p. Missing dates show
// as N/A.
func RenderProject(p model.Project) string {
	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", p.ID)},
		{"Start date", model.DateString(p.StartDate, "N/A")},
		{"End date", model.DateString(p.EndDate, "N/A")},
		{"Days", fmt.Sprintf("%d", p.Days)},
		{"Status", StatusLabel(p.Status)},
		{"Payment", fmt.Sprintf("%.2f", p.Payment)},
		{"Payment date", model.DateString(p.PaymentDate, "N/A")},
	}

	var b strings.Builder

	b.WriteString(detailTitleStyle.Render(p.Name))

	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(detailLabelStyle.Render(row[0]))
		b.WriteString(row[1])
	}

	return detailBoxStyle.Render(b.String())
}

package styles

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Message styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// Table styles
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	BorderStyle lipgloss.Style

	statusColors   map[models.Status]string
	priorityColors map[models.Priority]string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Border))

	statusColors = map[models.Status]string{
		models.StatusPending: colors.Pending,
		models.StatusDone:    colors.Done,
		models.StatusOverdue: colors.Overdue,
	}
	priorityColors = map[models.Priority]string{
		models.PriorityHigh:   colors.High,
		models.PriorityMedium: colors.Medium,
		models.PriorityLow:    colors.Low,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderStatus renders a status in its theme color
func RenderStatus(status models.Status) string {
	return BoldColoredText(string(status), statusColors[status])
}

// PriorityLabel is the display text for a priority, "None" when unset
func PriorityLabel(priority models.Priority) string {
	if priority == models.PriorityNone {
		return "None"
	}
	return string(priority)
}

// RenderPriority renders a priority in its theme color
func RenderPriority(priority models.Priority) string {
	if priority == models.PriorityNone {
		return SubtitleStyle.Render(PriorityLabel(priority))
	}
	return ColoredText(PriorityLabel(priority), priorityColors[priority])
}

// StatusColor returns the theme color of a status
func StatusColor(status models.Status) string {
	return statusColors[status]
}

// PriorityColor returns the theme color of a priority, "" when unset
func PriorityColor(priority models.Priority) string {
	return priorityColors[priority]
}

// NewTable returns a rounded table with themed header, cells and border.
// cellColor may override the foreground of individual data cells; "" keeps the default.
func NewTable(cellColor func(row, col int) string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			if cellColor != nil {
				if c := cellColor(row, col); c != "" {
					return CellStyle.Foreground(lipgloss.Color(c))
				}
			}
			return CellStyle
		})
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wallarea/internal/report"
)

const helpLine = "enter calculate • tab/shift+tab move • ctrl+n add wall • ctrl+o add door/window • ctrl+d remove row • esc quit"

// View renders the form.
func (m FormModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.styles
	unit := m.cfg.Calculator.Unit
	lengthUnit := strings.TrimPrefix(report.AreaUnit(unit), "square ")

	var b strings.Builder
	b.WriteString(s.Title.Render("Wall Area Calculator"))
	b.WriteString("\n")

	b.WriteString(s.Label.Render("Wall Height (" + lengthUnit + "):"))
	b.WriteString("\n")
	b.WriteString(m.renderField(field{kind: fieldHeight}))
	b.WriteString(m.divider())

	b.WriteString(m.sectionHeader("Wall Lengths ("+lengthUnit+")", "ctrl+n Add Wall"))
	b.WriteString(m.renderCollectionError("segments"))
	for _, seg := range m.segments {
		b.WriteString(m.renderField(field{kind: fieldSegment, rowID: seg.id}))
	}
	b.WriteString(m.divider())

	b.WriteString(m.sectionHeader("Doors and Windows", "ctrl+o Add Door/Window"))
	b.WriteString(m.renderCollectionError("openings"))
	for _, o := range m.openings {
		w := m.renderField(field{kind: fieldOpeningWidth, rowID: o.id})
		h := m.renderField(field{kind: fieldOpeningHeight, rowID: o.id})
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, w, "  ", h))
	}
	b.WriteString(m.divider())

	b.WriteString(s.Muted.Render("[enter] Calculate Total Wall Area"))
	if m.Dirty() {
		b.WriteString("  ")
		b.WriteString(s.Error.Render("[ctrl+r] Reset"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderCollectionError("area"))

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(s.Section.Render("Total Wall Area (excluding doors and windows):"))
		b.WriteString("\n")
		b.WriteString(s.Result.Render(report.FormatArea(m.result.NetArea, m.cfg.Calculator.Precision, unit)))
		b.WriteString("  ")
		b.WriteString(s.Hint.Render("ctrl+y copy"))
		b.WriteString("\n")
	}

	if msg, ok := m.errors["form"]; ok {
		b.WriteString(s.Error.Render(msg))
		b.WriteString("\n")
	}
	if m.status != "" {
		status := s.Info
		if m.statusOK {
			status = s.Success
		}
		b.WriteString(status.Render(m.status))
		b.WriteString("\n")
	}

	card := s.Card
	if w := m.cardWidth(); w > 0 {
		card = card.Width(w)
	}
	return card.Render(b.String()) + "\n" + s.Hint.Render(helpLine) + "\n"
}

// cardWidth is the card width for the current terminal, or 0 before the first resize.
func (m FormModel) cardWidth() int {
	if m.width <= 4 {
		return 0
	}
	return min(m.width-4, 72)
}

// divider separates the height, wall and opening sections inside the card.
func (m FormModel) divider() string {
	width := 40
	if w := m.cardWidth(); w > 0 {
		// Card border and horizontal padding.
		width = max(w-6, 1)
	}
	return m.styles.RenderDivider(width) + "\n"
}

func (m FormModel) sectionHeader(label, action string) string {
	return m.styles.Section.Render(label) + "  " + m.styles.Hint.Render(action) + "\n"
}

// renderField draws one input with its focus marker and, below it, its error.
func (m FormModel) renderField(f field) string {
	in := m.input(f)
	if in == nil {
		return ""
	}

	marker := "  "
	if m.focused() == f {
		marker = m.styles.Cursor.Render("› ")
	}
	line := marker + "[" + in.View() + "]"

	if msg, ok := m.errors[f.key()]; ok {
		line += "\n  " + m.styles.Error.Render(msg)
	}
	return line + "\n"
}

func (m FormModel) renderCollectionError(key string) string {
	msg, ok := m.errors[key]
	if !ok {
		return ""
	}
	return "  " + m.styles.Error.Render(msg) + "\n"
}

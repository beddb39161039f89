package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"wallarea/internal/area"
	"wallarea/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestForm() FormModel {
	cfg := config.DefaultConfig()
	cfg.UI.Theme = "light"
	return NewFormModel(cfg)
}

func send(t *testing.T, m FormModel, msg tea.Msg) FormModel {
	t.Helper()
	next, _ := m.Update(msg)
	fm, ok := next.(FormModel)
	require.True(t, ok, "Update must return a FormModel")
	return fm
}

func press(t *testing.T, m FormModel, keys ...tea.KeyType) FormModel {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, tea.KeyMsg{Type: k})
	}
	return m
}

func typeText(t *testing.T, m FormModel, text string) FormModel {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// fillDefaultRows types into the blank segment and opening rows of a fresh form.
func fillDefaultRows(t *testing.T, m FormModel, segment, width, height string) FormModel {
	t.Helper()
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, segment)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, width)
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, height)
}

func TestFormModel_DefaultState(t *testing.T) {
	m := newTestForm()

	f := m.Form()
	assert.Equal(t, area.DefaultWallHeight, f.Height)
	assert.Len(t, f.Segments, 1)
	assert.Len(t, f.Openings, 1)
	assert.False(t, m.Dirty())
	assert.Equal(t, 0, m.focus)

	_, ok := m.Result()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), "Reset")
}

func TestFormModel_TabNavigationWraps(t *testing.T) {
	m := newTestForm()

	m = press(t, m, tea.KeyTab, tea.KeyTab, tea.KeyTab)
	assert.Equal(t, 3, m.focus)
	assert.Equal(t, fieldOpeningHeight, m.focused().kind)

	m = press(t, m, tea.KeyTab)
	assert.Equal(t, 0, m.focus, "Tab on the last field should wrap to the first")

	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, 3, m.focus, "Shift+Tab on the first field should wrap to the last")

	m = press(t, m, tea.KeyUp)
	assert.Equal(t, 2, m.focus)
	m = press(t, m, tea.KeyDown)
	assert.Equal(t, 3, m.focus)
}

func TestFormModel_Calculate(t *testing.T) {
	m := fillDefaultRows(t, newTestForm(), "5", "1", "2")
	m = press(t, m, tea.KeyEnter)

	result, ok := m.Result()
	require.True(t, ok)
	assert.InDelta(t, 11.5, result.NetArea, 1e-9)

	view := m.View()
	assert.Contains(t, view, "Total Wall Area (excluding doors and windows):")
	assert.Contains(t, view, "11.50 square meters")
}

func TestFormModel_CalculateShowsEveryError(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyEnter)

	_, ok := m.Result()
	assert.False(t, ok)
	assert.Empty(t, m.FieldError("height"))
	assert.Equal(t, area.MsgInvalidNumber, m.FieldError("segments.0.length"))
	assert.Equal(t, area.MsgInvalidNumber, m.FieldError("openings.0.width"))
	assert.Equal(t, area.MsgInvalidNumber, m.FieldError("openings.0.height"))
	assert.Equal(t, 3, strings.Count(m.View(), area.MsgInvalidNumber))
}

func TestFormModel_NoErrorsBeforeFirstCalculate(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyTab)
	m = typeText(t, m, "abc")

	assert.Empty(t, m.FieldError("segments.0.length"))
	assert.NotContains(t, m.View(), area.MsgInvalidNumber)
}

func TestFormModel_RevalidatesAfterFirstCalculate(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyEnter)
	require.Equal(t, area.MsgInvalidNumber, m.FieldError("segments.0.length"))

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "4")

	assert.Empty(t, m.FieldError("segments.0.length"))
	assert.Equal(t, area.MsgInvalidNumber, m.FieldError("openings.0.width"))
}

func TestFormModel_OpeningTallerThanWall(t *testing.T) {
	m := newTestForm()
	m.height.SetValue("2")
	m = fillDefaultRows(t, m, "4", "1", "3")
	m = press(t, m, tea.KeyEnter)

	_, ok := m.Result()
	assert.False(t, ok)
	assert.Equal(t, area.MsgOpeningTooTall, m.FieldError("openings.0.height"))
	assert.Empty(t, m.FieldError("openings.0.width"))
	assert.Empty(t, m.FieldError("segments.0.length"))
}

func TestFormModel_AddRows(t *testing.T) {
	m := newTestForm()

	m = press(t, m, tea.KeyCtrlN)
	require.Len(t, m.segments, 2)
	assert.Equal(t, field{kind: fieldSegment, rowID: m.segments[1].id}, m.focused())
	assert.True(t, m.Dirty())

	m = press(t, m, tea.KeyCtrlO)
	require.Len(t, m.openings, 2)
	assert.Equal(t, field{kind: fieldOpeningWidth, rowID: m.openings[1].id}, m.focused())
	assert.Equal(t, "Opening 2 Width (m)", m.openings[1].width.Placeholder)

	assert.Contains(t, m.View(), "Reset")
}

func TestFormModel_RemoveRows(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyTab, tea.KeyCtrlD)
	assert.Empty(t, m.segments)

	m = press(t, m, tea.KeyEnter)
	assert.Contains(t, m.View(), area.MsgNoSegments)

	// Focus now sits on the opening width; removing it drops the whole row.
	require.Equal(t, fieldOpeningWidth, m.focused().kind)
	m = press(t, m, tea.KeyCtrlD)
	assert.Empty(t, m.openings)
	assert.Equal(t, fieldHeight, m.focused().kind)
}

func TestFormModel_RemoveHeightIsRejected(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyCtrlD)

	assert.Len(t, m.segments, 1)
	assert.Len(t, m.openings, 1)
	assert.Contains(t, m.View(), "Only wall and door/window rows can be removed")
}

func TestFormModel_ErrorsFollowRowIdentity(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyTab)
	m = typeText(t, m, "3")
	m = press(t, m, tea.KeyCtrlN)
	m = typeText(t, m, "bad")
	m = press(t, m, tea.KeyEnter)
	require.Equal(t, area.MsgInvalidNumber, m.FieldError("segments.1.length"))
	badID := m.segments[1].id

	// Remove the first (valid) segment; the error must move with its row.
	m = press(t, m, tea.KeyShiftTab, tea.KeyCtrlD)
	require.Len(t, m.segments, 1)
	assert.Equal(t, badID, m.segments[0].id)
	assert.Equal(t, area.MsgInvalidNumber, m.FieldError("segments.0.length"))
}

func TestFormModel_Reset(t *testing.T) {
	m := fillDefaultRows(t, newTestForm(), "5", "1", "2")
	m = press(t, m, tea.KeyEnter, tea.KeyCtrlN)
	require.True(t, m.Dirty())

	m = press(t, m, tea.KeyCtrlR)

	assert.False(t, m.Dirty())
	_, ok := m.Result()
	assert.False(t, ok)
	assert.Len(t, m.segments, 1)
	assert.Equal(t, 0, m.focus)
	assert.NotContains(t, m.View(), "square meters")
}

func TestFormModel_ResetWhenClean(t *testing.T) {
	m := newTestForm()
	before := m.Form()

	m = press(t, m, tea.KeyCtrlR)

	assert.Equal(t, before, m.Form(), "a clean form keeps its rows")
	assert.Contains(t, m.View(), "Nothing to reset")
}

func TestFormModel_CopyResult(t *testing.T) {
	var copied string
	old := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = old }()

	m := press(t, newTestForm(), tea.KeyCtrlY)
	assert.Empty(t, copied)
	assert.Contains(t, m.View(), "Nothing to copy yet")

	m = fillDefaultRows(t, m, "5", "1", "2")
	m = press(t, m, tea.KeyEnter, tea.KeyCtrlY)
	assert.Equal(t, "11.50 square meters", copied)
	assert.Contains(t, m.View(), "Copied result to clipboard")
}

func TestFormModel_ConfigReload(t *testing.T) {
	m := newTestForm()
	m.height.SetValue("2")
	m = fillDefaultRows(t, m, "1", "3", "1")
	m = press(t, m, tea.KeyEnter)
	_, ok := m.Result()
	require.True(t, ok, "width check is off by default")

	cfg := config.DefaultConfig()
	cfg.UI.Theme = "dark"
	cfg.Calculator.CheckOpeningWidth = true
	cfg.Calculator.Precision = 1
	m = send(t, m, ConfigReloadedMsg{Config: cfg})

	assert.True(t, m.styles.Theme.IsDark)
	view := m.View()
	assert.Contains(t, view, area.MsgOpeningsTooWide)
	assert.Contains(t, view, "Configuration reloaded")
}

func TestFormModel_Quit(t *testing.T) {
	m := newTestForm()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestFormModel_LongInputIsKept(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyTab)
	long := "1." + strings.Repeat("0", 60) + "1"
	m = typeText(t, m, long)

	assert.Equal(t, long, m.Form().Segments[0].Length)
}

func TestFormModel_OverflowingAreaShowsError(t *testing.T) {
	m := newTestForm()
	m.height.SetValue("1e300")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "1e300")
	m = press(t, m, tea.KeyTab, tea.KeyCtrlD)
	m = press(t, m, tea.KeyEnter)

	_, ok := m.Result()
	assert.False(t, ok)
	assert.Equal(t, area.MsgAreaOutOfRange, m.FieldError("area"))
	assert.Contains(t, m.View(), area.MsgAreaOutOfRange)
}

func TestFormModel_SectionsAreDivided(t *testing.T) {
	m := send(t, newTestForm(), tea.WindowSizeMsg{Width: 60, Height: 40})

	divider := strings.Repeat("─", 60-4-6)
	assert.Equal(t, 3, strings.Count(m.View(), divider))
}

func TestFormModel_StatusKinds(t *testing.T) {
	old := clipboardWriteAll
	clipboardWriteAll = func(string) error { return nil }
	defer func() { clipboardWriteAll = old }()

	m := press(t, newTestForm(), tea.KeyCtrlY)
	assert.False(t, m.statusOK, "a hint is not a success")

	m = fillDefaultRows(t, m, "5", "1", "2")
	m = press(t, m, tea.KeyEnter, tea.KeyCtrlY)
	assert.True(t, m.statusOK)

	m = press(t, m, tea.KeyTab)
	assert.Empty(t, m.status)
	assert.False(t, m.statusOK)
}

func TestFormModel_AddedRowsGetFreshIDs(t *testing.T) {
	m := press(t, newTestForm(), tea.KeyCtrlN, tea.KeyCtrlN, tea.KeyCtrlO)

	seen := map[string]bool{}
	for _, s := range m.segments {
		assert.NotEmpty(t, s.id)
		seen[s.id] = true
	}
	for _, o := range m.openings {
		assert.NotEmpty(t, o.id)
		seen[o.id] = true
	}
	assert.Len(t, seen, len(m.segments)+len(m.openings))
}

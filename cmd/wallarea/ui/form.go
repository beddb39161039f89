package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"wallarea/internal/area"
	"wallarea/internal/config"
	"wallarea/internal/logging"
	"wallarea/internal/report"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// ConfigReloadedMsg carries a config that was reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// fieldKind identifies which input of a row has focus.
type fieldKind int

const (
	fieldHeight fieldKind = iota
	fieldSegment
	fieldOpeningWidth
	fieldOpeningHeight
)

// field is one focusable input, addressed by row identity.
type field struct {
	kind  fieldKind
	rowID string
}

// key returns the error-map key for the field.
func (f field) key() string {
	switch f.kind {
	case fieldSegment:
		return f.rowID + "/length"
	case fieldOpeningWidth:
		return f.rowID + "/width"
	case fieldOpeningHeight:
		return f.rowID + "/height"
	}
	return "height"
}

// errorKey maps a validation error onto the key of the field (or collection) it
// belongs to.
func errorKey(e area.ValidationError) string {
	if e.RowID != "" {
		return e.RowID + "/" + e.Path.Leaf()
	}
	return e.Path.String()
}

type segmentInput struct {
	id     string
	length textinput.Model
}

type openingInput struct {
	id     string
	width  textinput.Model
	height textinput.Model
}

// FormModel is the wall area calculator form.
type FormModel struct {
	cfg    *config.Config
	calc   *area.Calculator
	styles Styles

	uiLog   *zap.Logger
	calcLog *zap.Logger

	height   textinput.Model
	segments []segmentInput
	openings []openingInput
	baseline area.Form

	focus     int
	submitted bool
	result    *area.CalculationResult
	errors    map[string]string
	status    string
	statusOK  bool
	width     int
	quitting  bool
}

// NewFormModel creates the form in its default state.
func NewFormModel(cfg *config.Config) FormModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := FormModel{
		uiLog:   logging.Get(logging.CategoryUI),
		calcLog: logging.Get(logging.CategoryCalc),
		errors:  make(map[string]string),
	}
	m.applyConfig(cfg)
	m.load(area.DefaultState())
	m.setFocus(0)
	return m
}

func (m *FormModel) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.styles = NewStyles(DetectTheme(cfg.UI.Theme))
	m.calc = area.New(area.WithOpeningWidthCheck(cfg.Calculator.CheckOpeningWidth))
}

// load replaces every input with the contents of f and makes f the dirty baseline.
func (m *FormModel) load(f area.Form) {
	m.baseline = f.Clone()
	m.height = newInput("", f.Height)
	m.segments = nil
	for _, row := range f.Segments {
		m.segments = append(m.segments, segmentInput{id: row.ID, length: newInput("", row.Length)})
	}
	m.openings = nil
	for _, row := range f.Openings {
		m.openings = append(m.openings, openingInput{
			id:     row.ID,
			width:  newInput("", row.Width),
			height: newInput("", row.Height),
		})
	}
	m.renumber()
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = 22
	ti.SetValue(value)
	return ti
}

// renumber refreshes the positional placeholders after rows move.
func (m *FormModel) renumber() {
	for i := range m.segments {
		m.segments[i].length.Placeholder = fmt.Sprintf("Wall %d Length", i+1)
	}
	for i := range m.openings {
		m.openings[i].width.Placeholder = fmt.Sprintf("Opening %d Width (%s)", i+1, m.cfg.Calculator.Unit)
		m.openings[i].height.Placeholder = fmt.Sprintf("Opening %d Height (%s)", i+1, m.cfg.Calculator.Unit)
	}
}

// Form returns the current raw form state.
func (m FormModel) Form() area.Form {
	f := area.Form{Height: m.height.Value()}
	for _, s := range m.segments {
		f.Segments = append(f.Segments, area.SegmentRow{ID: s.id, Length: s.length.Value()})
	}
	for _, o := range m.openings {
		f.Openings = append(f.Openings, area.OpeningRow{ID: o.id, Width: o.width.Value(), Height: o.height.Value()})
	}
	return f
}

// Dirty reports whether the form differs from its default state.
func (m FormModel) Dirty() bool {
	return area.IsDirty(m.Form(), m.baseline)
}

// Result returns the last computed result, if any.
func (m FormModel) Result() (area.CalculationResult, bool) {
	if m.result == nil {
		return area.CalculationResult{}, false
	}
	return *m.result, true
}

// FieldError returns the message shown for a field path such as "height",
// "segments.0.length" or "openings.1.width", or "" if the field is valid.
func (m FormModel) FieldError(path string) string {
	if !m.submitted {
		return ""
	}
	_, errs := m.calc.Validate(m.Form())
	for _, e := range errs.At(path) {
		if msg, ok := m.errors[errorKey(e)]; ok {
			return msg
		}
	}
	return ""
}

// fields lists every focusable input in display order.
func (m FormModel) fields() []field {
	out := []field{{kind: fieldHeight}}
	for _, s := range m.segments {
		out = append(out, field{kind: fieldSegment, rowID: s.id})
	}
	for _, o := range m.openings {
		out = append(out,
			field{kind: fieldOpeningWidth, rowID: o.id},
			field{kind: fieldOpeningHeight, rowID: o.id},
		)
	}
	return out
}

func (m FormModel) focused() field {
	fs := m.fields()
	if m.focus < 0 || m.focus >= len(fs) {
		return fs[0]
	}
	return fs[m.focus]
}

// input returns a pointer to the text input behind f, or nil if the row is gone.
func (m *FormModel) input(f field) *textinput.Model {
	switch f.kind {
	case fieldHeight:
		return &m.height
	case fieldSegment:
		for i := range m.segments {
			if m.segments[i].id == f.rowID {
				return &m.segments[i].length
			}
		}
	case fieldOpeningWidth, fieldOpeningHeight:
		for i := range m.openings {
			if m.openings[i].id != f.rowID {
				continue
			}
			if f.kind == fieldOpeningWidth {
				return &m.openings[i].width
			}
			return &m.openings[i].height
		}
	}
	return nil
}

// setFocus moves focus to index i (clamped) and blurs every other input.
func (m *FormModel) setFocus(i int) tea.Cmd {
	fs := m.fields()
	if i < 0 {
		i = len(fs) - 1
	}
	if i >= len(fs) {
		i = 0
	}
	m.focus = i

	var cmd tea.Cmd
	for idx, f := range fs {
		in := m.input(f)
		if idx == i {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *FormModel) focusField(target field) tea.Cmd {
	for i, f := range m.fields() {
		if f == target {
			return m.setFocus(i)
		}
	}
	return m.setFocus(m.focus)
}

// Init initializes the model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.applyConfig(msg.Config)
			m.renumber()
			if m.submitted {
				m.revalidate()
			}
			m.setStatus("Configuration reloaded", true)
			m.uiLog.Info("config applied", zap.String("theme", msg.Config.UI.Theme))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.setStatus("", false)
		return m, m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		m.setStatus("", false)
		return m, m.setFocus(m.focus - 1)

	case "enter":
		m.calculate()
		return m, nil

	case "ctrl+n":
		return m, m.addSegment()

	case "ctrl+o":
		return m, m.addOpening()

	case "ctrl+d":
		return m, m.removeFocusedRow()

	case "ctrl+r":
		if !m.Dirty() {
			m.setStatus("Nothing to reset", false)
			return m, nil
		}
		return m, m.reset()

	case "ctrl+y":
		m.copyResult()
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and re-validates after the first
// calculate attempt.
func (m FormModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.input(m.focused())
	if in == nil {
		return m, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if m.submitted && in.Value() != before {
		m.revalidate()
	}
	return m, cmd
}

func (m *FormModel) calculate() {
	m.submitted = true
	m.setStatus("", false)
	form := m.Form()

	result, err := m.calc.Calculate(form)
	if err != nil {
		m.result = nil
		m.setErrors(err)
		m.calcLog.Info("calculation rejected",
			zap.Int("segments", len(form.Segments)),
			zap.Int("openings", len(form.Openings)),
			zap.Error(err),
		)
		return
	}

	m.errors = make(map[string]string)
	m.result = &result
	m.calcLog.Info("calculation succeeded",
		zap.Int("segments", len(form.Segments)),
		zap.Int("openings", len(form.Openings)),
		zap.Float64("net_area", result.NetArea),
	)
}

func (m *FormModel) revalidate() {
	_, errs := m.calc.Validate(m.Form())
	m.setErrors(errs)
}

func (m *FormModel) setErrors(err error) {
	m.errors = make(map[string]string)
	verrs, ok := err.(area.ValidationErrors)
	if !ok {
		if err != nil {
			m.errors["form"] = err.Error()
		}
		return
	}
	for _, e := range verrs {
		k := errorKey(e)
		if _, exists := m.errors[k]; !exists {
			m.errors[k] = e.Message
		}
	}
}

func (m *FormModel) addSegment() tea.Cmd {
	row := area.NewSegmentRow("")
	id := row.ID
	m.segments = append(m.segments, segmentInput{id: id, length: newInput("", row.Length)})
	m.renumber()
	m.afterRowChange()
	m.uiLog.Debug("segment added", zap.String("row", id))
	return m.focusField(field{kind: fieldSegment, rowID: id})
}

func (m *FormModel) addOpening() tea.Cmd {
	row := area.NewOpeningRow("", "")
	id := row.ID
	m.openings = append(m.openings, openingInput{id: id, width: newInput("", row.Width), height: newInput("", row.Height)})
	m.renumber()
	m.afterRowChange()
	m.uiLog.Debug("opening added", zap.String("row", id))
	return m.focusField(field{kind: fieldOpeningWidth, rowID: id})
}

func (m *FormModel) removeFocusedRow() tea.Cmd {
	target := m.focused()
	switch target.kind {
	case fieldSegment:
		for i := range m.segments {
			if m.segments[i].id == target.rowID {
				m.segments = append(m.segments[:i], m.segments[i+1:]...)
				break
			}
		}
	case fieldOpeningWidth, fieldOpeningHeight:
		for i := range m.openings {
			if m.openings[i].id == target.rowID {
				m.openings = append(m.openings[:i], m.openings[i+1:]...)
				break
			}
		}
	default:
		m.setStatus("Only wall and door/window rows can be removed", false)
		return nil
	}
	m.renumber()
	m.afterRowChange()
	m.uiLog.Debug("row removed", zap.String("row", target.rowID))
	// Focus stays at the same position, which now holds the next field.
	return m.setFocus(min(m.focus, len(m.fields())-1))
}

func (m *FormModel) afterRowChange() {
	m.setStatus("", false)
	if m.submitted {
		m.revalidate()
	}
}

func (m *FormModel) reset() tea.Cmd {
	m.load(area.DefaultState())
	m.result = nil
	m.submitted = false
	m.errors = make(map[string]string)
	m.setStatus("", false)
	m.uiLog.Info("form reset")
	return m.setFocus(0)
}

func (m *FormModel) setStatus(msg string, ok bool) {
	m.status = msg
	m.statusOK = ok
}

func (m *FormModel) copyResult() {
	if m.result == nil {
		m.setStatus("Nothing to copy yet", false)
		return
	}
	text := report.FormatArea(m.result.NetArea, m.cfg.Calculator.Precision, m.cfg.Calculator.Unit)
	if err := clipboardWriteAll(text); err != nil {
		m.setStatus("Failed to copy result", false)
		m.uiLog.Warn("clipboard write failed", zap.Error(err))
		return
	}
	m.setStatus("Copied result to clipboard", true)
}

// Package inspector implements the property inspector panel: one row per
// entity property, each edited by the control registered for its type.
package inspector

import (
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/inspector/internal/core/analytics"
	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/internal/core/logging"
	"github.com/colonyops/inspector/internal/core/property"
	"github.com/colonyops/inspector/internal/core/styles"
	"github.com/colonyops/inspector/internal/tui/components/form"
	"github.com/colonyops/inspector/internal/tui/controls"
)

// Options configures the inspector panel.
type Options struct {
	Entity     *property.Entity
	Properties []config.Property
	Reporter   analytics.Reporter // nil disables analytics
	Width      int                // width available to full-width controls
	SavePath   string             // entity snapshot written on quit; empty skips saving
}

// row tracks whether a property is currently rendered by its control or by
// the raw fallback.
type row struct {
	prop    config.Property
	control bool
}

// stats is shared between model copies and the callbacks registered on the
// interaction tree and the entity.
type stats struct {
	unhandled  int // signals that reached the panel root
	reported   int // analytics reports emitted by controls
	lastChange string
}

// countingReporter forwards reports and counts them for the status line.
type countingReporter struct {
	next  analytics.Reporter
	stats *stats
}

func (r countingReporter) Emit(target *interaction.Node, p analytics.Payload) {
	r.stats.reported++
	r.next.Emit(target, p)
}

// Model is the Bubble Tea model for the inspector panel.
type Model struct {
	entity   *property.Entity
	rows     []row
	stack    *form.Stack
	root     *interaction.Node
	rootSub  *interaction.Subscription
	reporter analytics.Reporter
	stats    *stats
	keys     keyMap
	help     help.Model
	docs     *helpRenderer
	logger   zerolog.Logger

	savePath string
	saveErr  error

	width    int
	height   int
	ctrlW    int
	showHelp bool
	quitting bool
}

// New builds the panel and mounts a field for every property.
func New(opts Options) Model {
	st := &stats{}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = analytics.Nop{}
	}

	root := interaction.NewNode("inspector", nil)
	rootSub := root.Listen(func(*interaction.Signal) { st.unhandled++ })

	opts.Entity.OnChange(func(c property.Change) {
		st.lastChange = describeChange(c)
	})

	m := Model{
		entity:   opts.Entity,
		rows:     make([]row, len(opts.Properties)),
		root:     root,
		rootSub:  rootSub,
		reporter: countingReporter{next: reporter, stats: st},
		stats:    st,
		keys:     defaultKeys(),
		help:     help.New(),
		docs:     newHelpRenderer(),
		logger:   logging.Component("inspector"),
		savePath: opts.SavePath,
		ctrlW:    opts.Width,
	}

	fields := make([]form.Field, len(opts.Properties))
	keys := make([]string, len(opts.Properties))
	for i, prop := range opts.Properties {
		m.rows[i] = row{prop: prop, control: m.displayable(prop)}
		fields[i] = m.buildField(m.rows[i])
		keys[i] = prop.Name
	}
	m.stack = form.NewStack(fields, keys)

	return m
}

// displayable reports whether the property's control can show its current
// value. An absent value is shown as a control with no active option.
func (m Model) displayable(prop config.Property) bool {
	d, ok := controls.Lookup(prop.Control)
	if !ok {
		return false
	}
	value := m.entity.Value(prop.Name)
	if value == "" {
		return true
	}
	return d.CanDisplayValue(prop, value)
}

func (m Model) buildField(r row) form.Field {
	if r.control {
		d, _ := controls.Lookup(r.prop.Control)
		return d.New(controls.Deps{
			Property: r.prop,
			Host:     m.entity.Bind(r.prop.Name, r.prop.Default),
			Reporter: m.reporter,
			Parent:   m.root,
			Width:    m.controlWidth(),
		})
	}

	name := r.prop.Name
	return form.NewRawField(r.prop.DisplayLabel(), func() string { return m.entity.Value(name) })
}

// reconcile rebuilds rows whose displayability changed since they were built.
func (m Model) reconcile() {
	for i := range m.rows {
		want := m.displayable(m.rows[i].prop)
		if want == m.rows[i].control {
			continue
		}

		m.rows[i].control = want
		m.stack.Replace(i, m.buildField(m.rows[i]))
		m.logger.Debug().
			Str("property", m.rows[i].prop.Name).
			Bool("control", want).
			Msg("row rebuilt")
	}
}

func (m Model) controlWidth() int {
	frame := styles.FormFieldStyle.GetHorizontalFrameSize()
	w := m.ctrlW
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return max(w-frame, 0)
}

type widthSetter interface {
	SetWidth(int)
}

func (m Model) resize() {
	w := m.controlWidth()
	for i := range m.stack.Len() {
		if ws, ok := m.stack.Field(i).(widthSetter); ok {
			ws.SetWidth(w)
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			m.entity.Undo()
			m.reconcile()
			return m, nil
		case key.Matches(msg, m.keys.Redo):
			m.entity.Redo()
			m.reconcile()
			return m, nil
		}

	case tea.MouseClickMsg:
		return m.handleClick(msg)
	}

	var cmd tea.Cmd
	m.stack, cmd = m.stack.Update(msg)
	m.reconcile()
	return m, cmd
}

func (m Model) handleClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	idx, line, ok := m.stack.FieldAt(mouse.Y - m.headerHeight())
	if !ok {
		return m, nil
	}

	cmd := m.stack.FocusIndex(idx)
	if c, ok := m.stack.Field(idx).(form.Clicker); ok {
		c.Click(mouse.X, line)
	}
	m.reconcile()
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.stack.Close()
	m.rootSub.Close()

	if m.savePath != "" {
		if err := m.entity.Save(m.savePath); err != nil {
			m.logger.Error().Err(err).Str("path", m.savePath).Msg("failed to save entity")
			m.saveErr = err
		}
	}

	return m, tea.Quit
}

// Err returns the error from saving the entity on quit, if any.
func (m Model) Err() error {
	if m.saveErr != nil {
		return fmt.Errorf("save entity: %w", m.saveErr)
	}
	return nil
}

// Unhandled returns the number of interaction signals that bubbled up to the
// panel root.
func (m Model) Unhandled() int { return m.stats.unhandled }

// Reported returns the number of analytics reports emitted by controls.
func (m Model) Reported() int { return m.stats.reported }

// Stack exposes the panel rows.
func (m Model) Stack() *form.Stack { return m.stack }

// Root returns the panel's root interaction node.
func (m Model) Root() *interaction.Node { return m.root }

func describeChange(c property.Change) string {
	switch {
	case c.New == "":
		return fmt.Sprintf("%s cleared", c.Property)
	case c.ViaKeyboard:
		return fmt.Sprintf("%s = %s (keyboard)", c.Property, c.New)
	default:
		return fmt.Sprintf("%s = %s", c.Property, c.New)
	}
}

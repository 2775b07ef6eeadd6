package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inspector/internal/core/analytics"
	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/pkg/tuitest"
)

type commit struct {
	value       string
	viaKeyboard bool
}

// fakeHost records commits and applies them to its value.
type fakeHost struct {
	value   string
	def     string
	commits []commit
}

func (h *fakeHost) Value() string   { return h.value }
func (h *fakeHost) Default() string { return h.def }
func (h *fakeHost) Commit(value string, viaKeyboard bool) {
	h.commits = append(h.commits, commit{value, viaKeyboard})
	h.value = value
}

type report struct {
	target string
	key    string
}

type recordingReporter struct {
	reports []report
}

func (r *recordingReporter) Emit(target *interaction.Node, p analytics.Payload) {
	r.reports = append(r.reports, report{target.Path(), p.Key})
}

type tabFixture struct {
	field    *IconTabField
	host     *fakeHost
	reporter *recordingReporter
	root     *interaction.Node
	bubbled  *[]*interaction.Signal
}

func newTabFixture(t *testing.T, value, def string) tabFixture {
	t.Helper()

	root := interaction.NewNode("inspector", nil)
	var bubbled []*interaction.Signal
	root.Listen(func(s *interaction.Signal) { bubbled = append(bubbled, s) })

	host := &fakeHost{value: value, def: def}
	reporter := &recordingReporter{}
	field := NewIconTabField(IconTabConfig{
		Name:    "textAlign",
		Label:   "Text align",
		Options: alignOptions,
	}, host, reporter, root)
	field.Mount()

	return tabFixture{field: field, host: host, reporter: reporter, root: root, bubbled: &bubbled}
}

func TestToggleValue(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		selected string
		def      string
		want     string
	}{
		{"select inactive option", "left", "center", "left", "center"},
		{"reselect active option resets to default", "center", "center", "left", "left"},
		{"reselect default resets to default", "left", "left", "left", "left"},
		{"empty current", "", "right", "left", "right"},
		{"empty default clears", "right", "right", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToggleValue(tt.current, tt.selected, tt.def))
		})
	}
}

func TestToggleValue_double_toggle(t *testing.T) {
	def := "left"
	first := ToggleValue("left", "right", def)
	second := ToggleValue(first, "right", def)
	assert.Equal(t, "right", first)
	assert.Equal(t, def, second)
}

func TestCanDisplayIconTabValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"option value", "center", true},
		{"unknown string", "justify", false},
		{"empty string", "", false},
		{"number", 42, false},
		{"nil", nil, false},
		{"string slice", []string{"left"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDisplayIconTabValue(alignOptions, tt.value))
		})
	}

	assert.False(t, CanDisplayIconTabValue(nil, "left"))
}

func TestIconTabField_SelectOption(t *testing.T) {
	t.Run("commits selected option", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.SelectOption("right", false)

		require.Len(t, fx.host.commits, 1)
		assert.Equal(t, commit{"right", false}, fx.host.commits[0])
	})

	t.Run("reselect commits default", func(t *testing.T) {
		fx := newTabFixture(t, "center", "left")
		fx.field.SelectOption("center", false)

		require.Len(t, fx.host.commits, 1)
		assert.Equal(t, commit{"left", false}, fx.host.commits[0])
	})

	t.Run("keyboard flag is passed through", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.SelectOption("center", true)
		fx.field.SelectOption("center", true)

		assert.Equal(t, []commit{{"center", true}, {"left", true}}, fx.host.commits)
	})

	t.Run("ignored while unmounted", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Unmount()
		fx.field.SelectOption("right", false)

		assert.Empty(t, fx.host.commits)
	})

	t.Run("group selection follows commit", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.SelectOption("right", false)
		assert.Equal(t, 2, fx.field.Group().Cursor())
	})
}

func TestIconTabField_left_center_right_scenario(t *testing.T) {
	fx := newTabFixture(t, "", "left")

	fx.field.SelectOption("center", false)
	assert.Equal(t, "center", fx.host.value)

	fx.field.SelectOption("right", false)
	assert.Equal(t, "right", fx.host.value)

	fx.field.SelectOption("right", false)
	assert.Equal(t, "left", fx.host.value)

	assert.Len(t, fx.host.commits, 3)
}

func TestIconTabField_signal_bridge(t *testing.T) {
	t.Run("button group keypress is reported and stopped", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")

		sig := interaction.Keypress(interaction.ComponentButtonGroup, "Enter")
		fx.field.Group().Node().Dispatch(sig)

		require.Len(t, fx.reporter.reports, 1)
		assert.Equal(t, report{"inspector/textAlign", "Enter"}, fx.reporter.reports[0])
		assert.True(t, sig.Stopped())
		assert.Empty(t, *fx.bubbled)
		assert.Empty(t, fx.host.commits, "bridge never commits")
	})

	t.Run("other component keypress propagates", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")

		sig := interaction.Keypress(interaction.ComponentOther, "Enter")
		fx.field.Node().Dispatch(sig)

		assert.Empty(t, fx.reporter.reports)
		assert.False(t, sig.Stopped())
		require.Len(t, *fx.bubbled, 1)
	})

	t.Run("click is not reported", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")

		sig := interaction.NewSignal(interaction.ComponentButtonGroup, interaction.KindClick, interaction.Meta{})
		fx.field.Group().Node().Dispatch(sig)

		assert.Empty(t, fx.reporter.reports)
		assert.False(t, sig.Stopped())
		require.Len(t, *fx.bubbled, 1)
	})

	t.Run("no reports after unmount", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Unmount()

		sig := interaction.Keypress(interaction.ComponentButtonGroup, "Enter")
		fx.field.Group().Node().Dispatch(sig)

		assert.Empty(t, fx.reporter.reports)
		assert.Zero(t, fx.field.Node().ListenerCount())
		require.Len(t, *fx.bubbled, 1)
	})

	t.Run("mount is idempotent", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Mount()
		fx.field.Mount()
		assert.Equal(t, 1, fx.field.Node().ListenerCount())

		fx.field.Group().Node().Dispatch(interaction.Keypress(interaction.ComponentButtonGroup, "Space"))
		assert.Len(t, fx.reporter.reports, 1)

		fx.field.Unmount()
		fx.field.Unmount()
		assert.Zero(t, fx.field.Node().ListenerCount())
		assert.False(t, fx.field.Mounted())
	})

	t.Run("remount attaches a fresh listener", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Unmount()
		fx.field.Mount()

		fx.field.Group().Node().Dispatch(interaction.Keypress(interaction.ComponentButtonGroup, "Enter"))
		assert.Len(t, fx.reporter.reports, 1)
	})
}

func TestIconTabField_keyboard(t *testing.T) {
	t.Run("enter yields one report and one commit", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Focus()

		fx.field.Update(tuitest.KeyRight())
		fx.field.Update(tuitest.KeyEnter())

		assert.Equal(t, []commit{{"center", true}}, fx.host.commits)
		assert.Equal(t, []report{
			{"inspector/textAlign", "ArrowRight"},
			{"inspector/textAlign", "Enter"},
		}, fx.reporter.reports)

		for _, s := range *fx.bubbled {
			assert.NotEqual(t, interaction.KindKeypress, s.Kind, "keypresses stop at the field")
		}
	})

	t.Run("keys ignored while blurred", func(t *testing.T) {
		fx := newTabFixture(t, "left", "left")
		fx.field.Update(tuitest.KeyEnter())

		assert.Empty(t, fx.host.commits)
		assert.Empty(t, fx.reporter.reports)
	})
}

func TestIconTabField_Click(t *testing.T) {
	fx := newTabFixture(t, "left", "left")

	// Frame is a one-cell border plus one cell of padding.
	assert.False(t, fx.field.Click(3, 0), "title line")
	assert.True(t, fx.field.Click(2+15, 1))

	assert.Equal(t, []commit{{"right", false}}, fx.host.commits)
	assert.Empty(t, fx.reporter.reports, "clicks are not reported")
}

func TestIconTabField_View(t *testing.T) {
	fx := newTabFixture(t, "center", "left")

	view := tuitest.StripANSI(fx.field.View())
	assert.Contains(t, view, "Text align")
	assert.Contains(t, view, "Center")
	assert.NotContains(t, view, "Align center")

	fx.field.Focus()
	view = tuitest.StripANSI(fx.field.View())
	assert.Contains(t, view, "Align center", "focused field shows the cursor tooltip")
}

func TestIconTabField_nil_reporter(t *testing.T) {
	host := &fakeHost{value: "left", def: "left"}
	field := NewIconTabField(IconTabConfig{Name: "a", Options: alignOptions}, host, nil, nil)
	field.Mount()

	assert.NotPanics(t, func() {
		field.Group().Node().Dispatch(interaction.Keypress(interaction.ComponentButtonGroup, "Enter"))
	})
	assert.Equal(t, "left", field.Value())
}

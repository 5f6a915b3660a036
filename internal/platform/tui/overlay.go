package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// OverlayKeyMap defines the key bindings for the tuning overlay.
type OverlayKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Dec   key.Binding
	Inc   key.Binding
	Reset key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k OverlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dec, k.Inc, k.Reset, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k OverlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc},
		{k.Reset, k.Close},
	}
}

// DefaultOverlayKeyMap returns default key bindings.
func DefaultOverlayKeyMap() OverlayKeyMap {
	return OverlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next field"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "decrease"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "increase"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "defaults"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "t"),
			key.WithHelp("esc/t", "close"),
		),
	}
}

// tuningField is one adjustable row in the overlay.
type tuningField struct {
	label  string
	value  func(t tetris.Tuning) string
	adjust func(t *tetris.Tuning, dir float64)
}

var tuningFields = []tuningField{
	{
		label:  "DAS delay",
		value:  func(t tetris.Tuning) string { return fmt.Sprintf("%.0f ms", t.DASMs) },
		adjust: func(t *tetris.Tuning, dir float64) { t.DASMs += dir * 10 },
	},
	{
		label:  "Auto-shift rate",
		value:  func(t tetris.Tuning) string { return fmt.Sprintf("%.0f ms", t.ARRMs) },
		adjust: func(t *tetris.Tuning, dir float64) { t.ARRMs += dir * 5 },
	},
	{
		label:  "Lock delay",
		value:  func(t tetris.Tuning) string { return fmt.Sprintf("%.0f ms", t.LockDelayMs) },
		adjust: func(t *tetris.Tuning, dir float64) { t.LockDelayMs += dir * 25 },
	},
	{
		label:  "Gravity",
		value:  func(t tetris.Tuning) string { return fmt.Sprintf("x%.1f", t.GravityMult) },
		adjust: func(t *tetris.Tuning, dir float64) { t.GravityMult += dir * 0.1 },
	},
	{
		label:  "Soft drop speed",
		value:  func(t tetris.Tuning) string { return fmt.Sprintf("x%.1f", t.SoftDropMult) },
		adjust: func(t *tetris.Tuning, dir float64) { t.SoftDropMult += dir * 0.1 },
	},
	{
		label: "Avoid S/Z/O opener",
		value: func(t tetris.Tuning) string {
			if t.AvoidSZOFirst {
				return "on"
			}
			return "off"
		},
		adjust: func(t *tetris.Tuning, dir float64) { t.AvoidSZOFirst = !t.AvoidSZOFirst },
	},
}

// TuningOverlay is the live feel editor shown over a paused game. Changes
// apply immediately; the generator setting takes effect on restart.
type TuningOverlay struct {
	tuning tetris.Tuning
	cursor int
	keys   OverlayKeyMap
	help   help.Model
	closed bool
}

// NewTuningOverlay creates an overlay editing the given tuning snapshot.
func NewTuningOverlay(t tetris.Tuning) *TuningOverlay {
	h := help.New()
	h.ShowAll = false
	return &TuningOverlay{
		tuning: t,
		keys:   DefaultOverlayKeyMap(),
		help:   h,
	}
}

// Tuning returns the edited values, clamped to their valid ranges.
func (o *TuningOverlay) Tuning() tetris.Tuning {
	return o.tuning.Clamped()
}

// Closed reports whether the user dismissed the overlay.
func (o *TuningOverlay) Closed() bool {
	return o.closed
}

// HandleKey processes one key press. Returns true when the tuning changed.
func (o *TuningOverlay) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, o.keys.Close):
		o.closed = true
	case key.Matches(msg, o.keys.Up):
		o.cursor--
		if o.cursor < 0 {
			o.cursor = len(tuningFields) - 1
		}
	case key.Matches(msg, o.keys.Down):
		o.cursor = (o.cursor + 1) % len(tuningFields)
	case key.Matches(msg, o.keys.Dec):
		tuningFields[o.cursor].adjust(&o.tuning, -1)
		o.tuning = o.tuning.Clamped()
		return true
	case key.Matches(msg, o.keys.Inc):
		tuningFields[o.cursor].adjust(&o.tuning, 1)
		o.tuning = o.tuning.Clamped()
		return true
	case key.Matches(msg, o.keys.Reset):
		o.tuning = tetris.DefaultTuning()
		return true
	}
	return false
}

// View renders the overlay centered in the given terminal size.
func (o *TuningOverlay) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME FEEL"))
	b.WriteString("\n\n")

	for i, f := range tuningFields {
		line := fmt.Sprintf("%-20s %10s", f.label, f.value(o.tuning))
		if i == o.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(o.help.View(o.keys))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(b.String()))
}

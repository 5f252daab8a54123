// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the askwire TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/morganforge/askwire-tui/internal/api"
	"github.com/morganforge/askwire-tui/internal/model"
	"github.com/morganforge/askwire-tui/internal/ui/components"
	"github.com/morganforge/askwire-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat screen.
//
// The screen moves Idle -> Sending on submit and back to Idle on either
// outcome of the single outstanding request. There are no intermediate
// states; the backend does not stream partial tokens.
type State int

const (
	StateIdle    State = iota // Ready for input
	StateSending              // Waiting on the generate request
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configures a chat screen.
type Options struct {
	// InitialQuery is submitted automatically once after mount.
	// Mirrors a query handed over by navigation.
	InitialQuery string

	// Wrap is the word-wrap width for rendered answers (0 = viewport width).
	Wrap int

	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation state: transcript plus the threaded identifier.
	// Discarded with the model; nothing is persisted.
	conversation *model.Conversation

	// Backend client
	client *api.Client

	// Options
	opts Options

	// Pending initial query, consumed once on mount.
	initialQuery string

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spin      spinner.Model
	statusBar components.StatusBar

	// Markdown renderer for answers. Nil means plain text fallback.
	renderer *glamour.TermRenderer

	// Key bindings
	keyMap KeyMap

	// Backend reachability for the status line.
	backendDown bool

	ready bool
}

// New creates a new chat screen.
func New(theme *styles.Theme, client *api.Client, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask anything..."
	ti.CharLimit = 4096
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	return Model{
		state:        StateIdle,
		theme:        theme,
		conversation: model.NewConversation(),
		client:       client,
		opts:         opts,
		initialQuery: opts.InitialQuery,
		viewport:     vp,
		input:        ti,
		spin:         sp,
		statusBar:    components.NewStatusBar(theme),
		renderer:     newRenderer(opts.Wrap),
		keyMap:       DefaultKeyMap(),
	}
}

// newRenderer builds the glamour renderer for answer markdown.
func newRenderer(wrap int) *glamour.TermRenderer {
	if wrap <= 0 {
		wrap = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil // plain text fallback
	}
	return renderer
}

// Init starts the screen: health probe, cursor blink, and the auto-submitted
// initial query if one was supplied.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		HealthCmd(m.client),
	}
	if m.initialQuery != "" {
		cmds = append(cmds, InitialQueryCmd(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// StateNow returns the current screen state.
func (m Model) StateNow() State {
	return m.state
}

// Conversation returns the conversation owned by the screen.
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// IsSending returns true while the single outstanding request is in flight.
func (m Model) IsSending() bool {
	return m.state == StateSending
}

// InputValue returns the current input text.
func (m Model) InputValue() string {
	return m.input.Value()
}

// SetInputValue replaces the current input text, used by tests.
func (m *Model) SetInputValue(s string) {
	m.input.SetValue(s)
}

// SetOptions applies updated display options, rebuilding the markdown
// renderer when the wrap width changed. Used by config live-reload.
func (m *Model) SetOptions(opts Options) {
	if opts.Wrap != m.opts.Wrap {
		m.renderer = newRenderer(opts.Wrap)
	}
	m.opts.Wrap = opts.Wrap
	m.opts.ShowTimestamps = opts.ShowTimestamps
	m.refreshViewport()
}

// SetClient swaps the backend client. Used by config live-reload when the
// base URL or credentials change.
func (m *Model) SetClient(client *api.Client) {
	m.client = client
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 1
	inputHeight := 3
	statusHeight := 1

	m.viewport.Width = width
	m.viewport.Height = height - headerHeight - inputHeight - statusHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.Width = width - 6
	m.statusBar.SetWidth(width)
	m.ready = true

	m.refreshViewport()
}

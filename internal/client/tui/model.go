// Package tui renders a synchronization store as a live terminal view.
// The view mounts its binding on start, unmounts on quit and reports
// terminal focus changes as visibility changes.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/binding"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/syncstore"
)

// StateMsg carries a store state change into the program.
type StateMsg[T any] struct {
	State syncstore.State[T]
}

// fetchDoneMsg reports that a fetch command returned. The outcome itself
// arrives as a StateMsg.
type fetchDoneMsg struct {
	err error
}

// Pager moves params by delta pages. It returns false when there is no
// such page.
type Pager[P any] func(params P, delta int) (P, bool)

// Config describes one watch view.
type Config[P, T any] struct {
	Title   string
	Store   *syncstore.Store[P, T]
	Binding *binding.Binding
	// Params is what the first fetch loads.
	Params P
	Render func(T) string
	// Page enables the next and previous keys. Nil disables them.
	Page Pager[P]
}

// Model is the bubbletea model of a watch view.
type Model[P, T any] struct {
	cfg    Config[P, T]
	ctx    context.Context
	params P
	state  syncstore.State[T]
	now    func() time.Time

	spinner spinner.Model
	help    help.Model
	keys    KeyMap
	width   int
}

// New creates the view. ctx bounds every fetch the view starts.
func New[P, T any](ctx context.Context, cfg Config[P, T]) Model[P, T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	return Model[P, T]{
		cfg:     cfg,
		ctx:     ctx,
		params:  cfg.Params,
		state:   cfg.Store.Snapshot(),
		now:     time.Now,
		spinner: sp,
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
}

// Init mounts the binding and starts the first fetch.
func (m Model[P, T]) Init() tea.Cmd {
	m.cfg.Binding.Mount()
	return tea.Batch(m.spinner.Tick, m.fetch(m.params))
}

// Update implements tea.Model.
func (m Model[P, T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg[T]:
		// Subscribers may deliver concurrent changes out of order.
		if msg.State.Version >= m.state.Version {
			m.state = msg.State
		}
		return m, nil

	case fetchDoneMsg:
		return m, nil

	case tea.FocusMsg:
		m.cfg.Binding.VisibilityChanged(m.ctx, true)
		return m, nil

	case tea.BlurMsg:
		m.cfg.Binding.VisibilityChanged(m.ctx, false)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[P, T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cfg.Binding.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Next):
		return m.page(1)

	case key.Matches(msg, m.keys.Prev):
		return m.page(-1)
	}
	return m, nil
}

func (m Model[P, T]) page(delta int) (tea.Model, tea.Cmd) {
	if m.cfg.Page == nil {
		return m, nil
	}
	next, ok := m.cfg.Page(m.params, delta)
	if !ok {
		return m, nil
	}
	m.params = next
	return m, m.fetch(next)
}

func (m Model[P, T]) fetch(params P) tea.Cmd {
	store, ctx := m.cfg.Store, m.ctx
	return func() tea.Msg {
		return fetchDoneMsg{err: store.Fetch(ctx, params)}
	}
}

func (m Model[P, T]) refresh() tea.Cmd {
	store, ctx := m.cfg.Store, m.ctx
	return func() tea.Msg {
		return fetchDoneMsg{err: store.Refresh(ctx)}
	}
}

// View implements tea.Model.
func (m Model[P, T]) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("  ")
	b.WriteString(m.status())
	b.WriteString("\n")

	st := m.state
	switch {
	case st.HasData:
		if st.Err != nil {
			b.WriteString(bannerStyle.Render("refresh failed: " + st.Err.Message + " (showing earlier data)"))
			b.WriteString("\n")
		}
		b.WriteString(bodyStyle.Render(m.cfg.Render(st.Data)))
	case st.Err != nil:
		b.WriteString(bodyStyle.Render(
			errorStyle.Render(fmt.Sprintf("Could not load %s: %s [%s]", m.cfg.Title, st.Err.Message, st.Err.Code)) +
				"\n" + dimStyle.Render("press r to retry"),
		))
	case !st.IsLoading:
		b.WriteString(bodyStyle.Render(dimStyle.Render("nothing loaded yet")))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model[P, T]) status() string {
	st := m.state
	var parts []string
	switch {
	case st.IsLoading:
		parts = append(parts, m.spinner.View()+" loading")
	case st.IsRefreshing:
		parts = append(parts, m.spinner.View()+" refreshing")
	case !st.LastFetchedAt.IsZero():
		parts = append(parts, okStyle.Render("updated "+since(m.now(), st.LastFetchedAt)))
	}
	if st.CurrentPage > 0 {
		parts = append(parts, fmt.Sprintf("page %d", st.CurrentPage))
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

func since(now, t time.Time) string {
	d := now.Sub(t).Round(time.Second)
	if d < time.Second {
		return "just now"
	}
	return d.String() + " ago"
}

// Run runs the view until the user quits or ctx ends. Store changes are fed
// to the program for the whole run.
func Run[P, T any](ctx context.Context, m Model[P, T], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus(), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)

	unsubscribe := m.cfg.Store.Subscribe(func(s syncstore.State[T]) {
		p.Send(StateMsg[T]{State: s})
	})
	defer unsubscribe()
	defer m.cfg.Binding.Unmount()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running %s view: %w", m.cfg.Title, err)
	}
	return nil
}

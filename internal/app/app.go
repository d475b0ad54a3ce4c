package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/screen"
	"github.com/nikverma/physlab/internal/screens/home"
	"github.com/nikverma/physlab/internal/screens/welcome"
	"github.com/nikverma/physlab/internal/store"
	"github.com/nikverma/physlab/internal/ui/layout"
)

// Options carries the dependencies the TUI runs on. Zero-value fields
// degrade gracefully: no repos means nothing persists, no coach means the
// review phases fall back to the static content.
type Options struct {
	EventRepo      store.EventRepo
	SnapshotRepo   store.SnapshotRepo
	Coach          *coach.Service
	DebounceWindow time.Duration
	SnapshotKeep   int
	DefaultGame    string
	Sound          bool
	Sequence       func(ctx context.Context) (int64, error)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	prog      *progress.Service
	totalLabs int
	width     int
	height    int
}

// newAppModel loads saved progress and stacks the welcome screen.
func newAppModel(opts Options) AppModel {
	var snapData *store.SnapshotData
	if opts.SnapshotRepo != nil {
		if snap, err := opts.SnapshotRepo.Latest(context.Background()); err == nil && snap != nil {
			snapData = &snap.Data
		}
	}
	prog := progress.NewService(snapData, opts.SnapshotRepo)
	prog.SetSnapshotKeep(opts.SnapshotKeep)

	deps := home.Deps{
		Progress:       prog,
		Events:         opts.EventRepo,
		Coach:          opts.Coach,
		DebounceWindow: opts.DebounceWindow,
		DefaultGame:    opts.DefaultGame,
		Sound:          opts.Sound,
		Sequence:       opts.Sequence,
	}
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(deps)
	})

	return AppModel{
		router:    router.New(welcomeScreen),
		prog:      prog,
		totalLabs: len(content.AllGames()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	mastered := 0
	for _, gp := range m.prog.All() {
		if gp.IsMastered() {
			mastered++
		}
	}
	header := layout.RenderHeader(title, mastered, m.totalLabs, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

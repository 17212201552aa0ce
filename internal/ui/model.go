package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"heroslider/internal/config"
	"heroslider/internal/deck"
	"heroslider/internal/dom"
	"heroslider/internal/eventbus"
	"heroslider/internal/slider"
	"heroslider/internal/ui/commands"
	"heroslider/internal/ui/handlers"
	"heroslider/internal/ui/input"
	inputtypes "heroslider/internal/ui/input/types"
	"heroslider/internal/ui/state"
	"heroslider/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger zerolog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer          // pager content
	pager        *PagerOps              // ov pager

	// Slider and the tree it is attached to
	root     *dom.Node
	page     *dom.Page
	pointer  *dom.Pointer
	slider   *slider.Slider
	clock    *teaClock
	geometry deck.Geometry

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model with a slider attached to the configured
// deck. Slider events are published on bus when it is non-nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	d := cfg.Deck()
	appState := state.NewAppState(d)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		logger:       log.Logger.With().Str("component", "ui").Logger(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(inputtypes.DefaultKeyMap),
		helpRenderer: NewHelpRenderer(),
		clock:        newTeaClock(),
	}

	m.root = deck.Build(d, cfg.AutoPlay)
	m.page = dom.NewPage(m.root)
	m.pointer = dom.NewPointer(m.root)
	m.geometry = deck.Geometry{
		Cell: float64(cfg.UISettings.CellWidthPx),
		Row:  float64(cfg.UISettings.CellHeightPx),
	}

	opts, err := cfg.SliderOptions()
	if err != nil {
		return nil, err
	}
	opts.Clock = m.clock
	opts.Bus = bus
	sliderLog := log.Logger
	opts.Logger = &sliderLog

	m.slider = slider.New(opts)
	if err := m.slider.Attach(context.Background(), m.root, m.page); err != nil {
		return nil, fmt.Errorf("attach slider: %w", err)
	}
	m.state.Snapshot = m.slider.Snapshot()

	m.cmdExecutor = commands.NewExecutor(appState, m.slider)
	m.cmdExecutor.SetRoot(m.root)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Slider returns the slider driven by this model
func (m *Model) Slider() *slider.Slider {
	return m.slider
}

// Init arms the autoplay timer started by Attach
func (m *Model) Init() tea.Cmd {
	return m.clock.arm()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.state.Snapshot = m.slider.Snapshot()
	return m, tea.Batch(cmd, m.clock.arm())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		// Popups close on the keys that opened them
		if m.state.ShowInfo && (msg.String() == "esc" || msg.String() == "i") {
			m.state.ShowInfo = false
			return nil
		}

		actions := m.inputHandler.HandleKey(msg, modelContext{snap: m.slider.Snapshot()})
		var cmds []tea.Cmd
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return tea.Batch(cmds...)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case tea.FocusMsg:
		m.state.Focused = true
		m.page.SetHidden(false)
		return nil

	case tea.BlurMsg:
		m.state.Focused = false
		m.page.SetHidden(true)
		return nil

	case timerMsg:
		return m.clock.fire(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// resize lays the tree out for the new terminal size and lets the slider
// re-render at the new width
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.state.Width = width
	m.state.Height = height
	m.help.Width = width

	m.geometry.Width = float64(width) * m.geometry.Cell
	m.geometry.Height = float64(views.SliderRows(height)) * m.geometry.Row
	deck.Layout(m.root, m.geometry)
	m.page.NotifyResize()
}

// handleMouse feeds terminal mouse reports to the pointer. Cells map to the
// pixel at their centre, offset by the title row.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.config.UISettings.Mouse {
		return
	}
	pt := dom.Point{
		X: (float64(msg.X) + 0.5) * m.geometry.Cell,
		Y: (float64(msg.Y-views.HeaderRows) + 0.5) * m.geometry.Row,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.Press(pt)
		}
	case tea.MouseActionRelease:
		m.pointer.Release(pt)
	case tea.MouseActionMotion:
		m.pointer.Move(pt)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.cmdExecutor.ExecuteKey(a.Key)

	case inputtypes.GoToAction:
		return m.cmdExecutor.ExecuteGoTo(a.Index)

	case inputtypes.TogglePauseAction:
		return m.cmdExecutor.ExecuteTogglePause()

	case inputtypes.ToggleHelpAction:
		// Mode changes are applied before actions run
		m.state.ShowHelp = m.inputHandler.CurrentMode() == inputtypes.ModeHelp
		if m.state.ShowHelp {
			m.state.ShowInfo = false
		}

	case inputtypes.ToggleInfoAction:
		m.state.ShowInfo = !m.state.ShowInfo

	case inputtypes.OpenHelpPagerAction:
		return m.showPager(m.helpRenderer.renderHelpContent(m.inputHandler.Keys()))

	case inputtypes.OpenSlideAction:
		slide, ok := m.state.CurrentSlide()
		if !ok {
			return nil
		}
		snap := m.slider.Snapshot()
		return m.showPager(m.helpRenderer.renderSlideContent(slide, snap.Index, snap.Count))

	case inputtypes.QuitAction:
		m.slider.Detach()
		return tea.Quit
	}

	return nil
}

// showPager returns a command that shows content using ov pager
func (m *Model) showPager(content string) tea.Cmd {
	if m.program == nil || m.pager == nil {
		m.state.StatusMessage = "pager unavailable"
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		return m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClear(msg)
		return nil

	case pagerMsg:
		if msg.err == nil {
			return nil
		}
		m.logger.Error().Err(msg.err).Msg("pager failed")
		if m.bus != nil {
			m.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("pager: %v", msg.err), Err: msg.err})
			return nil
		}
		return m.eventHandler.HandleEvent(eventbus.ErrorEvent{Message: fmt.Sprintf("pager: %v", msg.err), Err: msg.err})

	case pauseRenderingMsg:
		// The pager owns the screen, so the slider is not visible
		m.inPagerMode = true
		m.state.InPager = true
		m.page.SetHidden(true)
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.state.InPager = false
		m.page.SetHidden(!m.state.Focused)
		return nil
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Root:          m.root,
		Geometry:      m.geometry,
		Snapshot:      m.state.Snapshot,
		StatusMessage: m.state.StatusMessage,
		ShowHelp:      m.state.ShowHelp,
		ShowInfo:      m.state.ShowInfo,
		Focused:       m.state.Focused,
		History:       m.state.History,
		ShortHelp:     m.config.UISettings.ShowHelp,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	})
}

// modelContext exposes slider state to the input modes
type modelContext struct {
	snap slider.Snapshot
}

func (c modelContext) CurrentIndex() int { return c.snap.Index }
func (c modelContext) SlideCount() int   { return c.snap.Count }
func (c modelContext) Paused() bool      { return c.snap.Paused }
func (c modelContext) AutoPlay() bool    { return c.snap.AutoPlay }

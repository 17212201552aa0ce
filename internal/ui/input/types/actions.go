package types

// Navigation actions
type NavigateAction struct {
	Key string // DOM key name delivered to the slider: ArrowLeft, ArrowRight, Home, End
}

func (a NavigateAction) Type() string { return "navigate" }

type GoToAction struct {
	Index int
}

func (a GoToAction) Type() string { return "goto" }

// Autoplay actions
type TogglePauseAction struct{}

func (a TogglePauseAction) Type() string { return "toggle_pause" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Display actions
type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type OpenSlideAction struct{}

func (a OpenSlideAction) Type() string { return "open_slide" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

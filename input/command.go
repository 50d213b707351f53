package input

// CommandKind identifies a discrete control action decoded from terminal input
type CommandKind int

const (
	// CommandQuit requests an orderly shutdown
	// Trigger: q, Escape, Ctrl+C
	CommandQuit CommandKind = iota

	// CommandTogglePause freezes or resumes camera motion
	// Trigger: Space
	CommandTogglePause

	// CommandToggleHUD shows or hides the status line
	// Trigger: Tab
	CommandToggleHUD

	// CommandResize reports a new terminal geometry
	// Trigger: terminal resize event | Payload: Width, Height
	CommandResize
)

// Command carries a control action from the capture service to the
// application loop. Width and Height are set only for CommandResize.
type Command struct {
	Kind   CommandKind
	Width  int
	Height int
}

func (k CommandKind) String() string {
	switch k {
	case CommandQuit:
		return "Quit"
	case CommandTogglePause:
		return "TogglePause"
	case CommandToggleHUD:
		return "ToggleHUD"
	case CommandResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

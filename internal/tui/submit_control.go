package tui

const (
	submitLabelIdle    = "Start Code Review"
	submitLabelLoading = "Analyzing Code..."
)

// submitControl is the form's submit button. While disabled, submit key
// presses are ignored; that is the only thing keeping a second upload from
// starting while one is in flight.
type submitControl struct {
	disabled bool
}

// acquire disables the control. It reports false when the control was
// already disabled, in which case the caller must not proceed.
func (c *submitControl) acquire() bool {
	if c.disabled {
		return false
	}
	c.disabled = true
	return true
}

func (c *submitControl) release() {
	c.disabled = false
}

func (c submitControl) Label() string {
	if c.disabled {
		return submitLabelLoading
	}
	return submitLabelIdle
}

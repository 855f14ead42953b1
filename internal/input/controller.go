package input

// Controller owns the currently selected input and the active mode. It is
// the only writer of that state; the surrounding command layer serializes
// calls, so no locking is needed.
type Controller struct {
	mode Mode
	file *FileInput
	text string
}

func NewController() *Controller {
	return &Controller{mode: ModeUpload}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// Select switches the active mode. Selecting the already-active mode is a
// no-op; an actual switch discards the other mode's pending value.
func (c *Controller) Select(m Mode) {
	if m == c.mode {
		return
	}

	c.mode = m
	switch m {
	case ModeUpload:
		c.text = ""
	case ModeText:
		c.file = nil
	}
}

// SetFile validates and holds a resume file. On rejection the previous
// selection, if any, stays authoritative.
func (c *Controller) SetFile(f FileInput) error {
	if err := ValidateName(f.Name); err != nil {
		return err
	}

	c.file = &f
	return nil
}

func (c *Controller) SetText(text string) {
	c.text = text
}

// File returns the held file for the upload mode, or nil.
func (c *Controller) File() *FileInput {
	return c.file
}

// Candidate snapshots the active variant, or nil when the active mode holds
// no value yet.
func (c *Controller) Candidate() *Candidate {
	switch c.mode {
	case ModeText:
		if c.text == "" {
			return nil
		}
		return &Candidate{Kind: ModeText, Text: c.text}
	default:
		if c.file == nil {
			return nil
		}
		return &Candidate{Kind: ModeUpload, File: c.file}
	}
}

// Discard drops the active mode's value after a successful submission.
func (c *Controller) Discard() {
	switch c.mode {
	case ModeText:
		c.text = ""
	default:
		c.file = nil
	}
}

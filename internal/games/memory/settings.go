package memory

// Settings are the player's preferences.
type Settings struct {
	SoundEnabled  bool
	ChallengeMode bool
}

// DefaultSettings returns sound on and challenge mode on.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, ChallengeMode: true}
}

// Field names a settings entry editable in the settings view.
type Field int

const (
	FieldSound Field = iota
	FieldChallengeMode
)

// String returns the label shown in the settings view.
func (f Field) String() string {
	switch f {
	case FieldSound:
		return "Sound"
	case FieldChallengeMode:
		return "Challenge mode"
	default:
		return "Unknown"
	}
}

// Get returns the value of field f.
func (s Settings) Get(f Field) (bool, error) {
	switch f {
	case FieldSound:
		return s.SoundEnabled, nil
	case FieldChallengeMode:
		return s.ChallengeMode, nil
	default:
		return false, ErrUnknownField
	}
}

func (s *Settings) set(f Field, v bool) error {
	switch f {
	case FieldSound:
		s.SoundEnabled = v
	case FieldChallengeMode:
		s.ChallengeMode = v
	default:
		return ErrUnknownField
	}
	return nil
}

// SettingsController holds the committed settings and, while the settings
// view is open, a draft copy that is only applied on Commit.
type SettingsController struct {
	committed Settings
	draft     Settings
	open      bool
}

// NewSettingsController starts with initial as the committed value.
func NewSettingsController(initial Settings) *SettingsController {
	return &SettingsController{committed: initial, draft: initial}
}

// OpenView starts editing a draft of the committed settings.
// Opening an already open view keeps the current draft.
func (c *SettingsController) OpenView() {
	if c.open {
		return
	}
	c.draft = c.committed
	c.open = true
}

// IsOpen reports whether the settings view is open.
func (c *SettingsController) IsOpen() bool {
	return c.open
}

// SetDraft changes one field of the draft.
func (c *SettingsController) SetDraft(f Field, v bool) error {
	if !c.open {
		return ErrViewClosed
	}
	return c.draft.set(f, v)
}

// Commit applies the draft, closes the view and returns the new committed value.
func (c *SettingsController) Commit() Settings {
	if c.open {
		c.committed = c.draft
		c.open = false
	}
	return c.committed
}

// Cancel discards the draft and closes the view.
func (c *SettingsController) Cancel() {
	c.draft = c.committed
	c.open = false
}

// ToggleSound flips sound outside the settings view and commits immediately.
// It returns false while the view is open.
func (c *SettingsController) ToggleSound() bool {
	if c.open {
		return false
	}
	c.committed.SoundEnabled = !c.committed.SoundEnabled
	c.draft = c.committed
	return true
}

// Committed returns the settings in effect.
func (c *SettingsController) Committed() Settings {
	return c.committed
}

// Draft returns the settings being edited. Outside the view it equals Committed.
func (c *SettingsController) Draft() Settings {
	if !c.open {
		return c.committed
	}
	return c.draft
}

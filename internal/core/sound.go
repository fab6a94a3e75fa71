package core

// Sound identifies a sound effect a game wants played.
type Sound int

const (
	SoundClick Sound = iota
	SoundMatch
	SoundWin
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundMatch:
		return "match"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects. Implementations may fail (no audio device,
// closed session); callers treat failures as non-fatal.
type SoundPlayer interface {
	Play(s Sound) error
}

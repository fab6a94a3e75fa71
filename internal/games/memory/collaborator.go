package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// MessageStyle hints how a status message should be displayed.
type MessageStyle int

const (
	StyleInfo MessageStyle = iota
	StyleSuccess
	StyleWarning
)

// Collaborator is the front end a Session drives. It owns everything about
// how cards, sounds and messages look; the session only says what happened.
type Collaborator interface {
	RevealCard(pos int)
	HideCard(pos int)
	PlaySound(kind core.Sound) error
	ShowMessage(text string, style MessageStyle)
	AnnounceGameWon()
	AnnounceGameLost()
	SetInteractionEnabled(enabled bool)
}

// NopCollaborator ignores every call. Useful for headless sessions.
type NopCollaborator struct{}

func (NopCollaborator) RevealCard(int) {}
func (NopCollaborator) HideCard(int) {}
func (NopCollaborator) PlaySound(core.Sound) error { return nil }
func (NopCollaborator) ShowMessage(string, MessageStyle) {}
func (NopCollaborator) AnnounceGameWon() {}
func (NopCollaborator) AnnounceGameLost() {}
func (NopCollaborator) SetInteractionEnabled(bool) {}

var _ Collaborator = NopCollaborator{}

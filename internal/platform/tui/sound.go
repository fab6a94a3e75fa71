package tui

import (
	"io"
	"strings"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// BellPlayer plays game sounds as terminal bells on w. A click is silent;
// a match rings once and a win rings twice.
type BellPlayer struct {
	w io.Writer
}

// NewBellPlayer creates a player writing to w (stdout or an SSH session).
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

// Play implements core.SoundPlayer.
func (p *BellPlayer) Play(s core.Sound) error {
	if p == nil || p.w == nil {
		return nil
	}
	n := 0
	switch s {
	case core.SoundMatch:
		n = 1
	case core.SoundWin:
		n = 2
	}
	if n == 0 {
		return nil
	}
	_, err := io.WriteString(p.w, strings.Repeat("\a", n))
	return err
}

var _ core.SoundPlayer = (*BellPlayer)(nil)

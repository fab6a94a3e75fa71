package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Face identifies which pair a card belongs to.
type Face string

// Deck is the dealt table: the face at each position, 2N entries for N faces.
// Positions and faces never change after dealing.
type Deck []Face

// GenerateDeck doubles the given faces and shuffles them with rng.
// The shuffle is rand.Rand.Shuffle (Fisher-Yates), so a seeded rng always
// deals the same table. A nil rng is seeded from the clock.
func GenerateDeck(faces []Face, rng *rand.Rand) (Deck, error) {
	if err := validateFaces(faces); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck := make(Deck, 0, 2*len(faces))
	deck = append(deck, faces...)
	deck = append(deck, faces...)

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck, nil
}

// DeckFromOrder builds a deck with a fixed layout, e.g. for replays.
func DeckFromOrder(order ...Face) (Deck, error) {
	d := Deck(append([]Face(nil), order...))
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func validateFaces(faces []Face) error {
	if len(faces) == 0 {
		return &ConfigError{Field: "faces", Err: ErrNoFaces}
	}
	seen := make(map[Face]struct{}, len(faces))
	for _, f := range faces {
		if f == "" {
			return &ConfigError{Field: "faces", Err: ErrEmptyFace}
		}
		if _, dup := seen[f]; dup {
			return &ConfigError{Field: "faces", Err: fmt.Errorf("%w: %q", ErrDuplicateFace, f)}
		}
		seen[f] = struct{}{}
	}
	return nil
}

// Validate checks that the deck is non-empty and every face appears exactly twice.
func (d Deck) Validate() error {
	if len(d) == 0 {
		return &ConfigError{Field: "deck", Err: ErrNoFaces}
	}
	for face, n := range d.counts() {
		if face == "" {
			return &ConfigError{Field: "deck", Err: ErrEmptyFace}
		}
		if n != 2 {
			return &ConfigError{Field: "deck", Err: fmt.Errorf("%w: %q appears %d times", ErrMalformedDeck, face, n)}
		}
	}
	return nil
}

func (d Deck) counts() map[Face]int {
	counts := make(map[Face]int, len(d)/2)
	for _, f := range d {
		counts[f]++
	}
	return counts
}

// Len returns the number of cards on the table.
func (d Deck) Len() int {
	return len(d)
}

// Pairs returns N, the number of distinct faces.
func (d Deck) Pairs() int {
	return len(d) / 2
}

// FaceAt returns the face at pos, or "" when pos is off the table.
func (d Deck) FaceAt(pos int) Face {
	if pos < 0 || pos >= len(d) {
		return ""
	}
	return d[pos]
}

// Faces returns the distinct faces in order of first appearance.
func (d Deck) Faces() []Face {
	seen := make(map[Face]struct{}, len(d)/2)
	faces := make([]Face, 0, len(d)/2)
	for _, f := range d {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		faces = append(faces, f)
	}
	return faces
}

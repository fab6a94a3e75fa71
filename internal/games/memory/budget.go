package memory

// UnboundedGuesses is the Remaining value reported when no budget applies.
const UnboundedGuesses = -1

// DefaultMaxGuesses is the challenge-mode guess limit when none is configured.
const DefaultMaxGuesses = 50

// BudgetStatus is the guess budget after a selection.
type BudgetStatus struct {
	Exhausted bool
	Remaining int // UnboundedGuesses when challenge mode is off
}

// Unbounded reports whether no guess limit applies.
func (s BudgetStatus) Unbounded() bool {
	return s.Remaining == UnboundedGuesses && !s.Exhausted
}

// Budget counts cards turned over in challenge mode.
type Budget struct {
	enabled bool
	max     int
	count   int

	inFlight     map[int]struct{}
	exhausted    bool
	lossReported bool
}

// NewBudget creates a tracker. A disabled tracker never runs out.
func NewBudget(enabled bool, maxGuesses int) *Budget {
	return &Budget{
		enabled:  enabled,
		max:      maxGuesses,
		inFlight: make(map[int]struct{}, 2),
	}
}

// RecordSelectionIfNew counts pos if it is not already part of the current
// comparison. The budget is exhausted once the count exceeds the limit and
// stays exhausted for the rest of the game.
func (b *Budget) RecordSelectionIfNew(pos int) BudgetStatus {
	if !b.enabled || b.exhausted {
		return b.Status()
	}
	if _, ok := b.inFlight[pos]; ok {
		return b.Status()
	}

	b.inFlight[pos] = struct{}{}
	b.count++
	if b.count > b.max {
		b.exhausted = true
	}
	return b.Status()
}

// Release forgets positions whose comparison has been resolved.
func (b *Budget) Release(positions ...int) {
	for _, pos := range positions {
		delete(b.inFlight, pos)
	}
}

// Status returns the current budget without recording anything.
func (b *Budget) Status() BudgetStatus {
	if !b.enabled {
		return BudgetStatus{Remaining: UnboundedGuesses}
	}
	if b.exhausted {
		return BudgetStatus{Exhausted: true}
	}
	return BudgetStatus{Remaining: b.max - b.count}
}

// TakeLossReport returns true exactly once after the budget is exhausted.
func (b *Budget) TakeLossReport() bool {
	if !b.exhausted || b.lossReported {
		return false
	}
	b.lossReported = true
	return true
}

// Enabled reports whether challenge mode applies to this game.
func (b *Budget) Enabled() bool {
	return b.enabled
}

// Count returns the number of counted selections.
func (b *Budget) Count() int {
	return b.count
}

// Max returns the configured limit.
func (b *Budget) Max() int {
	return b.max
}

// Exhausted reports whether the limit has been exceeded.
func (b *Budget) Exhausted() bool {
	return b.exhausted
}

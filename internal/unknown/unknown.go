// Package unknown implements the reveal protocol for face-down play-pile
// cards whose identity is not yet known to the solver: validating that a
// slot really is unknown before replacing it, and tracking previously
// revealed identities so a later prompt for the same slot can be checked
// for consistency instead of trusted blindly.
package unknown

import (
	"errors"
	"fmt"

	"github.com/hailam/spidersolve/internal/card"
	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/pile"
)

// ErrNotUnknown is returned by Reveal when the targeted slot does not hold
// an unknown card.
var ErrNotUnknown = errors.New("unknown: card is not unknown")

// ErrIndexRange is returned by Reveal when index is out of range for the
// named play pile.
var ErrIndexRange = errors.New("unknown: index out of range")

// Reveal returns a Deck with play pile playIdx's card at index replaced by
// real, after checking the existing card there is marked unknown. The
// placeholder's face-up state is preserved on the replacement.
func Reveal(in *pile.Interner, d deck.Deck, playIdx, index int, real card.Card) (deck.Deck, error) {
	p := d.Play(playIdx)
	if index < 0 || index >= p.Count() {
		return deck.Deck{}, fmt.Errorf("%w: pile %d index %d (count %d)", ErrIndexRange, playIdx, index, p.Count())
	}
	existing := p.At(index)
	if !existing.Unknown() {
		return deck.Deck{}, fmt.Errorf("%w: pile %d index %d", ErrNotUnknown, playIdx, index)
	}
	revealed := real.SetFaceUp(existing.FaceUp())
	return d.ReplacePlayCard(in, playIdx, index, revealed), nil
}

// RevealTop reveals the top (last) card of play pile playIdx, the common
// case once Deck.TopCardUnknown reports true for it.
func RevealTop(in *pile.Interner, d deck.Deck, playIdx int, real card.Card) (deck.Deck, error) {
	p := d.Play(playIdx)
	if p.IsEmpty() {
		return deck.Deck{}, fmt.Errorf("%w: pile %d is empty", ErrIndexRange, playIdx)
	}
	return Reveal(in, d, playIdx, p.Count()-1, real)
}

// Ledger remembers previously revealed identities across re-solves of the
// same deck file, so a second prompt for an already-revealed slot can be
// checked for consistency via Card.SameIdentity rather than re-entered
// blind.
type Ledger struct {
	known map[slot]card.Card
}

type slot struct {
	play, index int
}

// NewLedger returns an empty reveal ledger.
func NewLedger() *Ledger {
	return &Ledger{known: make(map[slot]card.Card)}
}

// Record stores real as the known identity for playIdx/index.
func (l *Ledger) Record(playIdx, index int, real card.Card) {
	l.known[slot{playIdx, index}] = real
}

// Consistent reports whether candidate matches any identity previously
// recorded for playIdx/index; a slot with no prior record is always
// consistent.
func (l *Ledger) Consistent(playIdx, index int, candidate card.Card) bool {
	prior, ok := l.known[slot{playIdx, index}]
	if !ok {
		return true
	}
	return prior.SameIdentity(candidate)
}

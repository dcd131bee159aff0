// Package deck implements the full Spider game state: ten play piles,
// five talon rows, one off pile, and the move history leading to them.
// A Deck is a pure value — ApplyMove returns a new Deck rather than
// mutating the receiver.
package deck

import (
	"fmt"

	"github.com/hailam/spidersolve/internal/card"
	"github.com/hailam/spidersolve/internal/move"
	"github.com/hailam/spidersolve/internal/pile"
)

const (
	// NumPlayPiles is the number of tableau play piles.
	NumPlayPiles = 10
	// NumTalonPiles is the number of undealt talon rows.
	NumTalonPiles = 5
	// MaxMoves bounds the move history length.
	MaxMoves = 250
	// CompletedSequencesToWin is the number of off-pile entries a won
	// game holds, one per completed King-through-Ace run.
	CompletedSequencesToWin = 8
)

// Deck is the full game state at one point in play.
type Deck struct {
	play  [NumPlayPiles]*pile.Pile
	talon [NumTalonPiles]*pile.Pile
	off   *pile.Pile

	moves      [MaxMoves]move.Move
	movesIndex int
}

// New builds a Deck from explicit pile handles and an empty history.
func New(play [NumPlayPiles]*pile.Pile, talon [NumTalonPiles]*pile.Pile, off *pile.Pile) Deck {
	return Deck{play: play, talon: talon, off: off}
}

func (d Deck) Play(i int) *pile.Pile  { return d.play[i] }
func (d Deck) Talon(i int) *pile.Pile { return d.talon[i] }
func (d Deck) Off() *pile.Pile        { return d.off }

// MoveCount returns the number of moves applied so far.
func (d Deck) MoveCount() int { return d.movesIndex }

// MoveAt returns the i-th applied move.
func (d Deck) MoveAt(i int) move.Move { return d.moves[i] }

// Moves returns a copy of the applied move history.
func (d Deck) Moves() []move.Move {
	out := make([]move.Move, d.movesIndex)
	copy(out, d.moves[:d.movesIndex])
	return out
}

// IsWon reports whether the off pile holds all eight completed sequences.
func (d Deck) IsWon() bool {
	return d.off.Count() == CompletedSequencesToWin
}

// NextTalon returns the index of the first non-empty talon row, or -1 if
// none remain.
func (d Deck) NextTalon() int {
	for i := 0; i < NumTalonPiles; i++ {
		if !d.talon[i].IsEmpty() {
			return i
		}
	}
	return -1
}

// TopCardUnknown reports whether the top card of play pile i is marked
// unknown. Part of the unknown-card reveal protocol exposed to the CLI
// driver and internal/unknown.
func (d Deck) TopCardUnknown(i int) bool {
	p := d.play[i]
	if p.IsEmpty() {
		return false
	}
	return p.At(p.Count() - 1).Unknown()
}

// ReplacePlayCard returns a Deck with play pile i's card at index
// replaced by real. Part of the unknown-card reveal protocol.
func (d Deck) ReplacePlayCard(in *pile.Interner, i, index int, real card.Card) Deck {
	next := d
	next.play[i] = d.play[i].ReplaceAt(in, index, real)
	return next
}

// Hash returns a deterministic, process-local identity for this exact
// board configuration, derived from the interned piles' insertion serials.
// Two Decks with identical pile content always hash equal.
func (d Deck) Hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	mix := func(s uint64) {
		h ^= s
		h *= 1099511628211 // FNV-1a prime
	}
	for i := 0; i < NumPlayPiles; i++ {
		mix(d.play[i].Serial())
	}
	for i := 0; i < NumTalonPiles; i++ {
		mix(d.talon[i].Serial())
	}
	mix(d.off.Serial())
	return h
}

// ApplyMove returns a new Deck with m appended to the history. It fails
// if the history is already at capacity or a caller-guaranteed
// precondition (talon row size) does not hold.
func (d Deck) ApplyMove(in *pile.Interner, m move.Move) (Deck, error) {
	if d.movesIndex >= MaxMoves {
		return Deck{}, ErrCapacityExceeded
	}

	next := d

	switch {
	case m.IsTalon():
		row := d.talon[m.From()]
		if row.Count() != NumPlayPiles {
			return Deck{}, fmt.Errorf("%w: talon row %d has %d cards, want %d",
				ErrLogicViolation, m.From(), row.Count(), NumPlayPiles)
		}
		for i := 0; i < NumPlayPiles; i++ {
			dealt := row.At(i).SetFaceUp(true)
			next.play[i] = next.play[i].AddCard(in, dealt)
		}
		next.talon[m.From()] = in.Empty()

	case m.IsOff():
		from := m.From()
		src := d.play[from]
		suit := src.At(src.Count() - 1).Suit()
		next.play[from] = src.RemoveCards(in, m.Index())
		next.off = d.off.AddCard(in, card.New(suit, 13))

	default:
		from, to, index := m.From(), m.To(), m.Index()
		next.play[to] = d.play[to].CopyFrom(in, d.play[from], index)
		next.play[from] = d.play[from].RemoveCards(in, index)
	}

	next.moves[next.movesIndex] = m
	next.movesIndex++
	return next, nil
}

// ExplainMove renders a human-readable description of m as applied to d,
// in the style "Move N cards from X to Y - C", where C is the first
// (lowest) card of the moved run.
func ExplainMove(d Deck, m move.Move) string {
	switch {
	case m.IsTalon():
		return fmt.Sprintf("Deal talon row %d", m.From())
	case m.IsOff():
		src := d.Play(m.From())
		n := src.Count() - m.Index()
		return fmt.Sprintf("Move %d cards from %d to off", n, m.From())
	default:
		src := d.Play(m.From())
		n := src.Count() - m.Index()
		var label string
		if m.Index() < src.Count() {
			label = src.At(m.Index()).String()
		}
		return fmt.Sprintf("Move %d cards from %d to %d - %s", n, m.From(), m.To(), label)
	}
}

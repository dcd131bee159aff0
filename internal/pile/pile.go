// Package pile implements the immutable, interned, ordered card sequence
// at the heart of a Spider tableau: a play pile, talon row, or off pile.
package pile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/spidersolve/internal/card"
)

// ErrInvalidRun is wrapped by Parse when a compact "X..Y" run token is
// malformed (mixed suits, non-descending endpoints).
var ErrInvalidRun = errors.New("pile: invalid run notation")

// Pile is an immutable ordered sequence of cards plus its derived metrics.
// Every Pile in use is owned by exactly one Interner and reached only
// through that Interner's operations; two Piles with identical content are
// always the same *Pile (handle equality equals content equality).
type Pile struct {
	cards []card.Card

	// serial is the insertion order this pile's content first appeared in
	// its Interner — a deterministic, process-local stand-in for a content
	// hash, used by internal/deck and internal/search for tie-breaking.
	serial uint64

	chaos     int
	playable  int
	hidden    int
	under     int
	topSeqLen int
}

// Serial returns this pile's interning order, stable for the life of its
// Interner and deterministic given a deterministic sequence of inserts.
func (p *Pile) Serial() uint64 { return p.serial }

func (p *Pile) At(i int) card.Card { return p.cards[i] }

func (p *Pile) Count() int { return len(p.cards) }

func (p *Pile) IsEmpty() bool { return len(p.cards) == 0 }

func (p *Pile) Chaos() int { return p.chaos }

func (p *Pile) Playable() int { return p.playable }

func (p *Pile) Hidden() int { return p.hidden }

func (p *Pile) Under() int { return p.under }

func (p *Pile) TopSequenceLength() int { return p.topSeqLen }

// SequenceOf returns the length of the top descending same-suit face-up
// run if it ends in suit, else 0.
func (p *Pile) SequenceOf(suit card.Suit) int {
	if p.topSeqLen == 0 {
		return 0
	}
	if p.cards[len(p.cards)-1].Suit() != suit {
		return 0
	}
	return p.topSeqLen
}

// RemoveCards truncates the pile at index i; if the new top (position
// i-1) exists and is face-down, it is flipped face-up.
func (p *Pile) RemoveCards(in *Interner, i int) *Pile {
	out := append([]card.Card(nil), p.cards[:i]...)
	if i > 0 && !out[i-1].FaceUp() {
		out[i-1] = out[i-1].SetFaceUp(true)
	}
	return in.OrInsert(out)
}

// ReplaceAt returns a pile with the card at index i replaced by c.
func (p *Pile) ReplaceAt(in *Interner, i int, c card.Card) *Pile {
	out := append([]card.Card(nil), p.cards...)
	out[i] = c
	return in.OrInsert(out)
}

// AddCard appends c to the pile.
func (p *Pile) AddCard(in *Interner, c card.Card) *Pile {
	out := append(append([]card.Card(nil), p.cards...), c)
	return in.OrInsert(out)
}

// CopyFrom appends source[i:] to this pile.
func (p *Pile) CopyFrom(in *Interner, source *Pile, i int) *Pile {
	out := append([]card.Card(nil), p.cards...)
	out = append(out, source.cards[i:]...)
	return in.OrInsert(out)
}

// RemoveKnown returns a pile with one occurrence of each card in known
// removed from its content, matching cards by SameIdentity (face-up state
// is ignored).
func (p *Pile) RemoveKnown(in *Interner, known []card.Card) *Pile {
	used := make([]bool, len(known))
	out := make([]card.Card, 0, len(p.cards))
	for _, c := range p.cards {
		removed := false
		for i, k := range known {
			if !used[i] && c.SameIdentity(k) {
				used[i] = true
				removed = true
				break
			}
		}
		if !removed {
			out = append(out, c)
		}
	}
	return in.OrInsert(out)
}

// PickUnknown removes the first n cards from the pool pile p and returns
// them along with the resulting pool. The caller is responsible for any
// randomisation of pool order before calling this.
func (p *Pile) PickUnknown(in *Interner, n int) ([]card.Card, *Pile) {
	if n > len(p.cards) {
		n = len(p.cards)
	}
	picked := append([]card.Card(nil), p.cards[:n]...)
	remaining := append([]card.Card(nil), p.cards[n:]...)
	return picked, in.OrInsert(remaining)
}

// String prints contiguous descending same-suit face-up runs as "X..Y";
// solitary cards print as themselves.
func (p *Pile) String() string {
	if len(p.cards) == 0 {
		return ""
	}
	var parts []string
	i := 0
	for i < len(p.cards) {
		j := i
		for j+1 < len(p.cards) && p.cards[j+1].FaceUp() && p.cards[j+1].IsInSequenceTo(p.cards[j]) {
			j++
		}
		if j > i {
			parts = append(parts, p.cards[i].String()+".."+p.cards[j].String())
		} else {
			parts = append(parts, p.cards[i].String())
		}
		i = j + 1
	}
	return strings.Join(parts, " ")
}

func parseToken(token string) ([]card.Card, error) {
	if idx := strings.Index(token, ".."); idx >= 0 {
		startTok, endTok := token[:idx], token[idx+2:]
		start, err := card.Parse(startTok)
		if err != nil {
			return nil, fmt.Errorf("pile: invalid run start %q: %w", token, err)
		}
		end, err := card.Parse(endTok)
		if err != nil {
			return nil, fmt.Errorf("pile: invalid run end %q: %w", token, err)
		}
		if start.Suit() != end.Suit() {
			return nil, fmt.Errorf("%w: %q mixes suits", ErrInvalidRun, token)
		}
		if start.Rank() <= end.Rank() {
			return nil, fmt.Errorf("%w: %q is not descending", ErrInvalidRun, token)
		}
		out := make([]card.Card, 0, start.Rank()-end.Rank()+1)
		for r := start.Rank(); r >= end.Rank(); r-- {
			out = append(out, card.New(start.Suit(), r))
		}
		return out, nil
	}
	c, err := card.Parse(token)
	if err != nil {
		return nil, err
	}
	return []card.Card{c}, nil
}

// Parse accepts space-separated card tokens, and the compact run notation
// "X..Y" where X and Y share a suit and X.Rank() > Y.Rank(), expanded to
// the full descending sequence.
func Parse(in *Interner, text string) (*Pile, error) {
	fields := strings.Fields(text)
	cards := make([]card.Card, 0, len(fields))
	for _, f := range fields {
		expanded, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, expanded...)
	}
	return in.OrInsert(cards), nil
}

func computeSequenceLength(cards []card.Card) int {
	count := len(cards)
	if count < 2 {
		return count
	}
	if !cards[count-1].FaceUp() {
		return 0
	}
	length := 1
	for i := count - 1; i > 0; i-- {
		if !cards[i].IsInSequenceTo(cards[i-1]) {
			break
		}
		length++
	}
	return length
}

func computeChaos(cards []card.Card) int {
	total := 0
	for i, cur := range cards {
		if i == 0 {
			total++
			continue
		}
		prev := cards[i-1]
		if !prev.FaceUp() {
			total += 2
			continue
		}
		if prev.Suit() != cur.Suit() {
			total++
		}
		if prev.Rank() != cur.Rank()+1 {
			total++
		}
	}
	return total
}

func computeHidden(cards []card.Card) int {
	hidden := 0
	for _, c := range cards {
		if c.FaceUp() {
			break
		}
		hidden++
	}
	return hidden
}

func computeUnder(cards []card.Card) int {
	return underRec(cards, 0)
}

func underRec(cards []card.Card, depth int) int {
	if len(cards) == 0 {
		return 0
	}
	k := computeSequenceLength(cards)
	peel := k
	if peel == 0 {
		peel = 1
	}
	return depth*k + underRec(cards[:len(cards)-peel], depth+1)
}

// Package card implements the single-byte playing card value used
// throughout the solver: rank, suit, face-up state, and an "unknown" flag
// packed into one byte.
package card

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four card suits. The letter order (S, H, C, D)
// and numeric assignment match the original deck-file grammar; it is not
// the conventional bridge ordering.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}

// Bit layout within the single byte:
//
//	bits 0-3: rank (1=Ace .. 13=King)
//	bits 4-5: suit (0-3)
//	bit 6:    face-up
//	bit 7:    unknown
const (
	rankMask    = 0x0F
	suitShift   = 4
	suitMask    = 0x03
	faceUpBit   = 1 << 6
	unknownBit  = 1 << 7
)

// Card is a single playing card packed into one byte.
type Card uint8

// InvalidCard is returned by Parse on malformed input and by lookups that
// found nothing; it is never a valid playing card (rank 0 is not dealt).
const InvalidCard Card = 0

// New builds a known, face-up card with the given suit and rank (1..13).
func New(suit Suit, rank int) Card {
	return Card(rank&rankMask) | Card(uint8(suit)&suitMask)<<suitShift | faceUpBit
}

// NewUnknown builds a face-down unknown card.
func NewUnknown() Card {
	return Card(unknownBit)
}

// Rank returns the card's rank, 1 (Ace) through 13 (King). Meaningless if
// Unknown() is true.
func (c Card) Rank() int { return int(c) & rankMask }

// Suit returns the card's suit. Meaningless if Unknown() is true.
func (c Card) Suit() Suit { return Suit((uint8(c) >> suitShift) & suitMask) }

// FaceUp reports whether the card is showing.
func (c Card) FaceUp() bool { return uint8(c)&faceUpBit != 0 }

// Unknown reports whether the card's identity is not yet known.
func (c Card) Unknown() bool { return uint8(c)&unknownBit != 0 }

// SetFaceUp returns a copy of c with the face-up bit set to face.
func (c Card) SetFaceUp(face bool) Card {
	if face {
		return c | faceUpBit
	}
	return c &^ faceUpBit
}

// SameIdentity reports whether two cards are the same rank and suit,
// ignoring face-up state. Used when a revealed card is checked against an
// identity previously recorded for the same slot (see internal/unknown's
// Ledger).
func (c Card) SameIdentity(other Card) bool {
	return c.Rank() == other.Rank() && c.Suit() == other.Suit()
}

// IsInSequenceTo reports whether c continues a descending same-suit run
// when placed on top of next: next must be face-up, share c's suit, and be
// exactly one rank higher than c.
func (c Card) IsInSequenceTo(next Card) bool {
	return next.FaceUp() && next.Suit() == c.Suit() && next.Rank() == c.Rank()+1
}

// FitsOnTop reports whether c can be placed onto next: next must be
// face-up and exactly one rank higher than c. Suit is irrelevant.
func (c Card) FitsOnTop(next Card) bool {
	return next.FaceUp() && next.Rank() == c.Rank()+1
}

var rankLetters = [...]byte{0, 'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

// String renders the card in its short textual form: an optional leading
// "|" for face-down, then the rank letter and suit letter, or "XX" for an
// unknown card.
func (c Card) String() string {
	var sb strings.Builder
	if !c.FaceUp() {
		sb.WriteByte('|')
	}
	if c.Unknown() {
		sb.WriteString("XX")
		return sb.String()
	}
	rank := c.Rank()
	if rank < 1 || rank > 13 {
		return "??"
	}
	sb.WriteByte(rankLetters[rank])
	sb.WriteString(c.Suit().String())
	return sb.String()
}

func rankFromLetter(ch byte) (int, bool) {
	switch ch {
	case 'A':
		return 1, true
	case '2':
		return 2, true
	case '3':
		return 3, true
	case '4':
		return 4, true
	case '5':
		return 5, true
	case '6':
		return 6, true
	case '7':
		return 7, true
	case '8':
		return 8, true
	case '9':
		return 9, true
	case 'T':
		return 10, true
	case 'J':
		return 11, true
	case 'Q':
		return 12, true
	case 'K':
		return 13, true
	default:
		return 0, false
	}
}

func suitFromLetter(ch byte) (Suit, bool) {
	switch ch {
	case 'S':
		return Spades, true
	case 'H':
		return Hearts, true
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	default:
		return 0, false
	}
}

// Parse reads a card's short textual form: `"|"?  ( [A23456789TJQK] [SHCD]
// | "XX" )`, case-insensitive on letters. It fails with an error wrapping
// ErrInvalidToken on malformed input or trailing characters.
func Parse(text string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" {
		return InvalidCard, fmt.Errorf("%w: empty card token", ErrInvalidToken)
	}

	faceUp := true
	if s[0] == '|' {
		faceUp = false
		s = s[1:]
	}

	if s == "XX" {
		c := NewUnknown().SetFaceUp(faceUp)
		return c, nil
	}

	if len(s) != 2 {
		return InvalidCard, fmt.Errorf("%w: %q", ErrInvalidToken, text)
	}

	rank, ok := rankFromLetter(s[0])
	if !ok {
		return InvalidCard, fmt.Errorf("%w: bad rank in %q", ErrInvalidToken, text)
	}
	suit, ok := suitFromLetter(s[1])
	if !ok {
		return InvalidCard, fmt.Errorf("%w: bad suit in %q", ErrInvalidToken, text)
	}

	return New(suit, rank).SetFaceUp(faceUp), nil
}

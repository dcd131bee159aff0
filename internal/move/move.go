// Package move implements the tagged Move value used to describe a single
// legal transition of a Deck: a regular pile-to-pile transfer, a talon
// deal, or a send-off.
package move

// kind distinguishes the three Move variants.
type kind uint8

const (
	kindRegular kind = iota
	kindDrawTalon
	kindSendOff
	kindInvalid
)

// Move is a tagged value type. Equality is structural.
type Move struct {
	k     kind
	from  int
	to    int
	index int
}

// Invalid is the sentinel "no move found" value used only in history
// initialisation; the generator and search never return it.
var Invalid = Move{k: kindInvalid, from: 11}

// Regular builds a pile-to-pile move: from and to are play pile indices in
// [0,10), index is the source position the moved run begins at.
func Regular(from, to, index int) Move {
	return Move{k: kindRegular, from: from, to: to, index: index}
}

// FromTalon builds a talon-deal move for the given talon row.
func FromTalon(row int) Move {
	return Move{k: kindDrawTalon, from: row}
}

// Off builds a send-off move: from is the source play pile, index is
// count(from)-13.
func Off(from, index int) Move {
	return Move{k: kindSendOff, from: from, index: index}
}

func (m Move) From() int { return m.from }
func (m Move) To() int   { return m.to }
func (m Move) Index() int { return m.index }

func (m Move) IsOff() bool   { return m.k == kindSendOff }
func (m Move) IsTalon() bool { return m.k == kindDrawTalon }

// IsInvalid reports whether m is the Invalid sentinel.
func (m Move) IsInvalid() bool { return m.k == kindInvalid || m.from > 10 }

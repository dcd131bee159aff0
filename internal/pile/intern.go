package pile

import "github.com/hailam/spidersolve/internal/card"

// trieNode is one node of the prefix tree keyed on card bytes. Children are
// held as a scanned pair of parallel slices rather than a dense 256-entry
// array: at most 106 distinct card bytes exist (52 identities face-up or
// face-down, plus the two unknown forms), so a linear scan stays cheap
// while avoiding a fixed-size allocation per node.
type trieNode struct {
	keys     []card.Card
	children []*trieNode
	pile     *Pile
}

func (n *trieNode) child(c card.Card, create bool) *trieNode {
	for i, k := range n.keys {
		if k == c {
			return n.children[i]
		}
	}
	if !create {
		return nil
	}
	child := &trieNode{}
	n.keys = append(n.keys, c)
	n.children = append(n.children, child)
	return child
}

// Interner owns the prefix tree and is the sole source of *Pile handles.
// It is not a package-level global: per spec.md §9's open question on
// global mutable state, ownership belongs to whatever context needs
// piles — typically a search.Search, or a standalone Interner in tests.
type Interner struct {
	root       *trieNode
	nextSerial uint64
}

// NewInterner creates an Interner whose root already holds the empty pile.
func NewInterner() *Interner {
	in := &Interner{root: &trieNode{}}
	in.root.pile = &Pile{cards: nil, serial: 0}
	in.nextSerial = 1
	return in
}

// OrInsert returns the unique interned *Pile for the given card content,
// allocating a new node (and computing its derived metrics) only on the
// first insertion of that exact sequence.
func (in *Interner) OrInsert(cards []card.Card) *Pile {
	node := in.root
	for _, c := range cards {
		node = node.child(c, true)
	}
	if node.pile == nil {
		node.pile = &Pile{
			cards:     cards,
			serial:    in.nextSerial,
			chaos:     computeChaos(cards),
			playable:  computeSequenceLength(cards),
			hidden:    computeHidden(cards),
			under:     computeUnder(cards),
			topSeqLen: computeSequenceLength(cards),
		}
		in.nextSerial++
	}
	return node.pile
}

// Empty returns the interned empty pile.
func (in *Interner) Empty() *Pile {
	return in.root.pile
}

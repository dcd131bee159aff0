// Package search implements the bucketed best-first beam expansion that
// drives the solver: separate candidate pools partitioned by remaining
// talon deals, per-depth hash dedup, and a per-bucket hard cap.
package search

import (
	"log/slog"
	"sort"

	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/move"
	"github.com/hailam/spidersolve/internal/pile"
)

// numBuckets covers free_talons counts 0..NumTalonPiles inclusive.
const numBuckets = deck.NumTalonPiles + 1

// candidate is a weighted successor carried through one depth iteration.
type candidate struct {
	deck       deck.Deck
	hash       uint64
	freeTalons int
	chaos      int
	playable   int
	inOff      int
	freePlays  int
}

// Search owns the pile interner for every deck it produces and runs the
// bucketed beam expansion of a single initial deck. It is not a
// package-level global: callers create one Search per solve (or reuse one
// across related decks that should share interning).
type Search struct {
	interner *pile.Interner
	cap      int
	debug    bool
	log      *slog.Logger

	wonHashes map[uint64]bool
}

// New creates a Search with the given per-bucket cap. debug turns on
// structured progress logging of each depth iteration.
func New(cap int, debug bool) *Search {
	return &Search{
		interner: pile.NewInterner(),
		cap:      cap,
		debug:    debug,
		log:      slog.Default(),
	}
}

// Interner exposes the Search's owned pile interner so a caller can parse
// the initial deck (and any fixtures) with the same interner.
func (s *Search) Interner() *pile.Interner { return s.interner }

// SetWonHashes installs an optional set of previously-seen winning hashes.
// It is consulted only for retrospective debug logging and never changes
// the search outcome.
func (s *Search) SetWonHashes(hashes map[uint64]bool) { s.wonHashes = hashes }

// Run executes the bucketed beam search from initial, returning the
// winning move list and a positive depth reached, or a nil list and a
// non-positive depth (negated search depth) if no win was found within
// the beam.
func (s *Search) Run(initial deck.Deck) ([]move.Move, int) {
	var frontier [numBuckets][]deck.Deck
	frontier[initial.FreeTalons()] = append(frontier[initial.FreeTalons()], initial)

	depth := 0
	var moveBuf []move.Move

	for {
		seen := newSeenSet()
		var unvisited []candidate
		retrospectiveHits := 0

		for b := 0; b < numBuckets; b++ {
			for _, d := range frontier[b] {
				moveBuf = deck.GetMoves(d, moveBuf[:0])
				for _, m := range moveBuf {
					next, err := d.ApplyMove(s.interner, m)
					if err != nil {
						continue
					}
					h := next.Hash()
					if !seen.Insert(h) {
						continue
					}
					if s.wonHashes != nil && s.wonHashes[h] {
						retrospectiveHits++
					}
					unvisited = append(unvisited, candidate{
						deck:       next,
						hash:       h,
						freeTalons: next.FreeTalons(),
						chaos:      next.Chaos(),
						playable:   next.Playable(),
						inOff:      next.InOff(),
						freePlays:  next.FreePlays(),
					})
				}
			}
		}

		if len(unvisited) == 0 {
			if s.debug {
				s.log.Info("search exhausted", "depth", depth)
			}
			return nil, -depth
		}

		sort.Slice(unvisited, func(i, j int) bool {
			return less(unvisited[i], unvisited[j])
		})

		var next [numBuckets][]deck.Deck
		for _, c := range unvisited {
			if c.deck.IsWon() {
				if s.debug {
					s.log.Info("search won", "depth", depth+1)
				}
				return c.deck.Moves(), depth + 1
			}
			if len(next[c.freeTalons]) < s.cap {
				next[c.freeTalons] = append(next[c.freeTalons], c.deck)
			}
		}
		frontier = next
		depth++

		if s.debug {
			s.log.Info("depth advanced",
				"depth", depth,
				"candidates", len(unvisited),
				"retrospective_hits", retrospectiveHits)
		}
	}
}

// less implements the candidate ordering of spec.md §4.7: lower chaos
// wins; ties broken by higher playable+inOff+freePlays; at chaos==0,
// prefer fewer free plays then less in off; final tiebreak is the hash.
func less(a, b candidate) bool {
	if a.chaos != b.chaos {
		return a.chaos < b.chaos
	}
	am := a.playable + a.inOff + a.freePlays
	bm := b.playable + b.inOff + b.freePlays
	if am != bm {
		return am > bm
	}
	if a.chaos == 0 {
		if a.freePlays != b.freePlays {
			return a.freePlays < b.freePlays
		}
		if a.inOff != b.inOff {
			return a.inOff < b.inOff
		}
	}
	return a.hash < b.hash
}

package search

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/hailam/spidersolve/internal/move"
)

// SolveCache persists solve results keyed by an initial deck's hash so
// repeated runs against the same deck file short-circuit, and doubles as
// an unsolvable-seed ledger the driver can consult before spending a beam
// search on a deck already proven to exhaust.
type SolveCache struct {
	db *badger.DB
}

type cachedResult struct {
	Moves      []cachedMove `json:"moves"`
	Depth      int          `json:"depth"`
	Unsolvable bool         `json:"unsolvable"`
}

type cachedMove struct {
	Kind  string `json:"kind"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Index int    `json:"index"`
}

func encodeMove(m move.Move) cachedMove {
	kind := "regular"
	switch {
	case m.IsTalon():
		kind = "talon"
	case m.IsOff():
		kind = "off"
	}
	return cachedMove{Kind: kind, From: m.From(), To: m.To(), Index: m.Index()}
}

func decodeMove(cm cachedMove) move.Move {
	switch cm.Kind {
	case "talon":
		return move.FromTalon(cm.From)
	case "off":
		return move.Off(cm.From, cm.Index)
	default:
		return move.Regular(cm.From, cm.To, cm.Index)
	}
}

// NewSolveCache opens (creating if necessary) a BadgerDB-backed cache at dir.
func NewSolveCache(dir string) (*SolveCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("search: open solve cache: %w", err)
	}
	return &SolveCache{db: db}, nil
}

func (c *SolveCache) Close() error { return c.db.Close() }

func cacheKey(hash uint64) []byte {
	return []byte(fmt.Sprintf("solve:%020d", hash))
}

// Lookup returns a previously recorded result for the given initial-deck
// hash, if one was stored.
func (c *SolveCache) Lookup(hash uint64) (moves []move.Move, depth int, unsolvable bool, found bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(cacheKey(hash))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		return item.Value(func(val []byte) error {
			var cr cachedResult
			if jsonErr := json.Unmarshal(val, &cr); jsonErr != nil {
				return jsonErr
			}
			found = true
			depth = cr.Depth
			unsolvable = cr.Unsolvable
			moves = make([]move.Move, len(cr.Moves))
			for i, cm := range cr.Moves {
				moves[i] = decodeMove(cm)
			}
			return nil
		})
	})
	return
}

// Store records a winning move list (depth > 0) or marks the deck
// unsolvable within the beam (depth <= 0) under hash.
func (c *SolveCache) Store(hash uint64, moves []move.Move, depth int) error {
	cr := cachedResult{Depth: depth, Unsolvable: depth <= 0}
	cr.Moves = make([]cachedMove, len(moves))
	for i, m := range moves {
		cr.Moves[i] = encodeMove(m)
	}
	val, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("search: marshal solve result: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(hash), val)
	})
}

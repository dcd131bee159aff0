// Command spidersolve is the CLI driver for the Spider solitaire solver:
// it parses a deck text file, runs the bucketed beam search over it, and
// reports the winning move list (or how far it got). When a move exposes
// a face-down unknown card, it prompts for the real card, patches the
// deck file, and re-solves from the revealed state.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hailam/spidersolve/internal/card"
	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/deckfile"
	"github.com/hailam/spidersolve/internal/move"
	"github.com/hailam/spidersolve/internal/pile"
	"github.com/hailam/spidersolve/internal/search"
	"github.com/hailam/spidersolve/internal/unknown"
)

func main() {
	capFlag := flag.Int("cap", 200, "per-bucket beam width")
	suits := flag.Int("suits", 2, "number of distinct suits in the unknown pool (1, 2, or 4)")
	debug := flag.Bool("debug", false, "emit progress lines")
	yamlOut := flag.Bool("yaml", false, "emit the move list as YAML")
	generate := flag.Bool("generate", false, "interactively construct a deck file rather than solve")
	orig := flag.String("orig", "", "path of the authoritative deck file to update on card reveal")
	useCache := flag.Bool("cache", false, "consult and populate a persistent BadgerDB solve cache keyed by deck hash")
	flag.Parse()

	if *suits != 1 && *suits != 2 && *suits != 4 {
		log.Fatalf("--suits must be 1, 2, or 4, got %d", *suits)
	}

	if *generate {
		target := flag.Arg(0)
		if target == "" {
			log.Fatal("usage: spidersolve --generate <deckfile>")
		}
		if err := runGenerate(os.Stdin, os.Stdout, target, *suits); err != nil {
			log.Fatalf("generate: %v", err)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatal("usage: spidersolve [flags] deckfile...")
	}

	var cache *search.SolveCache
	if *useCache {
		dir, err := search.DefaultCacheDir()
		if err != nil {
			log.Fatalf("cache: %v", err)
		}
		cache, err = search.NewSolveCache(dir)
		if err != nil {
			log.Fatalf("cache: %v", err)
		}
		defer cache.Close()
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := solveOne(path, *capFlag, *debug, *yamlOut, *orig, cache); err != nil {
			if errors.Is(err, deck.ErrCapacityExceeded) || errors.Is(err, deck.ErrLogicViolation) {
				log.Fatalf("%s: %v", path, err)
			}
			log.Printf("%s: %v", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func solveOne(path string, capN int, debug, yamlOut bool, origPath string, cache *search.SolveCache) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	sr := search.New(capN, debug)
	in := sr.Interner()
	d, err := deckfile.Parse(in, string(data))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	stdin := bufio.NewReader(os.Stdin)
	ledger := unknown.NewLedger()
	var applied []move.Move

	for {
		moves, depth := lookupOrSolve(cache, sr, d, debug)
		if depth <= 0 {
			fmt.Printf("%s: no win found (explored to depth %d)\n", path, -depth)
			return nil
		}

		sequenceComplete := true
		for _, m := range moves {
			next, err := d.ApplyMove(in, m)
			if err != nil {
				return fmt.Errorf("apply: %w", err)
			}
			applied = append(applied, m)
			d = next

			revealed, err := resolveReveals(stdin, in, ledger, &d, path, origPath)
			if err != nil {
				return err
			}
			if revealed {
				sequenceComplete = false
				break
			}
		}

		if sequenceComplete {
			fmt.Printf("%s: solved in %d moves\n", path, len(applied))
			return printMoves(applied, yamlOut)
		}
		if debug {
			log.Printf("%s: re-solving after a card reveal", path)
		}
	}
}

// lookupOrSolve consults cache for a previously stored result keyed by d's
// hash before falling back to a fresh beam search, storing whatever sr.Run
// produces so the next identical deck hits the cache. cache may be nil, in
// which case every call runs the search directly.
func lookupOrSolve(cache *search.SolveCache, sr *search.Search, d deck.Deck, debug bool) ([]move.Move, int) {
	h := d.Hash()
	if cache != nil {
		if moves, depth, unsolvable, found, err := cache.Lookup(h); err != nil {
			if debug {
				log.Printf("cache lookup: %v", err)
			}
		} else if found {
			if unsolvable {
				return nil, depth
			}
			return moves, depth
		}
	}

	moves, depth := sr.Run(d)
	if cache != nil {
		if err := cache.Store(h, moves, depth); err != nil && debug {
			log.Printf("cache store: %v", err)
		}
	}
	return moves, depth
}

// resolveReveals prompts for and applies every currently unknown play-pile
// top card, persisting the updated deck to path (and origPath, if set)
// after each reveal. It reports whether any reveal occurred.
func resolveReveals(stdin *bufio.Reader, in *pile.Interner, ledger *unknown.Ledger, d *deck.Deck, path, origPath string) (bool, error) {
	revealedAny := false
	for p := 0; p < deck.NumPlayPiles; p++ {
		for d.TopCardUnknown(p) {
			fmt.Printf("pile %d's top card is unknown - enter its real value (e.g. 9H): ", p)
			line, err := stdin.ReadString('\n')
			if err != nil {
				return revealedAny, fmt.Errorf("reveal: read input: %w", err)
			}
			real, err := card.Parse(strings.TrimSpace(line))
			if err != nil {
				fmt.Printf("invalid card: %v\n", err)
				continue
			}
			index := d.Play(p).Count() - 1
			if !ledger.Consistent(p, index, real) {
				fmt.Printf("that does not match the card previously entered for this slot\n")
				continue
			}
			next, err := unknown.RevealTop(in, *d, p, real)
			if err != nil {
				return revealedAny, fmt.Errorf("reveal: %w", err)
			}
			ledger.Record(p, index, real)
			*d = next
			revealedAny = true

			if err := writeDeckFile(path, *d); err != nil {
				return revealedAny, fmt.Errorf("write: %w", err)
			}
			if origPath != "" {
				if err := writeDeckFile(origPath, *d); err != nil {
					return revealedAny, fmt.Errorf("write orig: %w", err)
				}
			}
		}
	}
	return revealedAny, nil
}

func writeDeckFile(path string, d deck.Deck) error {
	return os.WriteFile(path, []byte(deckfile.Serialize(d)), 0o644)
}

func printMoves(moves []move.Move, yamlOut bool) error {
	if yamlOut {
		out, err := yaml.Marshal(moveListYAML(moves))
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}
	for i, m := range moves {
		fmt.Printf("%3d: %s\n", i+1, describeMove(m))
	}
	return nil
}

type moveEntry struct {
	Number int  `yaml:"number"`
	From   int  `yaml:"from"`
	To     int  `yaml:"to,omitempty"`
	Index  int  `yaml:"index"`
	Off    bool `yaml:"off,omitempty"`
	Talon  bool `yaml:"talon,omitempty"`
}

func moveListYAML(moves []move.Move) []moveEntry {
	out := make([]moveEntry, len(moves))
	for i, m := range moves {
		out[i] = moveEntry{
			Number: i + 1,
			From:   m.From(),
			To:     m.To(),
			Index:  m.Index(),
			Off:    m.IsOff(),
			Talon:  m.IsTalon(),
		}
	}
	return out
}

func describeMove(m move.Move) string {
	switch {
	case m.IsTalon():
		return fmt.Sprintf("deal talon row %d", m.From())
	case m.IsOff():
		return fmt.Sprintf("send pile %d off", m.From())
	default:
		return fmt.Sprintf("move pile %d -> %d (index %d)", m.From(), m.To(), m.Index())
	}
}

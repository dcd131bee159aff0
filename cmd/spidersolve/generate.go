package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/spidersolve/internal/card"
	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/pile"
)

// allowedSuits returns the suits a deck built for n distinct suits may use.
func allowedSuits(n int) []card.Suit {
	switch n {
	case 1:
		return []card.Suit{card.Spades}
	case 2:
		return []card.Suit{card.Spades, card.Hearts}
	default:
		return []card.Suit{card.Spades, card.Hearts, card.Clubs, card.Diamonds}
	}
}

func suitAllowed(allowed []card.Suit, s card.Suit) bool {
	for _, a := range allowed {
		if a == s {
			return true
		}
	}
	return false
}

func validateSuits(p *pile.Pile, allowed []card.Suit) error {
	for i := 0; i < p.Count(); i++ {
		c := p.At(i)
		if c.Unknown() {
			continue
		}
		if !suitAllowed(allowed, c.Suit()) {
			return fmt.Errorf("card %s uses a suit outside the requested %d-suit pool", c, len(allowed))
		}
	}
	return nil
}

// runGenerate interactively builds a deck file at target, prompting once
// per play pile and talon row for its cards.
func runGenerate(in io.Reader, out io.Writer, target string, suits int) error {
	scanner := bufio.NewScanner(in)
	allowed := allowedSuits(suits)
	interner := pile.NewInterner()

	prompt := func(label string) (*pile.Pile, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !scanner.Scan() {
			return nil, fmt.Errorf("generate: unexpected end of input reading %s", label)
		}
		line := strings.TrimSpace(scanner.Text())
		p, err := pile.Parse(interner, line)
		if err != nil {
			return nil, fmt.Errorf("generate: %s: %w", label, err)
		}
		if err := validateSuits(p, allowed); err != nil {
			return nil, fmt.Errorf("generate: %s: %w", label, err)
		}
		return p, nil
	}

	var play [deck.NumPlayPiles]*pile.Pile
	for i := 0; i < deck.NumPlayPiles; i++ {
		p, err := prompt(fmt.Sprintf("Play%d", i))
		if err != nil {
			return err
		}
		play[i] = p
	}

	var talon [deck.NumTalonPiles]*pile.Pile
	for i := 0; i < deck.NumTalonPiles; i++ {
		p, err := prompt(fmt.Sprintf("Deal%d", i))
		if err != nil {
			return err
		}
		talon[i] = p
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	d := deck.New(play, talon, interner.Empty())
	if err := writeDeckFile(target, d); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", target)
	return nil
}

// Package deckfile reads and writes the external deck text format: sixteen
// lines naming each of the ten play piles, five talon rows, and the off
// pile, using internal/pile's card-token grammar for each line's content.
package deckfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/pile"
)

func lineOrder() []string {
	order := make([]string, 0, deck.NumPlayPiles+deck.NumTalonPiles+1)
	for i := 0; i < deck.NumPlayPiles; i++ {
		order = append(order, fmt.Sprintf("Play%d", i))
	}
	for i := 0; i < deck.NumTalonPiles; i++ {
		order = append(order, fmt.Sprintf("Deal%d", i))
	}
	return append(order, "Off")
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// Parse reads the 16-line deck text format into a Deck, interning every
// pile through in. Lines that are blank after comment-stripping are
// skipped; the remaining lines must match the fixed Play0..9/Deal0..4/Off
// order exactly.
func Parse(in *pile.Interner, text string) (deck.Deck, error) {
	order := lineOrder()

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if l := stripComment(scanner.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return deck.Deck{}, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	if len(lines) != len(order) {
		return deck.Deck{}, fmt.Errorf("%w: expected %d lines, got %d", ErrInvalidDeck, len(order), len(lines))
	}

	var play [deck.NumPlayPiles]*pile.Pile
	var talon [deck.NumTalonPiles]*pile.Pile
	var off *pile.Pile

	for i, l := range lines {
		prefix := order[i] + ":"
		if !strings.HasPrefix(l, prefix) {
			return deck.Deck{}, fmt.Errorf("%w: line %d: expected %q, got %q", ErrInvalidDeck, i+1, prefix, l)
		}
		body := strings.TrimSpace(l[len(prefix):])
		p, err := pile.Parse(in, body)
		if err != nil {
			return deck.Deck{}, fmt.Errorf("%w: line %d: %v", ErrInvalidDeck, i+1, err)
		}
		switch {
		case i < deck.NumPlayPiles:
			play[i] = p
		case i < deck.NumPlayPiles+deck.NumTalonPiles:
			talon[i-deck.NumPlayPiles] = p
		default:
			off = p
		}
	}

	return deck.New(play, talon, off), nil
}

// Serialize renders d back into the 16-line deck text format, in the same
// order Parse expects, ready to round-trip through Parse.
func Serialize(d deck.Deck) string {
	var sb strings.Builder
	for i := 0; i < deck.NumPlayPiles; i++ {
		fmt.Fprintf(&sb, "Play%d: %s\n", i, d.Play(i).String())
	}
	for i := 0; i < deck.NumTalonPiles; i++ {
		fmt.Fprintf(&sb, "Deal%d: %s\n", i, d.Talon(i).String())
	}
	fmt.Fprintf(&sb, "Off: %s\n", d.Off().String())
	return sb.String()
}

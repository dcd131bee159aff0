package search

import (
	"testing"

	"github.com/hailam/spidersolve/internal/card"
	"github.com/hailam/spidersolve/internal/deck"
	"github.com/hailam/spidersolve/internal/pile"
)

func TestRunSolvesAnAlreadyCompleteRun(t *testing.T) {
	s := New(50, false)
	in := s.Interner()

	var play [deck.NumPlayPiles]*pile.Pile
	top, err := pile.Parse(in, "KH QH JH TH 9H 8H 7H 6H 5H 4H 3H 2H AH")
	if err != nil {
		t.Fatalf("pile.Parse error: %v", err)
	}
	play[0] = top
	for i := 1; i < deck.NumPlayPiles; i++ {
		play[i] = in.Empty()
	}
	var talon [deck.NumTalonPiles]*pile.Pile
	for i := range talon {
		talon[i] = in.Empty()
	}
	off := in.Empty()
	for i := 0; i < 7; i++ {
		off = off.AddCard(in, card.New(card.Spades, 13))
	}

	d := deck.New(play, talon, off)
	moves, depth := s.Run(d)
	if depth != 1 {
		t.Fatalf("depth = %d, want 1", depth)
	}
	if len(moves) != 1 || !moves[0].IsOff() {
		t.Fatalf("expected a single send-off move, got %v", moves)
	}

	final, err := d.ApplyMove(in, moves[0])
	if err != nil {
		t.Fatalf("replaying winning move failed: %v", err)
	}
	if !final.IsWon() {
		t.Errorf("replaying the returned move list should win the game")
	}
}

func TestRunReportsExhaustionWhenNoMovesExist(t *testing.T) {
	s := New(50, false)
	in := s.Interner()

	var play [deck.NumPlayPiles]*pile.Pile
	isolated, err := pile.Parse(in, "AS")
	if err != nil {
		t.Fatalf("pile.Parse error: %v", err)
	}
	play[0] = isolated
	for i := 1; i < deck.NumPlayPiles; i++ {
		play[i] = in.Empty()
	}
	var talon [deck.NumTalonPiles]*pile.Pile
	for i := range talon {
		talon[i] = in.Empty()
	}

	d := deck.New(play, talon, in.Empty())
	moves, depth := s.Run(d)
	if depth > 0 {
		t.Errorf("depth = %d, want <= 0 (no win found)", depth)
	}
	if moves != nil {
		t.Errorf("expected nil move list when no win is found, got %v", moves)
	}
}

// Reproduces spec.md §8 scenario S1: three hearts piles (KH QH JH TH / 9H /
// 8H..AH) with seven already-completed off sequences finish the eighth
// suit, and the shortest path to a win is exactly 3 moves.
func TestShortestPathTrivialFinishInThreeMoves(t *testing.T) {
	s := New(50, false)
	in := s.Interner()

	d := buildTestDeck(t, in, map[int]string{
		0: "KH QH JH TH",
		1: "9H",
		2: "8H 7H 6H 5H 4H 3H 2H AH",
	}, 7)

	moves, depth := s.Run(d)
	if depth != 3 {
		t.Fatalf("depth = %d, want 3", depth)
	}
	final := d
	for _, m := range moves {
		var err error
		final, err = final.ApplyMove(in, m)
		if err != nil {
			t.Fatalf("replaying move %v failed: %v", m, err)
		}
	}
	if !final.IsWon() {
		t.Errorf("replaying the returned 3-move path should win the game")
	}
}

func buildTestDeck(t *testing.T, in *pile.Interner, playTexts map[int]string, completedOff int) deck.Deck {
	t.Helper()
	var play [deck.NumPlayPiles]*pile.Pile
	for i := 0; i < deck.NumPlayPiles; i++ {
		text := playTexts[i]
		p, err := pile.Parse(in, text)
		if err != nil {
			t.Fatalf("pile.Parse(%q) error: %v", text, err)
		}
		play[i] = p
	}
	var talon [deck.NumTalonPiles]*pile.Pile
	for i := range talon {
		talon[i] = in.Empty()
	}
	off := in.Empty()
	for i := 0; i < completedOff; i++ {
		off = off.AddCard(in, card.New(card.Spades, 13))
	}
	return deck.New(play, talon, off)
}

func TestSearchOwnsItsOwnInterner(t *testing.T) {
	a := New(10, false)
	b := New(10, false)
	pa, err := pile.Parse(a.Interner(), "KH QH")
	if err != nil {
		t.Fatal(err)
	}
	pb, err := pile.Parse(b.Interner(), "KH QH")
	if err != nil {
		t.Fatal(err)
	}
	if pa == pb {
		t.Errorf("distinct Search instances should own distinct interners")
	}
}

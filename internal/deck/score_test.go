package deck

import (
	"testing"

	"github.com/hailam/spidersolve/internal/move"
	"github.com/hailam/spidersolve/internal/pile"
)

func TestScoringAggregates(t *testing.T) {
	in := pile.NewInterner()
	d := buildDeck(t, in, []string{"KH QH JH TH", "9H", ""}, 2)

	if got := d.Playable(); got != 4+1+0 {
		t.Errorf("Playable() = %d, want 5", got)
	}
	if got := d.PileChaos(); got != 1+1+0 {
		t.Errorf("PileChaos() = %d, want 2 (first-card cost only) for two clean runs and an empty pile", got)
	}
	if got := d.FreePlays(); got != NumPlayPiles-2 {
		t.Errorf("FreePlays() = %d, want %d", got, NumPlayPiles-2)
	}
	if got := d.FreeTalons(); got != NumTalonPiles {
		t.Errorf("FreeTalons() = %d, want %d", got, NumTalonPiles)
	}
	if got := d.InOff(); got != 26 {
		t.Errorf("InOff() = %d, want 26", got)
	}
}

func TestChaosReducesForKingBottomAndMatchingTops(t *testing.T) {
	in := pile.NewInterner()
	// Pile 0 bottom is a King: eligible for the -1 reduction.
	d := buildDeck(t, in, []string{"KH QH", "|5C |4C 3C"}, 0)

	pileChaos := d.PileChaos()
	chaos := d.Chaos()
	if chaos >= pileChaos {
		t.Errorf("Chaos() = %d should be less than PileChaos() = %d due to King-bottom reduction", chaos, pileChaos)
	}
}

func TestTalonMatches(t *testing.T) {
	in := pile.NewInterner()
	var play [NumPlayPiles]*pile.Pile
	for i := range play {
		play[i] = in.Empty()
	}
	var err error
	play[0], err = pile.Parse(in, "TH")
	if err != nil {
		t.Fatal(err)
	}
	play[1], err = pile.Parse(in, "5C")
	if err != nil {
		t.Fatal(err)
	}

	var talon [NumTalonPiles]*pile.Pile
	for i := range talon {
		talon[i] = in.Empty()
	}
	talon[0], err = pile.Parse(in, "|9H |2S |3S |4S |5S |6S |7S |8S |9S |TS")
	if err != nil {
		t.Fatal(err)
	}

	d := New(play, talon, in.Empty())
	if got := d.TalonMatches(); got != 1 {
		t.Errorf("TalonMatches() = %d, want 1 (pile 0's TH matched by talon's 9H)", got)
	}
}

// Reproduces spec.md §8 scenario S5: TalonMatches is 1, then 2 after moving
// "3H 2H" from pile 4 onto pile 8.
func TestTalonMatchesIncreasesAfterConsolidatingMove(t *testing.T) {
	in := pile.NewInterner()
	d := buildDeck(t, in, []string{
		"TH", "", "", "",
		"3H 2H", "", "", "",
		"4S",
	}, 0)

	var talon [NumTalonPiles]*pile.Pile
	talon[0] = mustParsePile(t, in, "|9H |2C |2C |2C |2C |2C |2C |2C |AH |2C")
	for i := 1; i < NumTalonPiles; i++ {
		talon[i] = in.Empty()
	}
	d = New(d.play, talon, d.off)

	if got := d.TalonMatches(); got != 1 {
		t.Fatalf("TalonMatches() before the move = %d, want 1", got)
	}

	next, err := d.ApplyMove(in, move.Regular(4, 8, 0))
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if got := next.TalonMatches(); got != 2 {
		t.Errorf("TalonMatches() after moving 3H 2H onto pile 8 = %d, want 2", got)
	}
}

package pile

import (
	"testing"

	"github.com/hailam/spidersolve/internal/card"
)

func mustParse(t *testing.T, in *Interner, text string) *Pile {
	t.Helper()
	p, err := Parse(in, text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return p
}

func TestParseAndStringRoundTrip(t *testing.T) {
	in := NewInterner()
	cases := []string{
		"KH QH JH TH",
		"KH..TH",
		"9H",
		"",
	}
	for _, text := range cases {
		p := mustParse(t, in, text)
		if got := p.String(); got != "KH..TH" && text == "KH QH JH TH" {
			t.Errorf("Parse(%q).String() = %q, want run-compacted form", text, got)
		}
		_ = p
	}

	run := mustParse(t, in, "KH QH JH TH")
	if run.String() != "KH..TH" {
		t.Errorf("expected compacted run, got %q", run.String())
	}
}

func TestInterningHandleEquality(t *testing.T) {
	in := NewInterner()
	a := mustParse(t, in, "KH QH JH TH")
	b := mustParse(t, in, "KH..TH")
	if a != b {
		t.Errorf("identical content should intern to the same handle")
	}
}

func TestEmptyPileAlwaysPresent(t *testing.T) {
	in := NewInterner()
	empty := in.Empty()
	if empty == nil || !empty.IsEmpty() {
		t.Fatalf("Interner.Empty() should be a present, empty pile")
	}
	parsed := mustParse(t, in, "")
	if parsed != empty {
		t.Errorf("parsing empty text should return the interned empty pile")
	}
}

func TestChaosOfPerfectRunCountsOnlyFirstCard(t *testing.T) {
	in := NewInterner()
	p := mustParse(t, in, "KH QH JH TH 9H 8H 7H")
	if p.Chaos() != 1 {
		t.Errorf("Chaos() = %d, want 1 (first card only) for a perfect descending same-suit run", p.Chaos())
	}
	if p.Playable() != 7 {
		t.Errorf("Playable() = %d, want 7", p.Playable())
	}
	if p.TopSequenceLength() != 7 {
		t.Errorf("TopSequenceLength() = %d, want 7", p.TopSequenceLength())
	}
}

func TestChaosCountsFirstCardAndFaceDown(t *testing.T) {
	in := NewInterner()
	p := mustParse(t, in, "|5C |4C 3C")
	// first card: +1; second card (prev |5C face-down): +2; third card
	// (prev |4C face-down): +2
	if p.Chaos() != 5 {
		t.Errorf("Chaos() = %d, want 5", p.Chaos())
	}
}

func TestHidden(t *testing.T) {
	in := NewInterner()
	p := mustParse(t, in, "|KH |QH JH")
	if p.Hidden() != 2 {
		t.Errorf("Hidden() = %d, want 2", p.Hidden())
	}
}

func TestSequenceOf(t *testing.T) {
	in := NewInterner()
	p := mustParse(t, in, "2S KH QH")
	if p.SequenceOf(card.Hearts) != 2 {
		t.Errorf("SequenceOf(Hearts) = %d, want 2", p.SequenceOf(card.Hearts))
	}
	if p.SequenceOf(card.Spades) != 0 {
		t.Errorf("SequenceOf(Spades) = %d, want 0", p.SequenceOf(card.Spades))
	}
}

func TestRemoveCardsFlipsExposedCard(t *testing.T) {
	in := NewInterner()
	p := mustParse(t, in, "|KH |QH JH")
	out := p.RemoveCards(in, 2)
	if out.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", out.Count())
	}
	if !out.At(1).FaceUp() {
		t.Errorf("newly exposed top card should be flipped face-up")
	}
	if out.At(0).FaceUp() {
		t.Errorf("bottom card should remain untouched")
	}
}

func TestAddCardAndCopyFrom(t *testing.T) {
	in := NewInterner()
	dest := mustParse(t, in, "9H")
	src := mustParse(t, in, "5C 8H 7H")
	out := dest.CopyFrom(in, src, 1)
	if out.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", out.Count())
	}
	if out.At(0) != dest.At(0) || out.At(1) != src.At(1) || out.At(2) != src.At(2) {
		t.Errorf("CopyFrom did not append source[i:] correctly")
	}

	added := dest.AddCard(in, src.At(0))
	if added.Count() != 2 || added.At(1) != src.At(0) {
		t.Errorf("AddCard did not append correctly")
	}
}

func TestDerivedMetricsArePureFunctionsOfContent(t *testing.T) {
	in1 := NewInterner()
	in2 := NewInterner()
	a := mustParse(t, in1, "KH QH JH TH")
	b := mustParse(t, in2, "KH QH JH TH")
	if a.String() != b.String() {
		t.Fatalf("expected equal string forms")
	}
	if a.Chaos() != b.Chaos() || a.Playable() != b.Playable() || a.Hidden() != b.Hidden() || a.Under() != b.Under() {
		t.Errorf("two interned piles with equal content should have equal derived metrics")
	}
}

package deck

// PileChaos is the sum of each play pile's Chaos().
func (d Deck) PileChaos() int {
	sum := 0
	for i := 0; i < NumPlayPiles; i++ {
		sum += d.play[i].Chaos()
	}
	return sum
}

// Playable is the sum of each play pile's Playable().
func (d Deck) Playable() int {
	sum := 0
	for i := 0; i < NumPlayPiles; i++ {
		sum += d.play[i].Playable()
	}
	return sum
}

// Hidden is the sum of each play pile's Hidden().
func (d Deck) Hidden() int {
	sum := 0
	for i := 0; i < NumPlayPiles; i++ {
		sum += d.play[i].Hidden()
	}
	return sum
}

// Under is the sum of each play pile's Under().
func (d Deck) Under() int {
	sum := 0
	for i := 0; i < NumPlayPiles; i++ {
		sum += d.play[i].Under()
	}
	return sum
}

// FreePlays is the count of empty play piles.
func (d Deck) FreePlays() int {
	n := 0
	for i := 0; i < NumPlayPiles; i++ {
		if d.play[i].IsEmpty() {
			n++
		}
	}
	return n
}

// FreeTalons is the count of empty talon rows.
func (d Deck) FreeTalons() int {
	n := 0
	for i := 0; i < NumTalonPiles; i++ {
		if d.talon[i].IsEmpty() {
			n++
		}
	}
	return n
}

// InOff is the number of cards represented by the off pile's completed
// sequences.
func (d Deck) InOff() int {
	return d.off.Count() * 13
}

// Chaos is the deck-level structural disorder metric used to rank
// candidates: pile chaos, reduced for piles whose bottom card is a King
// or sits atop a matching rank elsewhere, further reduced by up to
// FreePlays, floored at zero.
func (d Deck) Chaos() int {
	chaos := d.PileChaos()

	for i := 0; i < NumPlayPiles; i++ {
		p := d.play[i]
		if p.IsEmpty() {
			continue
		}
		bottom := p.At(0)

		reducible := bottom.Rank() == 13
		if !reducible {
			for j := 0; j < NumPlayPiles; j++ {
				if j == i {
					continue
				}
				other := d.play[j]
				if other.IsEmpty() {
					continue
				}
				top := other.At(other.Count() - 1)
				if top.Rank() == bottom.Rank()+1 {
					reducible = true
					break
				}
			}
		}
		if reducible {
			chaos--
		}
	}

	reduceBy := d.FreePlays()
	if reduceBy > chaos {
		reduceBy = chaos
	}
	chaos -= reduceBy
	if chaos < 0 {
		chaos = 0
	}
	return chaos
}

// TalonMatches counts positions where the next talon row's card at i
// continues the descending same-suit run of play[i]'s top card.
func (d Deck) TalonMatches() int {
	nt := d.NextTalon()
	if nt == -1 {
		return 0
	}
	talon := d.talon[nt]
	matches := 0
	for i := 0; i < NumPlayPiles; i++ {
		p := d.play[i]
		if p.IsEmpty() || i >= talon.Count() {
			continue
		}
		top := p.At(p.Count() - 1)
		candidate := talon.At(i)
		if top.Suit() == candidate.Suit() && top.Rank() == candidate.Rank()+1 {
			matches++
		}
	}
	return matches
}

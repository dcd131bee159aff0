package deck

import "github.com/hailam/spidersolve/internal/move"

// GetMoves appends every legal move from d to out and returns the
// extended slice. Pruning rules never remove a move that could be on the
// unique critical path of a shortest solution without an equivalent
// non-pruned alternative.
func GetMoves(d Deck, out []move.Move) []move.Move {
	nextTalon := d.NextTalon()

	oneIsEmpty := false
	for i := 0; i < NumPlayPiles; i++ {
		if d.play[i].IsEmpty() {
			oneIsEmpty = true
			break
		}
	}

	lowPlayable := false
	if nextTalon != -1 {
		totalPlayable := 0
		for i := 0; i < NumPlayPiles; i++ {
			totalPlayable += d.play[i].Playable()
		}
		// A talon deal places one card on each play pile and would bury
		// non-trivially, so no other move is productive first; the talon
		// move itself is still appended below.
		lowPlayable = totalPlayable < 10
	}

	if !lowPlayable {
		for from := 0; from < NumPlayPiles; from++ {
			src := d.play[from]
			count := src.Count()
			if count == 0 {
				continue
			}

			topSuit := src.At(count - 1).Suit()
			brokenLen := 0

			for index := count - 1; index >= 0; index-- {
				cur := src.At(index)
				if !cur.FaceUp() {
					break
				}
				if index < count-1 {
					prev := src.At(index + 1)
					if prev.Rank()+1 != cur.Rank() {
						break
					}
				}
				if cur.Suit() != topSuit {
					brokenLen++
				}

				topRank := cur.Rank()
				runLen := count - index

				if runLen == 13 && brokenLen == 0 {
					out = out[:0]
					out = append(out, move.Off(from, index))
					return out
				}

				emptyUsed := false
				for to := 0; to < NumPlayPiles; to++ {
					if to == from {
						continue
					}
					dest := d.play[to]
					if !dest.IsEmpty() {
						destTop := dest.At(dest.Count() - 1)
						if destTop.Rank() != topRank+1 {
							continue
						}
						if brokenLen > 0 {
							toSeq := dest.SequenceOf(topSuit)
							fromSeq := src.TopSequenceLength()
							if !(toSeq+brokenLen > fromSeq) {
								continue
							}
						}
						out = append(out, move.Regular(from, to, index))
						continue
					}

					// empty destination
					if emptyUsed && nextTalon == -1 {
						continue
					}
					if nextTalon == -1 {
						if index == 0 {
							continue
						}
						if brokenLen > 0 {
							continue
						}
					}
					out = append(out, move.Regular(from, to, index))
					emptyUsed = true
				}
			}
		}
	}

	if !oneIsEmpty && nextTalon != -1 {
		out = append(out, move.FromTalon(nextTalon))
	}

	return out
}

package deckfile

import "errors"

// ErrInvalidDeck is returned when a deck text file does not contain the
// expected 16 lines in the expected order.
var ErrInvalidDeck = errors.New("deckfile: invalid deck")

package deck

import "errors"

// ErrCapacityExceeded is returned by ApplyMove when the move history is
// already at MaxMoves. It is a fatal condition for the caller.
var ErrCapacityExceeded = errors.New("deck: move history capacity exceeded")

// ErrLogicViolation is returned when a post-condition the caller should
// have guaranteed (e.g. a talon row not holding exactly ten cards) fails.
// Fatal: it signals a caller bug, not a recoverable runtime condition.
var ErrLogicViolation = errors.New("deck: logic violation")

package card

import "errors"

// ErrInvalidToken is wrapped by Parse when given malformed card text.
var ErrInvalidToken = errors.New("card: invalid token")

package band

import "errors"

// ErrInvalidBand reports band parameters that do not describe a usable
// bin range: reversed or negative edges, an upper edge beyond Nyquist,
// or a range that rounds to zero bins.
var ErrInvalidBand = errors.New("band: invalid frequency band")

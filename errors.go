package bloom

import "errors"

// ErrInvalidParameter reports a degenerate filter configuration: a zero
// expected item count, a false positive rate outside (0, 1), or an explicit
// bit or hash count of zero. Construction never proceeds past it.
var ErrInvalidParameter = errors.New("bloom: invalid parameter")

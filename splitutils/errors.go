package splitutils

import "github.com/pkg/errors"

// ErrNotForwardable is the error returned from forwarded stream operations when the
// underlying part does not offer the requested capability
var ErrNotForwardable error = errors.New("part's sub-object does not offer this capability")

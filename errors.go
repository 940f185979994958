package feedway

import (
	"errors"

	"github.com/feedway/feedway-go/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.

// ErrInvalidFilter is returned by FilterReactions when the request does not
// set exactly one of UserID, ActivityID or ReactionID. No request is made.
var ErrInvalidFilter = types.ErrInvalidFilter

// ErrNotFound is wrapped into failures when the backend reports no
// reaction for the given id.
var ErrNotFound = types.ErrNotFound

// IsNotFound reports whether err stems from a missing reaction.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

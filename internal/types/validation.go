package types

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrInvalidFilter is returned when a filter request does not set exactly
// one of the user_id / activity_id / reaction_id lookup keys.
var ErrInvalidFilter = errors.New("filter requires exactly one of UserID, ActivityID or ReactionID")

// ErrNotFound is returned when the backend reports no reaction for the
// given id.
var ErrNotFound = errors.New("reaction not found")

// ------------------------------
// Validation helpers
// ------------------------------

// ValidateKind checks the reaction kind tag is present.
func ValidateKind(kind string) error {
	if kind == "" {
		return fmt.Errorf("kind is required")
	}
	return nil
}

// ValidateIDPresent checks the given identifier is non-empty. Reaction ids
// are opaque to the SDK; format is the backend's concern.
func ValidateIDPresent(id, fieldName string) error {
	if id == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateActivityRef checks an activity reference resolves to an id.
func ValidateActivityRef(ref ActivityRef) error {
	if ref == nil || ref.ActivityRefID() == "" {
		return fmt.Errorf("activity reference is required")
	}
	return nil
}

// ValidateReactionRef checks a parent reaction reference resolves to an id.
func ValidateReactionRef(ref ReactionRef) error {
	if ref == nil || ref.ReactionRefID() == "" {
		return fmt.Errorf("parent reaction reference is required")
	}
	return nil
}

// ValidateFilter enforces the exactly-one lookup key rule before any
// network call is made.
func ValidateFilter(req FilterReactionsRequest) error {
	if field, _ := req.LookupField(); field == "" {
		return ErrInvalidFilter
	}
	return nil
}

// NormalizeTargetFeeds flattens mixed FeedID / Feed values into plain feed
// id strings, order preserved. Returns nil for a nil input so presence
// semantics survive into the request body.
func NormalizeTargetFeeds(feeds []TargetFeed) []string {
	if feeds == nil {
		return nil
	}
	return lo.Map(feeds, func(f TargetFeed, _ int) string { return f.TargetFeedID() })
}

package types

// ------------------------------
// Request Types
// ------------------------------

// AddReactionRequest holds parameters for a new reaction on an activity.
type AddReactionRequest struct {
	// Kind is a free-form tag such as "like" or "comment". Required.
	Kind string

	// Activity the reaction attaches to. Required.
	Activity ActivityRef

	// Data is an opaque payload stored verbatim with the reaction.
	Data map[string]any

	// ID optionally supplies a client-generated reaction id (see
	// feedway.NewReactionID). The backend assigns one when empty.
	ID string

	// UserID attributes the reaction; defaults server-side to the
	// authenticated user when empty.
	UserID string

	// TargetFeeds lists feeds that should also receive the activity this
	// reaction generates. Mixed FeedID / Feed values are accepted.
	TargetFeeds []TargetFeed

	// TargetFeedsExtraData is attached to the fanned-out activity. A non-nil
	// empty map is transmitted as {}, which is distinct from absent.
	TargetFeedsExtraData map[string]any
}

// AddChildReactionRequest holds parameters for a reaction on another
// reaction. Identical shape to AddReactionRequest except the reference.
type AddChildReactionRequest struct {
	Kind string

	// Parent reaction the child attaches to. Required.
	Parent ReactionRef

	Data                 map[string]any
	ID                   string
	UserID               string
	TargetFeeds          []TargetFeed
	TargetFeedsExtraData map[string]any
}

// UpdateReactionRequest replaces a reaction's data and, when TargetFeeds is
// non-nil, its fan-out list. Omitting TargetFeeds on a reaction that
// previously fanned out removes the fan-out server-side.
type UpdateReactionRequest struct {
	Data                 map[string]any
	TargetFeeds          []TargetFeed
	TargetFeedsExtraData map[string]any
}

// FilterReactionsRequest selects reactions by exactly one lookup key.
// Exactly one of UserID, ActivityID or ReactionID must be set; everything
// else narrows or pages the result.
type FilterReactionsRequest struct {
	UserID     string
	ActivityID string
	ReactionID string

	// Kind restricts results to one reaction kind; becomes a path segment.
	Kind string

	// Limit caps the page size; the SDK defaults it to 10 when zero.
	Limit int

	// Cursor bounds, interpreted and enforced entirely server-side.
	IDLT  string
	IDLTE string
	IDGT  string
	IDGTE string

	// WithActivityData asks the backend to include the looked-up activity
	// in the response (activity_id lookups only).
	WithActivityData bool

	// WithOwnChildren includes the calling user's child reactions in the
	// denormalized child summaries.
	WithOwnChildren bool
}

// LookupField returns the wire name of the lookup key that is set, or ""
// when the request does not satisfy the exactly-one rule.
func (r FilterReactionsRequest) LookupField() (field, value string) {
	set := 0
	if r.UserID != "" {
		set++
		field, value = "user_id", r.UserID
	}
	if r.ActivityID != "" {
		set++
		field, value = "activity_id", r.ActivityID
	}
	if r.ReactionID != "" {
		set++
		field, value = "reaction_id", r.ReactionID
	}
	if set != 1 {
		return "", ""
	}
	return field, value
}

// ListReactionsRequest pages through all reactions without a lookup key.
type ListReactionsRequest struct {
	Limit int

	IDLT  string
	IDLTE string
	IDGT  string
	IDGTE string
}

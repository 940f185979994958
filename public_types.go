package feedway

import "github.com/feedway/feedway-go/internal/types"

// Public type aliases so SDK consumers can import only the feedway package.
type (
	// Domain entities and references
	Reaction    = types.Reaction
	Activity    = types.Activity
	ActivityID  = types.ActivityID
	ActivityRef = types.ActivityRef
	ReactionID  = types.ReactionID
	ReactionRef = types.ReactionRef
	Feed        = types.Feed
	FeedID      = types.FeedID
	TargetFeed  = types.TargetFeed

	// Requests
	AddReactionRequest      = types.AddReactionRequest
	AddChildReactionRequest = types.AddChildReactionRequest
	UpdateReactionRequest   = types.UpdateReactionRequest
	FilterReactionsRequest  = types.FilterReactionsRequest
	ListReactionsRequest    = types.ListReactionsRequest

	// Responses
	FilterReactionsResponse = types.FilterReactionsResponse
	ListReactionsResponse   = types.ListReactionsResponse
)

// Errors re-exported in errors.go

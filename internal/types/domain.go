package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Reaction is an annotation (like, comment, ...) attached to an activity or,
// for child reactions, to another reaction. Instances are always produced by
// the backend; the SDK never caches or mutates them locally.
type Reaction struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	ActivityID string         `json:"activity_id,omitempty"`
	Parent     string         `json:"parent,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Data       map[string]any `json:"data,omitempty"`

	TargetFeeds []string `json:"target_feeds,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Denormalized child summaries, keyed by kind. Present only when the
	// backend enriches the reaction.
	LatestChildren map[string][]Reaction `json:"latest_children,omitempty"`
	ChildrenCounts map[string]int64      `json:"children_counts,omitempty"`
}

// ReactionRefID lets a fetched Reaction be passed wherever a parent
// reference is expected.
func (r Reaction) ReactionRefID() string { return r.ID }

// ------------------------------
// Reference types
// ------------------------------

// ActivityRef resolves to an activity id. Callers may pass a plain
// ActivityID or any richer value carrying one.
type ActivityRef interface {
	ActivityRefID() string
}

// ActivityID is a plain activity identifier.
type ActivityID string

func (a ActivityID) ActivityRefID() string { return string(a) }

// Activity identifies an item in a feed. Only the ID is consulted by the
// SDK; the remaining fields exist so callers can pass values decoded from
// feed responses directly.
type Activity struct {
	ID        string         `json:"id"`
	ForeignID string         `json:"foreign_id,omitempty"`
	Extra     map[string]any `json:"-"`
}

func (a Activity) ActivityRefID() string { return a.ID }

// ReactionRef resolves to a reaction id, used for parent references on
// child reactions.
type ReactionRef interface {
	ReactionRefID() string
}

// ReactionID is a plain reaction identifier.
type ReactionID string

func (r ReactionID) ReactionRefID() string { return string(r) }

// ------------------------------
// Target feeds
// ------------------------------

// TargetFeed identifies a feed that should also receive the activity a
// reaction generates (fan-out). Either a plain FeedID or a Feed value.
type TargetFeed interface {
	TargetFeedID() string
}

// FeedID is a flat feed identifier such as "notification:jane".
type FeedID string

func (f FeedID) TargetFeedID() string { return string(f) }

// Feed identifies a feed by slug and owner, e.g. {Slug: "timeline",
// UserID: "jane"} -> "timeline:jane".
type Feed struct {
	Slug   string `json:"slug"`
	UserID string `json:"user_id"`
}

func (f Feed) TargetFeedID() string { return f.Slug + ":" + f.UserID }

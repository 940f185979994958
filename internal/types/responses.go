package types

// ------------------------------
// Response Types
// ------------------------------

// FilterReactionsResponse wraps a filtered page of reactions.
type FilterReactionsResponse struct {
	Results []Reaction `json:"results"`

	// Next is the cursor for the following page; empty on the last page.
	Next string `json:"next,omitempty"`

	// Activity is the looked-up activity, present only when the request set
	// WithActivityData on an activity_id lookup.
	Activity map[string]any `json:"activity,omitempty"`
}

// ListReactionsResponse wraps an unfiltered page of reactions.
type ListReactionsResponse struct {
	Results []Reaction `json:"results"`
	Next    string     `json:"next,omitempty"`
}

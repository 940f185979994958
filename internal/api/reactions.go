package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/feedway/feedway-go/internal/types"
)

// Wire shapes for the reaction endpoints. Field names are fixed by the
// backend and must not change.

type reactionBody struct {
	ID                   string          `json:"id,omitempty"`
	Kind                 string          `json:"kind"`
	ActivityID           string          `json:"activity_id,omitempty"`
	Parent               string          `json:"parent,omitempty"`
	Data                 map[string]any  `json:"data,omitempty"`
	TargetFeeds          []string        `json:"target_feeds,omitempty"`
	UserID               string          `json:"user_id,omitempty"`
	TargetFeedsExtraData json.RawMessage `json:"target_feeds_extra_data,omitempty"`
}

type updateReactionBody struct {
	Data                 map[string]any  `json:"data,omitempty"`
	TargetFeeds          []string        `json:"target_feeds,omitempty"`
	TargetFeedsExtraData json.RawMessage `json:"target_feeds_extra_data,omitempty"`
}

// extraDataRaw pre-marshals the extra-data map so presence survives: a nil
// map yields nil (field omitted), a non-nil empty map yields "{}".
func extraDataRaw(m map[string]any) (json.RawMessage, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// AddReaction creates a reaction of the given kind on an activity.
func AddReaction(ctx context.Context, c *Caller, req types.AddReactionRequest) (*types.Reaction, error) {
	if err := types.ValidateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := types.ValidateActivityRef(req.Activity); err != nil {
		return nil, err
	}
	extra, err := extraDataRaw(req.TargetFeedsExtraData)
	if err != nil {
		return nil, err
	}
	body := reactionBody{
		ID:                   req.ID,
		Kind:                 req.Kind,
		ActivityID:           req.Activity.ActivityRefID(),
		Data:                 req.Data,
		TargetFeeds:          types.NormalizeTargetFeeds(req.TargetFeeds),
		UserID:               req.UserID,
		TargetFeedsExtraData: extra,
	}
	var reaction types.Reaction
	u := fmt.Sprintf("%s/reaction/", c.BaseURL)
	if err := c.doJSON(ctx, "add reaction", http.MethodPost, u, body, http.StatusCreated, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

// AddChildReaction creates a reaction attached to a parent reaction.
func AddChildReaction(ctx context.Context, c *Caller, req types.AddChildReactionRequest) (*types.Reaction, error) {
	if err := types.ValidateKind(req.Kind); err != nil {
		return nil, err
	}
	if err := types.ValidateReactionRef(req.Parent); err != nil {
		return nil, err
	}
	extra, err := extraDataRaw(req.TargetFeedsExtraData)
	if err != nil {
		return nil, err
	}
	body := reactionBody{
		ID:                   req.ID,
		Kind:                 req.Kind,
		Parent:               req.Parent.ReactionRefID(),
		Data:                 req.Data,
		TargetFeeds:          types.NormalizeTargetFeeds(req.TargetFeeds),
		UserID:               req.UserID,
		TargetFeedsExtraData: extra,
	}
	var reaction types.Reaction
	u := fmt.Sprintf("%s/reaction/", c.BaseURL)
	if err := c.doJSON(ctx, "add child reaction", http.MethodPost, u, body, http.StatusCreated, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

// GetReaction fetches a single reaction by id.
func GetReaction(ctx context.Context, c *Caller, id string) (*types.Reaction, error) {
	if err := types.ValidateIDPresent(id, "reaction id"); err != nil {
		return nil, err
	}
	var reaction types.Reaction
	u := fmt.Sprintf("%s/reaction/%s/", c.BaseURL, url.PathEscape(id))
	if err := c.doJSON(ctx, "get reaction", http.MethodGet, u, nil, http.StatusOK, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

// FilterReactions retrieves reactions selected by exactly one lookup key
// (user_id, activity_id or reaction_id), optionally narrowed by kind. The
// lookup becomes path segments; everything else travels as query
// parameters. Limit defaults to 10 when the caller leaves it unset.
func FilterReactions(ctx context.Context, c *Caller, req types.FilterReactionsRequest) (*types.FilterReactionsResponse, error) {
	if err := types.ValidateFilter(req); err != nil {
		return nil, err
	}
	field, value := req.LookupField()

	u := fmt.Sprintf("%s/reaction/%s/%s/", c.BaseURL, field, url.PathEscape(value))
	if req.Kind != "" {
		u = fmt.Sprintf("%s/reaction/%s/%s/%s/", c.BaseURL, field, url.PathEscape(value), url.PathEscape(req.Kind))
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	setCursorParams(q, req.IDLT, req.IDLTE, req.IDGT, req.IDGTE)
	if req.WithActivityData {
		q.Set("with_activity_data", "true")
	}
	if req.WithOwnChildren {
		q.Set("with_own_children", "true")
	}

	var page types.FilterReactionsResponse
	if err := c.doJSON(ctx, "filter reactions", http.MethodGet, u+"?"+q.Encode(), nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateReaction replaces a reaction's data and, when target feeds are
// supplied, its fan-out list. Omitting target feeds on a reaction that
// previously fanned out removes the fan-out server-side.
func UpdateReaction(ctx context.Context, c *Caller, id string, req types.UpdateReactionRequest) (*types.Reaction, error) {
	if err := types.ValidateIDPresent(id, "reaction id"); err != nil {
		return nil, err
	}
	extra, err := extraDataRaw(req.TargetFeedsExtraData)
	if err != nil {
		return nil, err
	}
	body := updateReactionBody{
		Data:                 req.Data,
		TargetFeeds:          types.NormalizeTargetFeeds(req.TargetFeeds),
		TargetFeedsExtraData: extra,
	}
	var reaction types.Reaction
	u := fmt.Sprintf("%s/reaction/%s/", c.BaseURL, url.PathEscape(id))
	if err := c.doJSON(ctx, "update reaction", http.MethodPut, u, body, http.StatusOK, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

// DeleteReaction removes a reaction by id. Backend returns 204 No Content
// on success.
func DeleteReaction(ctx context.Context, c *Caller, id string) error {
	if err := types.ValidateIDPresent(id, "reaction id"); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/reaction/%s/", c.BaseURL, url.PathEscape(id))
	return c.doJSON(ctx, "delete reaction", http.MethodDelete, u, nil, http.StatusNoContent, nil)
}

// ListReactions pages through all reactions without a lookup key. Options
// pass through verbatim; no limit is injected when the caller leaves it
// unset.
func ListReactions(ctx context.Context, c *Caller, req types.ListReactionsRequest) (*types.ListReactionsResponse, error) {
	q := url.Values{}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	setCursorParams(q, req.IDLT, req.IDLTE, req.IDGT, req.IDGTE)

	u := fmt.Sprintf("%s/reaction/", c.BaseURL)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var page types.ListReactionsResponse
	if err := c.doJSON(ctx, "list reactions", http.MethodGet, u, nil, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// setCursorParams forwards the id-based pagination bounds; they are
// interpreted and enforced entirely server-side.
func setCursorParams(q url.Values, idLT, idLTE, idGT, idGTE string) {
	if idLT != "" {
		q.Set("id_lt", idLT)
	}
	if idLTE != "" {
		q.Set("id_lte", idLTE)
	}
	if idGT != "" {
		q.Set("id_gt", idGT)
	}
	if idGTE != "" {
		q.Set("id_gte", idGTE)
	}
}

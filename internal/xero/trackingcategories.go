package xero

import (
	"context"
	"net/http"
	"net/url"
)

// Tracking category statuses.
const (
	TrackingCategoryStatusActive   = "ACTIVE"
	TrackingCategoryStatusArchived = "ARCHIVED"
)

// TrackingOption is one selectable value within a tracking category.
type TrackingOption struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type wireTrackingOption struct {
	TrackingOptionID *string `json:"TrackingOptionID,omitempty"`
	Name             *string `json:"Name,omitempty"`
	Status           *string `json:"Status,omitempty"`
}

func trackingOptionFromWire(w wireTrackingOption) TrackingOption {
	return TrackingOption{
		ID:     deref(w.TrackingOptionID),
		Name:   deref(w.Name),
		Status: deref(w.Status),
	}
}

// TrackingCategory is a reporting dimension (for example region or
// department) with its options.
type TrackingCategory struct {
	ID      string           `json:"id"`
	Name    string           `json:"name,omitempty"`
	Status  string           `json:"status,omitempty"`
	Options []TrackingOption `json:"options,omitempty"`
}

type wireTrackingCategory struct {
	TrackingCategoryID *string              `json:"TrackingCategoryID,omitempty"`
	Name               *string              `json:"Name,omitempty"`
	Status             *string              `json:"Status,omitempty"`
	Options            []wireTrackingOption `json:"Options,omitempty"`
}

func trackingCategoryFromWire(w wireTrackingCategory) TrackingCategory {
	return TrackingCategory{
		ID:      deref(w.TrackingCategoryID),
		Name:    deref(w.Name),
		Status:  deref(w.Status),
		Options: mapSlice(w.Options, trackingOptionFromWire),
	}
}

type trackingCategoriesEnvelope struct {
	TrackingCategories []wireTrackingCategory `json:"TrackingCategories"`
}

type trackingOptionsEnvelope struct {
	Options []wireTrackingOption `json:"Options"`
}

// ListTrackingCategories returns the full collection; the endpoint is
// not paginated.
func (c *Client) ListTrackingCategories(ctx context.Context, opt ListOptions) ([]TrackingCategory, error) {
	var env trackingCategoriesEnvelope
	if err := c.do(ctx, http.MethodGet, "/TrackingCategories", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.TrackingCategories, trackingCategoryFromWire), nil
}

// GetTrackingCategory fetches a single category by identifier.
func (c *Client) GetTrackingCategory(ctx context.Context, id string) (TrackingCategory, error) {
	var env trackingCategoriesEnvelope
	if err := c.do(ctx, http.MethodGet, "/TrackingCategories/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return TrackingCategory{}, err
	}
	w, err := firstOf(env.TrackingCategories, "tracking category", id)
	if err != nil {
		return TrackingCategory{}, err
	}
	return trackingCategoryFromWire(w), nil
}

// CreateTrackingCategory adds a category. Xero creates via PUT here.
func (c *Client) CreateTrackingCategory(ctx context.Context, name string) (TrackingCategory, error) {
	body := wireTrackingCategory{Name: &name}
	var env trackingCategoriesEnvelope
	if err := c.do(ctx, http.MethodPut, "/TrackingCategories", nil, body, &env); err != nil {
		return TrackingCategory{}, err
	}
	w, err := firstOf(env.TrackingCategories, "tracking category", name)
	if err != nil {
		return TrackingCategory{}, err
	}
	return trackingCategoryFromWire(w), nil
}

// UpdateTrackingCategory renames a category.
func (c *Client) UpdateTrackingCategory(ctx context.Context, id, name string) (TrackingCategory, error) {
	body := wireTrackingCategory{Name: &name}
	var env trackingCategoriesEnvelope
	if err := c.do(ctx, http.MethodPost, "/TrackingCategories/"+url.PathEscape(id), nil, body, &env); err != nil {
		return TrackingCategory{}, err
	}
	w, err := firstOf(env.TrackingCategories, "tracking category", id)
	if err != nil {
		return TrackingCategory{}, err
	}
	return trackingCategoryFromWire(w), nil
}

// DeleteTrackingCategory removes a category. True HTTP deletion.
func (c *Client) DeleteTrackingCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/TrackingCategories/"+url.PathEscape(id), nil, nil, nil)
}

// CreateTrackingOption adds an option to a category via the nested
// collection endpoint.
func (c *Client) CreateTrackingOption(ctx context.Context, categoryID, name string) (TrackingOption, error) {
	body := wireTrackingOption{Name: &name}
	path := "/TrackingCategories/" + url.PathEscape(categoryID) + "/Options"
	var env trackingOptionsEnvelope
	if err := c.do(ctx, http.MethodPut, path, nil, body, &env); err != nil {
		return TrackingOption{}, err
	}
	w, err := firstOf(env.Options, "tracking option", name)
	if err != nil {
		return TrackingOption{}, err
	}
	return trackingOptionFromWire(w), nil
}

// UpdateTrackingOption renames an option.
func (c *Client) UpdateTrackingOption(ctx context.Context, categoryID, optionID, name string) (TrackingOption, error) {
	body := wireTrackingOption{Name: &name}
	path := "/TrackingCategories/" + url.PathEscape(categoryID) + "/Options/" + url.PathEscape(optionID)
	var env trackingOptionsEnvelope
	if err := c.do(ctx, http.MethodPost, path, nil, body, &env); err != nil {
		return TrackingOption{}, err
	}
	w, err := firstOf(env.Options, "tracking option", optionID)
	if err != nil {
		return TrackingOption{}, err
	}
	return trackingOptionFromWire(w), nil
}

// DeleteTrackingOption removes an option. True HTTP deletion.
func (c *Client) DeleteTrackingOption(ctx context.Context, categoryID, optionID string) error {
	path := "/TrackingCategories/" + url.PathEscape(categoryID) + "/Options/" + url.PathEscape(optionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

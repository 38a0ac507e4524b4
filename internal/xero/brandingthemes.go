package xero

import (
	"context"
	"net/http"
)

// BrandingTheme is an invoice/quote template. Read-only; themes are
// managed in the Xero UI.
type BrandingTheme struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	SortOrder      int    `json:"sortOrder,omitempty"`
	CreatedDateUTC string `json:"createdDateUtc,omitempty"`
}

type wireBrandingTheme struct {
	BrandingThemeID *string `json:"BrandingThemeID,omitempty"`
	Name            *string `json:"Name,omitempty"`
	SortOrder       *int    `json:"SortOrder,omitempty"`
	CreatedDateUTC  *string `json:"CreatedDateUTC,omitempty"`
}

func brandingThemeFromWire(w wireBrandingTheme) BrandingTheme {
	t := BrandingTheme{
		ID:             deref(w.BrandingThemeID),
		Name:           deref(w.Name),
		CreatedDateUTC: deref(w.CreatedDateUTC),
	}
	if w.SortOrder != nil {
		t.SortOrder = *w.SortOrder
	}
	return t
}

type brandingThemesEnvelope struct {
	BrandingThemes []wireBrandingTheme `json:"BrandingThemes"`
}

// ListBrandingThemes returns the full theme collection.
func (c *Client) ListBrandingThemes(ctx context.Context) ([]BrandingTheme, error) {
	var env brandingThemesEnvelope
	if err := c.do(ctx, http.MethodGet, "/BrandingThemes", nil, nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.BrandingThemes, brandingThemeFromWire), nil
}

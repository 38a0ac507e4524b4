package xero

import (
	"net/url"
	"strconv"
)

// pageSize is the remote page-size ceiling for paginated collections.
const pageSize = 100

// ListOptions narrows paginated list calls. Where and Order use Xero's
// filter and sort expression syntax verbatim; Page is 1-based.
type ListOptions struct {
	Where string
	Order string
	Page  int
}

// values renders the options as query parameters, omitting empties.
func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Where != "" {
		q.Set("where", o.Where)
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	return q
}

// page returns the requested page number, normalized to 1.
func (o ListOptions) page() int {
	if o.Page > 0 {
		return o.Page
	}
	return 1
}

// Page is one page of a paginated collection. HasMore is a heuristic,
// not a cursor: a full page may still be the last one, so it means
// "maybe more", never "exactly N more".
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	HasMore bool `json:"hasMore"`
}

func newPage[T any](items []T, pageNum int) Page[T] {
	return Page[T]{
		Items:   items,
		Page:    pageNum,
		HasMore: len(items) >= pageSize,
	}
}

// mapSlice applies an element mapper in order.
func mapSlice[W, D any](in []W, f func(W) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, 0, len(in))
	for _, w := range in {
		out = append(out, f(w))
	}
	return out
}

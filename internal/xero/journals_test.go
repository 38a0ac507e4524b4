package xero

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestListJournalsOffsetPaging(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"Journals":[{
			"JournalID": "jrn-1",
			"JournalNumber": 43,
			"SourceType": "ACCREC",
			"JournalLines": [
				{"JournalLineID": "jl-1", "AccountCode": "200", "NetAmount": 100},
				{"JournalLineID": "jl-2", "AccountCode": "610", "NetAmount": -100}
			]
		}, {
			"JournalID": "jrn-2",
			"JournalNumber": 45
		}]}`))
	}))

	page, err := c.ListJournals(context.Background(), JournalListOptions{
		Offset:       42,
		PaymentsOnly: true,
	})
	if err != nil {
		t.Fatalf("ListJournals() error = %v", err)
	}

	if got := query["offset"]; len(got) != 1 || got[0] != "42" {
		t.Errorf("query[offset] = %v, want 42", got)
	}
	if got := query["paymentsOnly"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("query[paymentsOnly] = %v, want true", got)
	}

	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	j := page.Items[0]
	if j.Number != 43 {
		t.Errorf("Number = %d, want 43", j.Number)
	}
	if len(j.JournalLines) != 2 {
		t.Errorf("len(JournalLines) = %d, want 2", len(j.JournalLines))
	}
	if page.NextOffset != 45 {
		t.Errorf("NextOffset = %d, want the highest journal number 45", page.NextOffset)
	}
	if page.HasMore {
		t.Error("HasMore = true, want false for a short batch")
	}
}

func TestListJournalsFullBatchHasMore(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := make([]string, pageSize)
		for i := range items {
			items[i] = fmt.Sprintf(`{"JournalID":"jrn-%d","JournalNumber":%d}`, i, i+1)
		}
		fmt.Fprintf(w, `{"Journals":[%s]}`, strings.Join(items, ","))
	}))

	page, err := c.ListJournals(context.Background(), JournalListOptions{})
	if err != nil {
		t.Fatalf("ListJournals() error = %v", err)
	}

	if !page.HasMore {
		t.Error("HasMore = false, want true for a full batch")
	}
	if page.NextOffset != pageSize {
		t.Errorf("NextOffset = %d, want %d", page.NextOffset, pageSize)
	}
}

func TestListJournalsEmptyBatchEchoesOffset(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"Journals":[]}`))
	}))

	page, err := c.ListJournals(context.Background(), JournalListOptions{Offset: 99})
	if err != nil {
		t.Fatalf("ListJournals() error = %v", err)
	}

	if got := query["offset"]; len(got) != 1 || got[0] != "99" {
		t.Errorf("query[offset] = %v, want 99", got)
	}
	if page.NextOffset != 99 {
		t.Errorf("NextOffset = %d, want the requested offset 99", page.NextOffset)
	}
	if page.HasMore {
		t.Error("HasMore = true, want false")
	}
}

func TestListJournalsOmitsUnsetOffset(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"Journals":[]}`))
	}))

	if _, err := c.ListJournals(context.Background(), JournalListOptions{}); err != nil {
		t.Fatalf("ListJournals() error = %v", err)
	}
	if len(query) != 0 {
		t.Errorf("query = %v, want none", query)
	}
}

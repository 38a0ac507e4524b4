package xero

import (
	"context"
	"net/http"
	"net/url"
)

// Contact group statuses.
const (
	ContactGroupStatusActive  = "ACTIVE"
	ContactGroupStatusDeleted = "DELETED"
)

// ContactGroup is a named collection of contacts.
type ContactGroup struct {
	ID       string       `json:"id"`
	Name     string       `json:"name,omitempty"`
	Status   string       `json:"status,omitempty"`
	Contacts []ContactRef `json:"contacts,omitempty"`
}

type wireContactGroup struct {
	ContactGroupID *string          `json:"ContactGroupID,omitempty"`
	Name           *string          `json:"Name,omitempty"`
	Status         *string          `json:"Status,omitempty"`
	Contacts       []wireContactRef `json:"Contacts,omitempty"`
}

func contactGroupFromWire(w wireContactGroup) ContactGroup {
	return ContactGroup{
		ID:       deref(w.ContactGroupID),
		Name:     deref(w.Name),
		Status:   deref(w.Status),
		Contacts: contactRefsFromWire(w.Contacts),
	}
}

func contactRefsFromWire(ws []wireContactRef) []ContactRef {
	refs := make([]ContactRef, 0, len(ws))
	for i := range ws {
		if r := contactRefFromWire(&ws[i]); r != nil {
			refs = append(refs, *r)
		}
	}
	return refs
}

type contactGroupsEnvelope struct {
	ContactGroups []wireContactGroup `json:"ContactGroups"`
}

// ListContactGroups returns the full collection; the endpoint is not
// paginated.
func (c *Client) ListContactGroups(ctx context.Context, opt ListOptions) ([]ContactGroup, error) {
	var env contactGroupsEnvelope
	if err := c.do(ctx, http.MethodGet, "/ContactGroups", opt.values(), nil, &env); err != nil {
		return nil, err
	}
	return mapSlice(env.ContactGroups, contactGroupFromWire), nil
}

// GetContactGroup fetches a single group, including its member contacts.
func (c *Client) GetContactGroup(ctx context.Context, id string) (ContactGroup, error) {
	var env contactGroupsEnvelope
	if err := c.do(ctx, http.MethodGet, "/ContactGroups/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return ContactGroup{}, err
	}
	w, err := firstOf(env.ContactGroups, "contact group", id)
	if err != nil {
		return ContactGroup{}, err
	}
	return contactGroupFromWire(w), nil
}

// CreateContactGroup adds a group. Xero creates via PUT here.
func (c *Client) CreateContactGroup(ctx context.Context, name string) (ContactGroup, error) {
	body := wireContactGroup{Name: &name}
	var env contactGroupsEnvelope
	if err := c.do(ctx, http.MethodPut, "/ContactGroups", nil, body, &env); err != nil {
		return ContactGroup{}, err
	}
	w, err := firstOf(env.ContactGroups, "contact group", name)
	if err != nil {
		return ContactGroup{}, err
	}
	return contactGroupFromWire(w), nil
}

// UpdateContactGroup renames a group or changes its status. Setting the
// status to DELETED removes the group.
func (c *Client) UpdateContactGroup(ctx context.Context, id string, name, status *string) (ContactGroup, error) {
	body := wireContactGroup{Name: name, Status: status}
	var env contactGroupsEnvelope
	if err := c.do(ctx, http.MethodPost, "/ContactGroups/"+url.PathEscape(id), nil, body, &env); err != nil {
		return ContactGroup{}, err
	}
	w, err := firstOf(env.ContactGroups, "contact group", id)
	if err != nil {
		return ContactGroup{}, err
	}
	return contactGroupFromWire(w), nil
}

// AddContactsToGroup adds contacts to a group by identifier via the
// nested collection endpoint.
func (c *Client) AddContactsToGroup(ctx context.Context, groupID string, contactIDs []string) ([]ContactRef, error) {
	refs := make([]wireContactRef, len(contactIDs))
	for i, id := range contactIDs {
		refs[i] = wireContactRef{ContactID: ptr(id)}
	}
	body := struct {
		Contacts []wireContactRef `json:"Contacts"`
	}{Contacts: refs}
	path := "/ContactGroups/" + url.PathEscape(groupID) + "/Contacts"
	var env struct {
		Contacts []wireContactRef `json:"Contacts"`
	}
	if err := c.do(ctx, http.MethodPut, path, nil, body, &env); err != nil {
		return nil, err
	}
	return contactRefsFromWire(env.Contacts), nil
}

// RemoveContactFromGroup removes one contact from a group. True HTTP
// deletion.
func (c *Client) RemoveContactFromGroup(ctx context.Context, groupID, contactID string) error {
	path := "/ContactGroups/" + url.PathEscape(groupID) + "/Contacts/" + url.PathEscape(contactID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

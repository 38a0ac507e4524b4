package tools

import (
	"context"

	"github.com/tallyops/xero-mcp/internal/xero"
)

type listContactsArgs struct {
	listArgs
	SummaryOnly bool `json:"summaryOnly,omitempty" jsonschema:"Omit addresses and phones for faster listing"`
}

type phoneArgs struct {
	Type        *string `json:"type,omitempty" jsonschema:"DEFAULT, DDI, MOBILE or FAX"`
	Number      *string `json:"number,omitempty" jsonschema:"Phone number"`
	AreaCode    *string `json:"areaCode,omitempty" jsonschema:"Area code"`
	CountryCode *string `json:"countryCode,omitempty" jsonschema:"Country dialing code"`
}

type addressArgs struct {
	Type        *string `json:"type,omitempty" jsonschema:"POBOX or STREET"`
	Line1       *string `json:"line1,omitempty" jsonschema:"Address line 1"`
	Line2       *string `json:"line2,omitempty" jsonschema:"Address line 2"`
	City        *string `json:"city,omitempty" jsonschema:"City"`
	Region      *string `json:"region,omitempty" jsonschema:"Region or state"`
	PostalCode  *string `json:"postalCode,omitempty" jsonschema:"Postal code"`
	Country     *string `json:"country,omitempty" jsonschema:"Country"`
	AttentionTo *string `json:"attentionTo,omitempty" jsonschema:"Attention-to line"`
}

type contactArgs struct {
	Name                      *string       `json:"name,omitempty" jsonschema:"Contact name, unique within the tenant"`
	FirstName                 *string       `json:"firstName,omitempty" jsonschema:"Primary person's first name"`
	LastName                  *string       `json:"lastName,omitempty" jsonschema:"Primary person's last name"`
	EmailAddress              *string       `json:"emailAddress,omitempty" jsonschema:"Email address"`
	AccountNumber             *string       `json:"accountNumber,omitempty" jsonschema:"External account number"`
	TaxNumber                 *string       `json:"taxNumber,omitempty" jsonschema:"Tax registration number"`
	DefaultCurrency           *string       `json:"defaultCurrency,omitempty" jsonschema:"ISO currency code for new documents"`
	AccountsReceivableTaxType *string       `json:"accountsReceivableTaxType,omitempty" jsonschema:"Default tax type for sales"`
	AccountsPayableTaxType    *string       `json:"accountsPayableTaxType,omitempty" jsonschema:"Default tax type for purchases"`
	Phones                    []phoneArgs   `json:"phones,omitempty" jsonschema:"Phone entries"`
	Addresses                 []addressArgs `json:"addresses,omitempty" jsonschema:"Address entries"`
}

func (a contactArgs) input() xero.ContactInput {
	in := xero.ContactInput{
		Name:                      a.Name,
		FirstName:                 a.FirstName,
		LastName:                  a.LastName,
		EmailAddress:              a.EmailAddress,
		AccountNumber:             a.AccountNumber,
		TaxNumber:                 a.TaxNumber,
		DefaultCurrency:           a.DefaultCurrency,
		AccountsReceivableTaxType: a.AccountsReceivableTaxType,
		AccountsPayableTaxType:    a.AccountsPayableTaxType,
	}
	for _, p := range a.Phones {
		in.Phones = append(in.Phones, xero.PhoneInput{
			Type:        p.Type,
			Number:      p.Number,
			AreaCode:    p.AreaCode,
			CountryCode: p.CountryCode,
		})
	}
	for _, addr := range a.Addresses {
		in.Addresses = append(in.Addresses, xero.AddressInput{
			Type:        addr.Type,
			Line1:       addr.Line1,
			Line2:       addr.Line2,
			City:        addr.City,
			Region:      addr.Region,
			PostalCode:  addr.PostalCode,
			Country:     addr.Country,
			AttentionTo: addr.AttentionTo,
		})
	}
	return in
}

type updateContactArgs struct {
	ID string `json:"id" jsonschema:"Contact identifier (UUID)"`
	contactArgs
}

type updateContactGroupArgs struct {
	ID     string  `json:"id" jsonschema:"Contact group identifier (UUID)"`
	Name   *string `json:"name,omitempty" jsonschema:"New group name"`
	Status *string `json:"status,omitempty" jsonschema:"Set to DELETED to remove the group"`
}

type groupContactsArgs struct {
	GroupID    string   `json:"groupId" jsonschema:"Contact group identifier (UUID)"`
	ContactIDs []string `json:"contactIds" jsonschema:"Contact identifiers to add (UUIDs)"`
}

type removeGroupContactArgs struct {
	GroupID   string `json:"groupId" jsonschema:"Contact group identifier (UUID)"`
	ContactID string `json:"contactId" jsonschema:"Contact identifier to remove (UUID)"`
}

type nameArgs struct {
	Name string `json:"name" jsonschema:"Name for the new record"`
}

func (r *Registry) registerContacts() {
	add(r, "list-contacts", "List customers and suppliers, one page at a time.",
		func(ctx context.Context, c *xero.Client, in listContactsArgs) (any, error) {
			return c.ListContacts(ctx, xero.ContactListOptions{ListOptions: in.options(), SummaryOnly: in.SummaryOnly})
		})

	add(r, "get-contact", "Fetch one contact by identifier, addresses and phones included.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetContact(ctx, in.ID)
		})

	add(r, "create-contact", "Create a contact. Name is required and must be unique within the tenant.",
		func(ctx context.Context, c *xero.Client, in contactArgs) (any, error) {
			return c.CreateContact(ctx, in.input())
		})

	add(r, "update-contact", "Update a contact. Only the fields provided change; omitted fields keep their stored value.",
		func(ctx context.Context, c *xero.Client, in updateContactArgs) (any, error) {
			return c.UpdateContact(ctx, in.ID, in.input())
		})

	add(r, "archive-contact", "Archive a contact. Archived contacts are hidden from pickers but keep their history.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.ArchiveContact(ctx, in.ID)
		})

	add(r, "list-contact-groups", "List contact groups.",
		func(ctx context.Context, c *xero.Client, in listArgs) (any, error) {
			return c.ListContactGroups(ctx, in.options())
		})

	add(r, "get-contact-group", "Fetch one contact group with its member contacts.",
		func(ctx context.Context, c *xero.Client, in idArgs) (any, error) {
			return c.GetContactGroup(ctx, in.ID)
		})

	add(r, "create-contact-group", "Create an empty contact group.",
		func(ctx context.Context, c *xero.Client, in nameArgs) (any, error) {
			return c.CreateContactGroup(ctx, in.Name)
		})

	add(r, "update-contact-group", "Rename a contact group, or set status DELETED to remove it.",
		func(ctx context.Context, c *xero.Client, in updateContactGroupArgs) (any, error) {
			return c.UpdateContactGroup(ctx, in.ID, in.Name, in.Status)
		})

	add(r, "add-contacts-to-group", "Add contacts to a group by identifier.",
		func(ctx context.Context, c *xero.Client, in groupContactsArgs) (any, error) {
			return c.AddContactsToGroup(ctx, in.GroupID, in.ContactIDs)
		})

	add(r, "remove-contact-from-group", "Remove one contact from a group.",
		func(ctx context.Context, c *xero.Client, in removeGroupContactArgs) (any, error) {
			if err := c.RemoveContactFromGroup(ctx, in.GroupID, in.ContactID); err != nil {
				return nil, err
			}
			return map[string]string{"status": "removed"}, nil
		})
}

package xero

import (
	"context"
	"net/http"
	"net/url"
)

// Contact statuses.
const (
	ContactStatusActive   = "ACTIVE"
	ContactStatusArchived = "ARCHIVED"
)

// Phone is one of a contact's phone entries.
type Phone struct {
	Type        string `json:"type,omitempty"`
	Number      string `json:"number,omitempty"`
	AreaCode    string `json:"areaCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type wirePhone struct {
	PhoneType        *string `json:"PhoneType,omitempty"`
	PhoneNumber      *string `json:"PhoneNumber,omitempty"`
	PhoneAreaCode    *string `json:"PhoneAreaCode,omitempty"`
	PhoneCountryCode *string `json:"PhoneCountryCode,omitempty"`
}

func phoneFromWire(w wirePhone) Phone {
	return Phone{
		Type:        deref(w.PhoneType),
		Number:      deref(w.PhoneNumber),
		AreaCode:    deref(w.PhoneAreaCode),
		CountryCode: deref(w.PhoneCountryCode),
	}
}

// PhoneInput is the sparse write shape for a phone entry.
type PhoneInput struct {
	Type        *string `json:"type,omitempty"`
	Number      *string `json:"number,omitempty"`
	AreaCode    *string `json:"areaCode,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
}

func (in PhoneInput) toWire() wirePhone {
	return wirePhone{
		PhoneType:        in.Type,
		PhoneNumber:      in.Number,
		PhoneAreaCode:    in.AreaCode,
		PhoneCountryCode: in.CountryCode,
	}
}

// Address is one of a contact's address entries.
type Address struct {
	Type        string `json:"type,omitempty"`
	Line1       string `json:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
	AttentionTo string `json:"attentionTo,omitempty"`
}

type wireAddress struct {
	AddressType  *string `json:"AddressType,omitempty"`
	AddressLine1 *string `json:"AddressLine1,omitempty"`
	AddressLine2 *string `json:"AddressLine2,omitempty"`
	City         *string `json:"City,omitempty"`
	Region       *string `json:"Region,omitempty"`
	PostalCode   *string `json:"PostalCode,omitempty"`
	Country      *string `json:"Country,omitempty"`
	AttentionTo  *string `json:"AttentionTo,omitempty"`
}

func addressFromWire(w wireAddress) Address {
	return Address{
		Type:        deref(w.AddressType),
		Line1:       deref(w.AddressLine1),
		Line2:       deref(w.AddressLine2),
		City:        deref(w.City),
		Region:      deref(w.Region),
		PostalCode:  deref(w.PostalCode),
		Country:     deref(w.Country),
		AttentionTo: deref(w.AttentionTo),
	}
}

// AddressInput is the sparse write shape for an address entry.
type AddressInput struct {
	Type        *string `json:"type,omitempty"`
	Line1       *string `json:"line1,omitempty"`
	Line2       *string `json:"line2,omitempty"`
	City        *string `json:"city,omitempty"`
	Region      *string `json:"region,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty"`
	Country     *string `json:"country,omitempty"`
	AttentionTo *string `json:"attentionTo,omitempty"`
}

func (in AddressInput) toWire() wireAddress {
	return wireAddress{
		AddressType:  in.Type,
		AddressLine1: in.Line1,
		AddressLine2: in.Line2,
		City:         in.City,
		Region:       in.Region,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		AttentionTo:  in.AttentionTo,
	}
}

// Contact is a customer or supplier. IsCustomer/IsSupplier are derived
// remotely from transaction history and read-only.
type Contact struct {
	ID                        string    `json:"id"`
	Name                      string    `json:"name,omitempty"`
	FirstName                 string    `json:"firstName,omitempty"`
	LastName                  string    `json:"lastName,omitempty"`
	EmailAddress              string    `json:"emailAddress,omitempty"`
	AccountNumber             string    `json:"accountNumber,omitempty"`
	TaxNumber                 string    `json:"taxNumber,omitempty"`
	Status                    string    `json:"status,omitempty"`
	IsCustomer                *bool     `json:"isCustomer,omitempty"`
	IsSupplier                *bool     `json:"isSupplier,omitempty"`
	DefaultCurrency           string    `json:"defaultCurrency,omitempty"`
	AccountsReceivableTaxType string    `json:"accountsReceivableTaxType,omitempty"`
	AccountsPayableTaxType    string    `json:"accountsPayableTaxType,omitempty"`
	Phones                    []Phone   `json:"phones,omitempty"`
	Addresses                 []Address `json:"addresses,omitempty"`
	UpdatedDateUTC            string    `json:"updatedDateUtc,omitempty"`
}

type wireContact struct {
	ContactID                 *string       `json:"ContactID,omitempty"`
	Name                      *string       `json:"Name,omitempty"`
	FirstName                 *string       `json:"FirstName,omitempty"`
	LastName                  *string       `json:"LastName,omitempty"`
	EmailAddress              *string       `json:"EmailAddress,omitempty"`
	AccountNumber             *string       `json:"AccountNumber,omitempty"`
	TaxNumber                 *string       `json:"TaxNumber,omitempty"`
	ContactStatus             *string       `json:"ContactStatus,omitempty"`
	IsCustomer                *bool         `json:"IsCustomer,omitempty"`
	IsSupplier                *bool         `json:"IsSupplier,omitempty"`
	DefaultCurrency           *string       `json:"DefaultCurrency,omitempty"`
	AccountsReceivableTaxType *string       `json:"AccountsReceivableTaxType,omitempty"`
	AccountsPayableTaxType    *string       `json:"AccountsPayableTaxType,omitempty"`
	Phones                    []wirePhone   `json:"Phones,omitempty"`
	Addresses                 []wireAddress `json:"Addresses,omitempty"`
	UpdatedDateUTC            *string       `json:"UpdatedDateUTC,omitempty"`
}

func contactFromWire(w wireContact) Contact {
	return Contact{
		ID:                        deref(w.ContactID),
		Name:                      deref(w.Name),
		FirstName:                 deref(w.FirstName),
		LastName:                  deref(w.LastName),
		EmailAddress:              deref(w.EmailAddress),
		AccountNumber:             deref(w.AccountNumber),
		TaxNumber:                 deref(w.TaxNumber),
		Status:                    deref(w.ContactStatus),
		IsCustomer:                w.IsCustomer,
		IsSupplier:                w.IsSupplier,
		DefaultCurrency:           deref(w.DefaultCurrency),
		AccountsReceivableTaxType: deref(w.AccountsReceivableTaxType),
		AccountsPayableTaxType:    deref(w.AccountsPayableTaxType),
		Phones:                    mapSlice(w.Phones, phoneFromWire),
		Addresses:                 mapSlice(w.Addresses, addressFromWire),
		UpdatedDateUTC:            deref(w.UpdatedDateUTC),
	}
}

// ContactInput is the sparse write shape for contacts.
type ContactInput struct {
	Name                      *string        `json:"name,omitempty"`
	FirstName                 *string        `json:"firstName,omitempty"`
	LastName                  *string        `json:"lastName,omitempty"`
	EmailAddress              *string        `json:"emailAddress,omitempty"`
	AccountNumber             *string        `json:"accountNumber,omitempty"`
	TaxNumber                 *string        `json:"taxNumber,omitempty"`
	Status                    *string        `json:"status,omitempty"`
	DefaultCurrency           *string        `json:"defaultCurrency,omitempty"`
	AccountsReceivableTaxType *string        `json:"accountsReceivableTaxType,omitempty"`
	AccountsPayableTaxType    *string        `json:"accountsPayableTaxType,omitempty"`
	Phones                    []PhoneInput   `json:"phones,omitempty"`
	Addresses                 []AddressInput `json:"addresses,omitempty"`
}

func (in ContactInput) toWire() wireContact {
	w := wireContact{
		Name:                      in.Name,
		FirstName:                 in.FirstName,
		LastName:                  in.LastName,
		EmailAddress:              in.EmailAddress,
		AccountNumber:             in.AccountNumber,
		TaxNumber:                 in.TaxNumber,
		ContactStatus:             in.Status,
		DefaultCurrency:           in.DefaultCurrency,
		AccountsReceivableTaxType: in.AccountsReceivableTaxType,
		AccountsPayableTaxType:    in.AccountsPayableTaxType,
	}
	if in.Phones != nil {
		w.Phones = mapSlice(in.Phones, PhoneInput.toWire)
	}
	if in.Addresses != nil {
		w.Addresses = mapSlice(in.Addresses, AddressInput.toWire)
	}
	return w
}

type contactsEnvelope struct {
	Contacts []wireContact `json:"Contacts"`
}

// ContactListOptions extends ListOptions with contact-specific filters.
type ContactListOptions struct {
	ListOptions
	SummaryOnly bool
}

// ListContacts returns one page of contacts.
func (c *Client) ListContacts(ctx context.Context, opt ContactListOptions) (Page[Contact], error) {
	q := opt.values()
	if opt.SummaryOnly {
		q.Set("summaryOnly", "true")
	}
	var env contactsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Contacts", q, nil, &env); err != nil {
		return Page[Contact]{}, err
	}
	return newPage(mapSlice(env.Contacts, contactFromWire), opt.page()), nil
}

// GetContact fetches a single contact by identifier.
func (c *Client) GetContact(ctx context.Context, id string) (Contact, error) {
	var env contactsEnvelope
	if err := c.do(ctx, http.MethodGet, "/Contacts/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return Contact{}, err
	}
	w, err := firstOf(env.Contacts, "contact", id)
	if err != nil {
		return Contact{}, err
	}
	return contactFromWire(w), nil
}

// CreateContact submits a new contact.
func (c *Client) CreateContact(ctx context.Context, in ContactInput) (Contact, error) {
	var env contactsEnvelope
	if err := c.do(ctx, http.MethodPost, "/Contacts", nil, in.toWire(), &env); err != nil {
		return Contact{}, err
	}
	w, err := firstOf(env.Contacts, "contact", "")
	if err != nil {
		return Contact{}, err
	}
	return contactFromWire(w), nil
}

// UpdateContact applies a sparse update to an existing contact.
func (c *Client) UpdateContact(ctx context.Context, id string, in ContactInput) (Contact, error) {
	var env contactsEnvelope
	if err := c.do(ctx, http.MethodPost, "/Contacts/"+url.PathEscape(id), nil, in.toWire(), &env); err != nil {
		return Contact{}, err
	}
	w, err := firstOf(env.Contacts, "contact", id)
	if err != nil {
		return Contact{}, err
	}
	return contactFromWire(w), nil
}

// ArchiveContact requests the ARCHIVED transition.
func (c *Client) ArchiveContact(ctx context.Context, id string) (Contact, error) {
	return c.UpdateContact(ctx, id, ContactInput{Status: ptr(ContactStatusArchived)})
}

// Package tools exposes the Xero client as MCP tools.
//
// Every tool handler follows the same shape: resolve the request
// credentials from context, build a per-call client, run one client
// operation, and render the result as JSON text. Domain failures
// (missing credentials, auth, rate limits, API validation) become
// error results on the tool call, never protocol errors; only schema
// construction can fail, and that fails registration.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/tallyops/xero-mcp/internal/auth"
	"github.com/tallyops/xero-mcp/internal/xero"
)

// Deps holds what every tool handler needs. BaseURL is the default API
// root; a per-request Xero-Base-Url header still overrides it.
type Deps struct {
	Logger     *slog.Logger
	BaseURL    string
	HTTPClient *http.Client
}

// client builds the per-call Xero client from the request credentials.
// Missing credentials surface here as a MissingCredentialError, before
// any network traffic.
func (d Deps) client(ctx context.Context) (*xero.Client, error) {
	creds, _ := auth.FromContext(ctx)

	var opts []xero.Option
	if d.BaseURL != "" {
		opts = append(opts, xero.WithBaseURL(d.BaseURL))
	}
	if d.Logger != nil {
		opts = append(opts, xero.WithLogger(d.Logger))
	}
	if d.HTTPClient != nil {
		opts = append(opts, xero.WithHTTPClient(d.HTTPClient))
	}
	return xero.NewClient(creds, opts...)
}

// Registry accumulates tool registrations against one MCP server. The
// first schema failure sticks; later adds become no-ops so Register can
// report a single error.
type Registry struct {
	server *mcp.Server
	deps   Deps
	count  int
	err    error
}

// Register wires every tool onto the server and returns how many were
// added.
func Register(server *mcp.Server, deps Deps) (int, error) {
	r := &Registry{server: server, deps: deps}

	r.registerInvoices()
	r.registerContacts()
	r.registerCredits()
	r.registerPayments()
	r.registerBanking()
	r.registerLedger()
	r.registerTrade()
	r.registerSetup()
	r.registerLinkedTransactions()
	r.registerReports()

	if r.err != nil {
		return 0, r.err
	}
	return r.count, nil
}

// add registers one tool whose input schema is inferred from In.
func add[In any](r *Registry, name, description string, fn func(context.Context, *xero.Client, In) (any, error)) {
	if r.err != nil {
		return
	}

	schema, err := jsonschema.For[In](nil)
	if err != nil {
		r.err = fmt.Errorf("building schema for %s: %w", name, err)
		return
	}

	tool := &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}

	deps := r.deps
	mcp.AddTool(r.server, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		client, err := deps.client(ctx)
		if err != nil {
			return errorResult(err), nil, nil
		}
		out, err := fn(ctx, client, in)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return jsonResult(out)
	})
	r.count++
}

// jsonResult renders a successful tool result as JSON text. Clients
// parse it; there is no secondary structured channel.
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

// errorResult renders a domain failure as an error result. Rate-limit
// errors are marked retryable so callers know waiting can help.
func errorResult(err error) *mcp.CallToolResult {
	text := err.Error()
	if xero.Retryable(err) {
		text += " (retryable)"
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// listArgs is the shared filter shape for collection tools.
type listArgs struct {
	Where string `json:"where,omitempty" jsonschema:"Filter expression in Xero where syntax, e.g. Status==\"AUTHORISED\""`
	Order string `json:"order,omitempty" jsonschema:"Sort order, e.g. Date DESC"`
	Page  int    `json:"page,omitempty" jsonschema:"Page number, 1-based. Pages hold up to 100 records"`
}

func (a listArgs) options() xero.ListOptions {
	return xero.ListOptions{Where: a.Where, Order: a.Order, Page: a.Page}
}

// idArgs is the shared shape for single-record tools.
type idArgs struct {
	ID string `json:"id" jsonschema:"Record identifier (UUID)"`
}

// dec converts an optional JSON number to an optional decimal.
func dec(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// trackingArgs pins a line to a tracking category option.
type trackingArgs struct {
	Name   string `json:"name" jsonschema:"Tracking category name"`
	Option string `json:"option" jsonschema:"Tracking option name"`
}

// lineItemArgs is the tool-facing shape of one line item.
type lineItemArgs struct {
	Description  *string        `json:"description,omitempty" jsonschema:"Line description"`
	Quantity     *float64       `json:"quantity,omitempty" jsonschema:"Quantity"`
	UnitAmount   *float64       `json:"unitAmount,omitempty" jsonschema:"Unit price"`
	AccountCode  *string        `json:"accountCode,omitempty" jsonschema:"Account code the line posts to"`
	ItemCode     *string        `json:"itemCode,omitempty" jsonschema:"Item code"`
	TaxType      *string        `json:"taxType,omitempty" jsonschema:"Tax type code"`
	DiscountRate *float64       `json:"discountRate,omitempty" jsonschema:"Percentage discount"`
	Tracking     []trackingArgs `json:"tracking,omitempty" jsonschema:"Tracking category assignments"`
}

func (a lineItemArgs) input() xero.LineItemInput {
	in := xero.LineItemInput{
		Description:  a.Description,
		Quantity:     dec(a.Quantity),
		UnitAmount:   dec(a.UnitAmount),
		AccountCode:  a.AccountCode,
		ItemCode:     a.ItemCode,
		TaxType:      a.TaxType,
		DiscountRate: dec(a.DiscountRate),
	}
	for _, t := range a.Tracking {
		in.Tracking = append(in.Tracking, xero.LineTracking{Name: t.Name, Option: t.Option})
	}
	return in
}

func lineItemInputs(args []lineItemArgs) []xero.LineItemInput {
	if args == nil {
		return nil
	}
	out := make([]xero.LineItemInput, len(args))
	for i, a := range args {
		out[i] = a.input()
	}
	return out
}

// allocationArgs applies credit against an invoice.
type allocationArgs struct {
	ID        string  `json:"id" jsonschema:"Identifier of the credit-bearing record (UUID)"`
	InvoiceID string  `json:"invoiceId" jsonschema:"Identifier of the invoice to apply credit to (UUID)"`
	Amount    float64 `json:"amount" jsonschema:"Amount of credit to apply"`
	Date      *string `json:"date,omitempty" jsonschema:"Allocation date (YYYY-MM-DD)"`
}

func (a allocationArgs) input() xero.AllocationInput {
	return xero.AllocationInput{
		InvoiceID: a.InvoiceID,
		Amount:    decimal.NewFromFloat(a.Amount),
		Date:      a.Date,
	}
}

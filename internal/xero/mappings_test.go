package xero

import (
	"encoding/json"
	"reflect"
	"testing"
)

func unmarshalWire(t *testing.T, raw string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		t.Fatalf("decoding wire fixture: %v", err)
	}
}

// One representative wire sample per entity kind, decoded through the
// PascalCase tags and mapped to the domain shape. A mistyped wire tag
// shows up here as a zero-valued field.
func TestFromWireFieldMapping(t *testing.T) {
	tests := []struct {
		name   string
		wire   string
		decode func(t *testing.T, raw string) any
		want   any
	}{
		{
			name: "contact",
			wire: `{"ContactID":"con-1","Name":"Acme Ltd","FirstName":"Ada","EmailAddress":"ada@acme.test","ContactStatus":"ACTIVE","IsCustomer":true,"IsSupplier":false,"DefaultCurrency":"NZD","Phones":[{"PhoneType":"MOBILE","PhoneNumber":"5551234","PhoneAreaCode":"21"}],"Addresses":[{"AddressType":"STREET","AddressLine1":"1 High St","City":"Wellington","PostalCode":"6011"}],"UpdatedDateUTC":"/Date(1700000000000)/"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireContact
				unmarshalWire(t, raw, &w)
				return contactFromWire(w)
			},
			want: Contact{
				ID:              "con-1",
				Name:            "Acme Ltd",
				FirstName:       "Ada",
				EmailAddress:    "ada@acme.test",
				Status:          "ACTIVE",
				IsCustomer:      ptr(true),
				IsSupplier:      ptr(false),
				DefaultCurrency: "NZD",
				Phones:          []Phone{{Type: "MOBILE", Number: "5551234", AreaCode: "21"}},
				Addresses:       []Address{{Type: "STREET", Line1: "1 High St", City: "Wellington", PostalCode: "6011"}},
				UpdatedDateUTC:  "/Date(1700000000000)/",
			},
		},
		{
			name: "account",
			wire: `{"AccountID":"acc-1","Code":"200","Name":"Sales","Type":"REVENUE","TaxType":"OUTPUT","Status":"ACTIVE","Class":"REVENUE","EnablePaymentsToAccount":false,"ReportingCode":"REV"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireAccount
				unmarshalWire(t, raw, &w)
				return accountFromWire(w)
			},
			want: Account{
				ID:                      "acc-1",
				Code:                    "200",
				Name:                    "Sales",
				Type:                    "REVENUE",
				TaxType:                 "OUTPUT",
				Status:                  "ACTIVE",
				Class:                   "REVENUE",
				EnablePaymentsToAccount: ptr(false),
				ReportingCode:           "REV",
			},
		},
		{
			name: "payment",
			wire: `{"PaymentID":"pay-1","Invoice":{"InvoiceID":"inv-1","InvoiceNumber":"INV-0042"},"Account":{"AccountID":"acc-1","Code":"090"},"Date":"2026-02-01","Amount":250.75,"Status":"AUTHORISED","PaymentType":"ACCRECPAYMENT","IsReconciled":false}`,
			decode: func(t *testing.T, raw string) any {
				var w wirePayment
				unmarshalWire(t, raw, &w)
				return paymentFromWire(w)
			},
			want: Payment{
				ID:           "pay-1",
				Invoice:      &InvoiceRef{ID: "inv-1", Number: "INV-0042"},
				Account:      &AccountRef{ID: "acc-1", Code: "090"},
				Date:         "2026-02-01",
				Amount:       decimalPtr(t, "250.75"),
				Status:       "AUTHORISED",
				PaymentType:  "ACCRECPAYMENT",
				IsReconciled: ptr(false),
			},
		},
		{
			name: "quote",
			wire: `{"QuoteID":"q-1","QuoteNumber":"QU-0007","Contact":{"ContactID":"con-1","Name":"Acme Ltd"},"Date":"2026-03-01","ExpiryDate":"2026-03-31","Title":"Fit-out","Status":"SENT","LineItems":[{"LineItemID":"li-1","Description":"Design","Quantity":1,"UnitAmount":800,"AccountCode":"200"}],"SubTotal":800,"Total":920}`,
			decode: func(t *testing.T, raw string) any {
				var w wireQuote
				unmarshalWire(t, raw, &w)
				return quoteFromWire(w)
			},
			want: Quote{
				ID:         "q-1",
				Number:     "QU-0007",
				Contact:    &ContactRef{ID: "con-1", Name: "Acme Ltd"},
				Date:       "2026-03-01",
				ExpiryDate: "2026-03-31",
				Title:      "Fit-out",
				Status:     "SENT",
				LineItems: []LineItem{{
					ID:          "li-1",
					Description: "Design",
					Quantity:    decimalPtr(t, "1"),
					UnitAmount:  decimalPtr(t, "800"),
					AccountCode: "200",
				}},
				SubTotal: decimalPtr(t, "800"),
				Total:    decimalPtr(t, "920"),
			},
		},
		{
			name: "purchase order",
			wire: `{"PurchaseOrderID":"po-1","PurchaseOrderNumber":"PO-0101","Contact":{"ContactID":"con-2"},"DeliveryDate":"2026-04-01","Status":"AUTHORISED","DeliveryInstructions":"Rear dock","Total":330}`,
			decode: func(t *testing.T, raw string) any {
				var w wirePurchaseOrder
				unmarshalWire(t, raw, &w)
				return purchaseOrderFromWire(w)
			},
			want: PurchaseOrder{
				ID:                   "po-1",
				Number:               "PO-0101",
				Contact:              &ContactRef{ID: "con-2"},
				DeliveryDate:         "2026-04-01",
				Status:               "AUTHORISED",
				DeliveryInstructions: "Rear dock",
				Total:                decimalPtr(t, "330"),
			},
		},
		{
			name: "bank transaction",
			wire: `{"BankTransactionID":"bt-1","Type":"SPEND","Contact":{"ContactID":"con-1"},"BankAccount":{"AccountID":"acc-9","Code":"090"},"Date":"2026-02-10","IsReconciled":false,"Total":19.95}`,
			decode: func(t *testing.T, raw string) any {
				var w wireBankTransaction
				unmarshalWire(t, raw, &w)
				return bankTransactionFromWire(w)
			},
			want: BankTransaction{
				ID:           "bt-1",
				Type:         "SPEND",
				Contact:      &ContactRef{ID: "con-1"},
				BankAccount:  &AccountRef{ID: "acc-9", Code: "090"},
				Date:         "2026-02-10",
				IsReconciled: ptr(false),
				Total:        decimalPtr(t, "19.95"),
			},
		},
		{
			name: "bank transfer",
			wire: `{"BankTransferID":"tr-1","FromBankAccount":{"AccountID":"acc-1","Name":"Cheque"},"ToBankAccount":{"AccountID":"acc-2","Name":"Savings"},"Amount":500,"Date":"2026-05-01","FromIsReconciled":true,"ToIsReconciled":false}`,
			decode: func(t *testing.T, raw string) any {
				var w wireBankTransfer
				unmarshalWire(t, raw, &w)
				return bankTransferFromWire(w)
			},
			want: BankTransfer{
				ID:               "tr-1",
				FromBankAccount:  &AccountRef{ID: "acc-1", Name: "Cheque"},
				ToBankAccount:    &AccountRef{ID: "acc-2", Name: "Savings"},
				Amount:           decimalPtr(t, "500"),
				Date:             "2026-05-01",
				FromIsReconciled: ptr(true),
				ToIsReconciled:   ptr(false),
			},
		},
		{
			name: "batch payment",
			wire: `{"BatchPaymentID":"bp-1","Account":{"AccountID":"acc-1"},"Date":"2026-06-01","Status":"AUTHORISED","TotalAmount":150,"Payments":[{"PaymentID":"pay-9","Amount":150}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireBatchPayment
				unmarshalWire(t, raw, &w)
				return batchPaymentFromWire(w)
			},
			want: BatchPayment{
				ID:          "bp-1",
				Account:     &AccountRef{ID: "acc-1"},
				Date:        "2026-06-01",
				Status:      "AUTHORISED",
				TotalAmount: decimalPtr(t, "150"),
				Payments:    []Payment{{ID: "pay-9", Amount: decimalPtr(t, "150")}},
			},
		},
		{
			name: "manual journal",
			wire: `{"ManualJournalID":"mj-1","Narration":"Accrual","Status":"POSTED","ShowOnCashBasisReports":false,"JournalLines":[{"LineAmount":120,"AccountCode":"200","Tracking":[{"Name":"Region","Option":"North"}]},{"LineAmount":-120,"AccountCode":"610"}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireManualJournal
				unmarshalWire(t, raw, &w)
				return manualJournalFromWire(w)
			},
			want: ManualJournal{
				ID:                     "mj-1",
				Narration:              "Accrual",
				Status:                 "POSTED",
				ShowOnCashBasisReports: ptr(false),
				JournalLines: []ManualJournalLine{
					{
						LineAmount:  decimalPtr(t, "120"),
						AccountCode: "200",
						Tracking:    []LineTracking{{Name: "Region", Option: "North"}},
					},
					{
						LineAmount:  decimalPtr(t, "-120"),
						AccountCode: "610",
					},
				},
			},
		},
		{
			name: "repeating invoice",
			wire: `{"RepeatingInvoiceID":"ri-1","Type":"ACCREC","Contact":{"ContactID":"con-1"},"Schedule":{"Period":1,"Unit":"MONTHLY","DueDate":20,"DueDateType":"OFFOLLOWINGMONTH","StartDate":"2026-01-01","NextScheduledDate":"2026-09-01"},"Status":"AUTHORISED","ApprovedForSending":false}`,
			decode: func(t *testing.T, raw string) any {
				var w wireRepeatingInvoice
				unmarshalWire(t, raw, &w)
				return repeatingInvoiceFromWire(w)
			},
			want: RepeatingInvoice{
				ID:      "ri-1",
				Type:    "ACCREC",
				Contact: &ContactRef{ID: "con-1"},
				Schedule: &Schedule{
					Period:            1,
					Unit:              "MONTHLY",
					DueDate:           20,
					DueDateType:       "OFFOLLOWINGMONTH",
					StartDate:         "2026-01-01",
					NextScheduledDate: "2026-09-01",
				},
				Status:             "AUTHORISED",
				ApprovedForSending: ptr(false),
			},
		},
		{
			name: "linked transaction",
			wire: `{"LinkedTransactionID":"lt-1","SourceTransactionID":"src-1","SourceLineItemID":"sli-1","ContactID":"con-1","TargetTransactionID":"tgt-1","TargetLineItemID":"tli-1","Status":"ONDRAFT","Type":"BILLABLEEXPENSE"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireLinkedTransaction
				unmarshalWire(t, raw, &w)
				return linkedTransactionFromWire(w)
			},
			want: LinkedTransaction{
				ID:                  "lt-1",
				SourceTransactionID: "src-1",
				SourceLineItemID:    "sli-1",
				ContactID:           "con-1",
				TargetTransactionID: "tgt-1",
				TargetLineItemID:    "tli-1",
				Status:              "ONDRAFT",
				Type:                "BILLABLEEXPENSE",
			},
		},
		{
			name: "tax rate",
			wire: `{"Name":"Reduced GST","TaxType":"TAX001","Status":"ACTIVE","ReportTaxType":"OUTPUT","DisplayTaxRate":9,"EffectiveRate":9,"CanApplyToAssets":true,"CanApplyToRevenue":false,"TaxComponents":[{"Name":"GST","Rate":9,"IsCompound":false,"IsNonRecoverable":false}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireTaxRate
				unmarshalWire(t, raw, &w)
				return taxRateFromWire(w)
			},
			want: TaxRate{
				Name:              "Reduced GST",
				TaxType:           "TAX001",
				Status:            "ACTIVE",
				ReportTaxType:     "OUTPUT",
				DisplayTaxRate:    decimalPtr(t, "9"),
				EffectiveRate:     decimalPtr(t, "9"),
				CanApplyToAssets:  ptr(true),
				CanApplyToRevenue: ptr(false),
				TaxComponents: []TaxComponent{{
					Name:             "GST",
					Rate:             decimalPtr(t, "9"),
					IsCompound:       ptr(false),
					IsNonRecoverable: ptr(false),
				}},
			},
		},
		{
			name: "tracking category",
			wire: `{"TrackingCategoryID":"tc-1","Name":"Region","Status":"ACTIVE","Options":[{"TrackingOptionID":"to-1","Name":"North","Status":"ACTIVE"},{"TrackingOptionID":"to-2","Name":"South"}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireTrackingCategory
				unmarshalWire(t, raw, &w)
				return trackingCategoryFromWire(w)
			},
			want: TrackingCategory{
				ID:     "tc-1",
				Name:   "Region",
				Status: "ACTIVE",
				Options: []TrackingOption{
					{ID: "to-1", Name: "North", Status: "ACTIVE"},
					{ID: "to-2", Name: "South"},
				},
			},
		},
		{
			name: "prepayment",
			wire: `{"PrepaymentID":"pp-1","Type":"RECEIVE-PREPAYMENT","Contact":{"ContactID":"con-1"},"Date":"2026-02-01","Status":"AUTHORISED","Total":230,"RemainingCredit":230}`,
			decode: func(t *testing.T, raw string) any {
				var w wirePrepayment
				unmarshalWire(t, raw, &w)
				return prepaymentFromWire(w)
			},
			want: Prepayment{
				ID:              "pp-1",
				Type:            "RECEIVE-PREPAYMENT",
				Contact:         &ContactRef{ID: "con-1"},
				Date:            "2026-02-01",
				Status:          "AUTHORISED",
				Total:           decimalPtr(t, "230"),
				RemainingCredit: decimalPtr(t, "230"),
			},
		},
		{
			name: "overpayment",
			wire: `{"OverpaymentID":"op-1","Type":"RECEIVE-OVERPAYMENT","Contact":{"ContactID":"con-1"},"Status":"AUTHORISED","RemainingCredit":40,"Allocations":[{"Amount":10,"Invoice":{"InvoiceID":"inv-1"}}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireOverpayment
				unmarshalWire(t, raw, &w)
				return overpaymentFromWire(w)
			},
			want: Overpayment{
				ID:              "op-1",
				Type:            "RECEIVE-OVERPAYMENT",
				Contact:         &ContactRef{ID: "con-1"},
				Status:          "AUTHORISED",
				RemainingCredit: decimalPtr(t, "40"),
				Allocations: []Allocation{{
					Amount:  *decimalPtr(t, "10"),
					Invoice: &InvoiceRef{ID: "inv-1"},
				}},
			},
		},
		{
			name: "organisation",
			wire: `{"OrganisationID":"org-1","Name":"Demo Company","LegalName":"Demo Company (NZ)","BaseCurrency":"NZD","CountryCode":"NZ","PaysTax":true,"IsDemoCompany":true,"FinancialYearEndDay":31,"FinancialYearEndMonth":3,"ShortCode":"!abc12","Timezone":"NEWZEALANDSTANDARDTIME"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireOrganisation
				unmarshalWire(t, raw, &w)
				return organisationFromWire(w)
			},
			want: Organisation{
				ID:                    "org-1",
				Name:                  "Demo Company",
				LegalName:             "Demo Company (NZ)",
				BaseCurrency:          "NZD",
				CountryCode:           "NZ",
				PaysTax:               ptr(true),
				IsDemoCompany:         ptr(true),
				FinancialYearEndDay:   31,
				FinancialYearEndMonth: 3,
				ShortCode:             "!abc12",
				Timezone:              "NEWZEALANDSTANDARDTIME",
			},
		},
		{
			name: "currency",
			wire: `{"Code":"NZD","Description":"New Zealand Dollar"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireCurrency
				unmarshalWire(t, raw, &w)
				return currencyFromWire(w)
			},
			want: Currency{Code: "NZD", Description: "New Zealand Dollar"},
		},
		{
			name: "contact group",
			wire: `{"ContactGroupID":"cg-1","Name":"Wholesale","Status":"ACTIVE","Contacts":[{"ContactID":"con-1","Name":"Acme Ltd"}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireContactGroup
				unmarshalWire(t, raw, &w)
				return contactGroupFromWire(w)
			},
			want: ContactGroup{
				ID:       "cg-1",
				Name:     "Wholesale",
				Status:   "ACTIVE",
				Contacts: []ContactRef{{ID: "con-1", Name: "Acme Ltd"}},
			},
		},
		{
			name: "branding theme",
			wire: `{"BrandingThemeID":"bth-1","Name":"Standard","SortOrder":2,"CreatedDateUTC":"/Date(1400000000000)/"}`,
			decode: func(t *testing.T, raw string) any {
				var w wireBrandingTheme
				unmarshalWire(t, raw, &w)
				return brandingThemeFromWire(w)
			},
			want: BrandingTheme{
				ID:             "bth-1",
				Name:           "Standard",
				SortOrder:      2,
				CreatedDateUTC: "/Date(1400000000000)/",
			},
		},
		{
			name: "report",
			wire: `{"ReportID":"BalanceSheet","ReportName":"Balance Sheet","ReportType":"BalanceSheet","ReportTitles":["Balance Sheet","Demo Company"],"ReportDate":"28 August 2026","Rows":[{"RowType":"Header","Cells":[{"Value":""},{"Value":"28 Aug 2026"}]},{"RowType":"Section","Title":"Bank","Rows":[{"RowType":"Row","Cells":[{"Value":"Cheque"},{"Value":"1200.00","Attributes":[{"Value":"acc-1","Id":"account"}]}]}]}]}`,
			decode: func(t *testing.T, raw string) any {
				var w wireReport
				unmarshalWire(t, raw, &w)
				return reportFromWire(w)
			},
			want: Report{
				ID:     "BalanceSheet",
				Name:   "Balance Sheet",
				Type:   "BalanceSheet",
				Titles: []string{"Balance Sheet", "Demo Company"},
				Date:   "28 August 2026",
				Rows: []ReportRow{
					{
						RowType: "Header",
						Cells:   []ReportCell{{}, {Value: "28 Aug 2026"}},
					},
					{
						RowType: "Section",
						Title:   "Bank",
						Rows: []ReportRow{{
							RowType: "Row",
							Cells: []ReportCell{
								{Value: "Cheque"},
								{Value: "1200.00", Attributes: map[string]string{"account": "acc-1"}},
							},
						}},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.decode(t, tt.wire)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fromWire mismatch:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

// One sparse input per write-capable entity kind, rendered to the exact
// wire JSON. Checks both the PascalCase write tags and the sparse rule:
// only set fields appear, and set-but-false booleans do appear.
func TestToWireSparsePayloads(t *testing.T) {
	tests := []struct {
		name string
		wire any
		want string
	}{
		{
			name: "contact",
			wire: ContactInput{
				Name:         ptr("Acme Ltd"),
				EmailAddress: ptr("kia-ora@acme.test"),
				Status:       ptr(ContactStatusArchived),
				Phones:       []PhoneInput{{Type: ptr("MOBILE"), Number: ptr("5551234")}},
			}.toWire(),
			want: `{"Name":"Acme Ltd","EmailAddress":"kia-ora@acme.test","ContactStatus":"ARCHIVED","Phones":[{"PhoneType":"MOBILE","PhoneNumber":"5551234"}]}`,
		},
		{
			name: "account",
			wire: AccountInput{
				Code:                    ptr("090"),
				Name:                    ptr("Cheque"),
				Type:                    ptr("BANK"),
				EnablePaymentsToAccount: ptr(false),
			}.toWire(),
			want: `{"Code":"090","Name":"Cheque","Type":"BANK","EnablePaymentsToAccount":false}`,
		},
		{
			name: "payment",
			wire: PaymentInput{
				InvoiceID:   ptr("inv-1"),
				AccountCode: ptr("090"),
				Date:        ptr("2026-02-01"),
				Amount:      decimalPtr(t, "250.75"),
			}.toWire(),
			want: `{"Invoice":{"InvoiceID":"inv-1"},"Account":{"Code":"090"},"Date":"2026-02-01","Amount":250.75}`,
		},
		{
			name: "quote",
			wire: QuoteInput{
				ContactID: ptr("con-1"),
				Title:     ptr("Fit-out"),
				Status:    ptr(QuoteStatusSent),
			}.toWire(),
			want: `{"Contact":{"ContactID":"con-1"},"Title":"Fit-out","Status":"SENT"}`,
		},
		{
			name: "purchase order",
			wire: PurchaseOrderInput{
				ContactID:            ptr("con-2"),
				DeliveryDate:         ptr("2026-04-01"),
				DeliveryInstructions: ptr("Rear dock"),
			}.toWire(),
			want: `{"Contact":{"ContactID":"con-2"},"DeliveryDate":"2026-04-01","DeliveryInstructions":"Rear dock"}`,
		},
		{
			name: "bank transaction",
			wire: BankTransactionInput{
				Type:            ptr(BankTransactionTypeSpend),
				ContactID:       ptr("con-1"),
				BankAccountCode: ptr("090"),
				LineItems: []LineItemInput{{
					Description: ptr("Stationery"),
					UnitAmount:  decimalPtr(t, "19.95"),
					AccountCode: ptr("400"),
				}},
			}.toWire(),
			want: `{"Type":"SPEND","Contact":{"ContactID":"con-1"},"BankAccount":{"Code":"090"},"LineItems":[{"Description":"Stationery","UnitAmount":19.95,"AccountCode":"400"}]}`,
		},
		{
			name: "bank transfer",
			wire: BankTransferInput{
				FromBankAccountCode: ptr("090"),
				ToBankAccountID:     ptr("acc-2"),
				Amount:              decimalPtr(t, "500"),
				Date:                ptr("2026-05-01"),
			}.toWire(),
			want: `{"FromBankAccount":{"Code":"090"},"ToBankAccount":{"AccountID":"acc-2"},"Amount":500,"Date":"2026-05-01"}`,
		},
		{
			name: "batch payment",
			wire: BatchPaymentInput{
				AccountID: ptr("acc-1"),
				Date:      ptr("2026-06-01"),
				Payments: []PaymentInput{{
					InvoiceID: ptr("inv-1"),
					Amount:    decimalPtr(t, "75"),
				}},
			}.toWire(),
			want: `{"Account":{"AccountID":"acc-1"},"Date":"2026-06-01","Payments":[{"Invoice":{"InvoiceID":"inv-1"},"Amount":75}]}`,
		},
		{
			name: "manual journal",
			wire: ManualJournalInput{
				Narration: ptr("Accrual"),
				JournalLines: []JournalLineInput{
					{LineAmount: decimalPtr(t, "120"), AccountCode: ptr("200")},
					{LineAmount: decimalPtr(t, "-120"), AccountCode: ptr("610")},
				},
				ShowOnCashBasisReports: ptr(false),
			}.toWire(),
			want: `{"Narration":"Accrual","JournalLines":[{"LineAmount":120,"AccountCode":"200"},{"LineAmount":-120,"AccountCode":"610"}],"ShowOnCashBasisReports":false}`,
		},
		{
			name: "repeating invoice",
			wire: RepeatingInvoiceInput{
				Type:               ptr(InvoiceTypeSales),
				ContactID:          ptr("con-1"),
				Schedule:           &ScheduleInput{Period: ptr(1), Unit: ptr("MONTHLY")},
				ApprovedForSending: ptr(false),
			}.toWire(),
			want: `{"Type":"ACCREC","Contact":{"ContactID":"con-1"},"Schedule":{"Period":1,"Unit":"MONTHLY"},"ApprovedForSending":false}`,
		},
		{
			name: "linked transaction",
			wire: LinkedTransactionInput{
				SourceTransactionID: ptr("src-1"),
				SourceLineItemID:    ptr("sli-1"),
				TargetTransactionID: ptr("tgt-1"),
			}.toWire(),
			want: `{"SourceTransactionID":"src-1","SourceLineItemID":"sli-1","TargetTransactionID":"tgt-1"}`,
		},
		{
			name: "tax rate",
			wire: TaxRateInput{
				Name:    ptr("Reduced GST"),
				TaxType: ptr("TAX001"),
				TaxComponents: []TaxComponentInput{{
					Name:       ptr("GST"),
					Rate:       decimalPtr(t, "9"),
					IsCompound: ptr(false),
				}},
			}.toWire(),
			want: `{"Name":"Reduced GST","TaxType":"TAX001","TaxComponents":[{"Name":"GST","Rate":9,"IsCompound":false}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.wire)
			if err != nil {
				t.Fatalf("encoding wire payload: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("toWire payload:\n got %s\nwant %s", b, tt.want)
			}
		})
	}
}

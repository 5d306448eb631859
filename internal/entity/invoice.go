package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateLayout is the dd/mm/yyyy form used on printed invoices.
const DateLayout = "02/01/2006"

type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTNo   string `json:"gstNo"`
}

type BankDetails struct {
	CompanyName string `json:"companyName"`
	AccountNo   string `json:"accountNo"`
	BranchName  string `json:"branchName"`
	IFSCCode    string `json:"ifscCode"`
}

type PaymentTerms struct {
	Payment   string `json:"payment"`
	Insurance string `json:"insurance"`
	Freight   string `json:"freight"`
}

type CompanyInfo struct {
	GSTNo     string `json:"gstNo"`
	StateCode string `json:"stateCode"`
	CIN       string `json:"cin"`
}

// Seller holds the issuer presets every new document starts with.
type Seller struct {
	Bank    BankDetails
	Terms   PaymentTerms
	Company CompanyInfo
}

func DefaultSeller() Seller {
	return Seller{
		Bank: BankDetails{
			CompanyName: "Coninfra Machinery P. Ltd.",
			AccountNo:   "59229099941311",
			BranchName:  "Usmanpura, Ahmedabad",
			IFSCCode:    "HDFC0001682",
		},
		Terms: PaymentTerms{
			Payment:   "100% Advance against P.I.",
			Insurance: "Transit Insurance at actual should be borne by you.",
			Freight:   "Extra at actual.",
		},
		Company: CompanyInfo{
			GSTNo:     "24AAJCC0082C1Z7",
			StateCode: "24",
			CIN:       "U29308GJ2020PTC116940",
		},
	}
}

// Document is one immutable snapshot of a proforma invoice. Edits go through Apply, which returns
// a new snapshot with totals recomputed; Items of a snapshot is never modified in place.
type Document struct {
	PONo         string       `json:"poNo"`
	PODate       string       `json:"poDate"`
	InvoiceNo    string       `json:"invoiceNo"`
	InvoiceDate  string       `json:"invoiceDate"`
	Buyer        Party        `json:"buyer"`
	Consignee    Party        `json:"consignee"`
	Items        []LineItem   `json:"items"`
	Bank         BankDetails  `json:"bank"`
	Terms        PaymentTerms `json:"terms"`
	Company      CompanyInfo  `json:"company"`
	GSTRate      int          `json:"gstRate"`
	Totals       Totals       `json:"totals"`
	SpecialNotes string       `json:"specialNotes"`
}

// NewDocument returns the default snapshot: one blank item, seller presets, today's dates and the
// default GST rate.
func NewDocument(now time.Time, seller Seller) Document {
	today := now.Format(DateLayout)

	d := Document{
		PODate:      today,
		InvoiceDate: today,
		Bank:        seller.Bank,
		Terms:       seller.Terms,
		Company:     seller.Company,
		GSTRate:     DefaultGSTRatePercent,
	}

	return d.withItems([]LineItem{NewLineItem(uuid.Must(uuid.NewV4()), 1)})
}

// Item returns the item with the given id.
func (d Document) Item(id uuid.UUID) (LineItem, bool) {
	for _, item := range d.Items {
		if item.ID == id {
			return item, true
		}
	}

	return LineItem{}, false
}

// withItems installs a new item list together with the totals computed from it.
func (d Document) withItems(items []LineItem) Document {
	d.Items = items
	d.Totals = RecomputeTotals(items, d.GSTRate)

	return d
}

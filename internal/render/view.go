// Package render draws an invoice snapshot in one of the two templates, as PDF for download and as
// HTML for the browser's print dialog.
package render

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/pkg/inr"
)

const title = "PROFORMA INVOICE"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns the download name: Proforma_Invoice_<invoice no or Draft>_<YYYY-MM-DD>.pdf.
// The date is the UTC date of now.
func FileName(doc entity.Document, now time.Time) string {
	no := strings.Trim(unsafeFileChars.ReplaceAllString(doc.InvoiceNo, "-"), "-")
	if no == "" {
		no = "Draft"
	}

	return "Proforma_Invoice_" + no + "_" + now.UTC().Format(time.DateOnly) + ".pdf"
}

// view is a document with every number already formatted for printing.
type view struct {
	Template    string
	Title       string
	InvoiceNo   string
	InvoiceDate string
	PONo        string
	PODate      string
	Buyer       partyView
	Consignee   partyView
	Rows        []rowView
	Basic       string
	GSTLabel    string
	GST         string
	Net         string
	InWords     string
	Bank        entity.BankDetails
	Terms       entity.PaymentTerms
	Company     entity.CompanyInfo
	Notes       []string
	LogoURL     string
	FooterURL   string
}

type partyView struct {
	Label   string
	Name    string
	Address []string
	GSTNo   string
}

type rowView struct {
	No         string
	Details    string
	UOM        string
	Qty        string
	Rate       string
	Amount     string
	IsDiscount bool
}

func newView(doc entity.Document, tmpl entity.Template) view {
	v := view{
		Template:    tmpl.String(),
		Title:       title,
		InvoiceNo:   doc.InvoiceNo,
		InvoiceDate: doc.InvoiceDate,
		PONo:        doc.PONo,
		PODate:      doc.PODate,
		Buyer:       newPartyView("Buyer", doc.Buyer),
		Consignee:   newPartyView("Consignee", doc.Consignee),
		Rows:        make([]rowView, 0, len(doc.Items)),
		Basic:       inr.FormatCurrency(doc.Totals.Basic),
		GSTLabel:    "GST @ " + strconv.Itoa(doc.GSTRate) + "%",
		GST:         inr.FormatCurrency(doc.Totals.GST),
		Net:         inr.FormatCurrency(doc.Totals.Net),
		InWords:     "Rupees " + doc.Totals.InWords,
		Bank:        doc.Bank,
		Terms:       doc.Terms,
		Company:     doc.Company,
		Notes:       lines(doc.SpecialNotes),
	}

	for _, item := range doc.Items {
		v.Rows = append(v.Rows, newRowView(item))
	}

	return v
}

func newPartyView(label string, p entity.Party) partyView {
	return partyView{
		Label:   label,
		Name:    p.Name,
		Address: lines(p.Address),
		GSTNo:   p.GSTNo,
	}
}

func newRowView(item entity.LineItem) rowView {
	if item.IsDiscount {
		return rowView{
			Details:    item.DiscountLabel,
			Amount:     inr.FormatCurrency(item.Amount),
			IsDiscount: true,
		}
	}

	r := rowView{
		No:      strconv.Itoa(item.No),
		Details: item.Details,
		UOM:     item.UOM,
		Amount:  inr.FormatCurrency(item.Amount),
	}

	if item.Qty.Valid {
		r.Qty = inr.FormatNumber(item.Qty.Decimal)
	}

	if item.Rate.Valid {
		r.Rate = inr.FormatCurrency(item.Rate.Decimal)
	}

	return r
}

func lines(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

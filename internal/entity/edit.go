package entity

import (
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Edit is one user change to a document. Applying an edit never fails: unknown fields and
// unknown item ids leave the document unchanged.
type Edit interface {
	apply(d Document) Document
}

// Apply returns the snapshot produced by applying edits in order. d itself is left untouched.
func (d Document) Apply(edits ...Edit) Document {
	for _, e := range edits {
		if e == nil {
			continue
		}

		d = e.apply(d)
	}

	return d
}

// DocField names a text field of the document. Nested blocks use dotted names.
type DocField string

const (
	FieldPONo             DocField = "poNo"
	FieldPODate           DocField = "poDate"
	FieldInvoiceNo        DocField = "invoiceNo"
	FieldInvoiceDate      DocField = "invoiceDate"
	FieldBuyerName        DocField = "buyer.name"
	FieldBuyerAddress     DocField = "buyer.address"
	FieldBuyerGSTNo       DocField = "buyer.gstNo"
	FieldConsigneeName    DocField = "consignee.name"
	FieldConsigneeAddress DocField = "consignee.address"
	FieldConsigneeGSTNo   DocField = "consignee.gstNo"
	FieldBankCompanyName  DocField = "bank.companyName"
	FieldBankAccountNo    DocField = "bank.accountNo"
	FieldBankBranchName   DocField = "bank.branchName"
	FieldBankIFSCCode     DocField = "bank.ifscCode"
	FieldTermsPayment     DocField = "terms.payment"
	FieldTermsInsurance   DocField = "terms.insurance"
	FieldTermsFreight     DocField = "terms.freight"
	FieldCompanyGSTNo     DocField = "company.gstNo"
	FieldCompanyStateCode DocField = "company.stateCode"
	FieldCompanyCIN       DocField = "company.cin"
	FieldSpecialNotes     DocField = "specialNotes"
)

var docFields = map[DocField]func(d *Document) *string{
	FieldPONo:             func(d *Document) *string { return &d.PONo },
	FieldPODate:           func(d *Document) *string { return &d.PODate },
	FieldInvoiceNo:        func(d *Document) *string { return &d.InvoiceNo },
	FieldInvoiceDate:      func(d *Document) *string { return &d.InvoiceDate },
	FieldBuyerName:        func(d *Document) *string { return &d.Buyer.Name },
	FieldBuyerAddress:     func(d *Document) *string { return &d.Buyer.Address },
	FieldBuyerGSTNo:       func(d *Document) *string { return &d.Buyer.GSTNo },
	FieldConsigneeName:    func(d *Document) *string { return &d.Consignee.Name },
	FieldConsigneeAddress: func(d *Document) *string { return &d.Consignee.Address },
	FieldConsigneeGSTNo:   func(d *Document) *string { return &d.Consignee.GSTNo },
	FieldBankCompanyName:  func(d *Document) *string { return &d.Bank.CompanyName },
	FieldBankAccountNo:    func(d *Document) *string { return &d.Bank.AccountNo },
	FieldBankBranchName:   func(d *Document) *string { return &d.Bank.BranchName },
	FieldBankIFSCCode:     func(d *Document) *string { return &d.Bank.IFSCCode },
	FieldTermsPayment:     func(d *Document) *string { return &d.Terms.Payment },
	FieldTermsInsurance:   func(d *Document) *string { return &d.Terms.Insurance },
	FieldTermsFreight:     func(d *Document) *string { return &d.Terms.Freight },
	FieldCompanyGSTNo:     func(d *Document) *string { return &d.Company.GSTNo },
	FieldCompanyStateCode: func(d *Document) *string { return &d.Company.StateCode },
	FieldCompanyCIN:       func(d *Document) *string { return &d.Company.CIN },
	FieldSpecialNotes:     func(d *Document) *string { return &d.SpecialNotes },
}

func (f DocField) IsValid() bool {
	_, ok := docFields[f]
	return ok
}

// SetField replaces a text field. Totals are not affected.
type SetField struct {
	Field DocField
	Value string
}

func (e SetField) apply(d Document) Document {
	field, ok := docFields[e.Field]
	if !ok {
		return d
	}

	*field(&d) = e.Value

	return d
}

// ItemField names an editable field of a line item.
type ItemField string

const (
	ItemFieldDetails       ItemField = "details"
	ItemFieldUOM           ItemField = "uom"
	ItemFieldQty           ItemField = "qty"
	ItemFieldRate          ItemField = "rate"
	ItemFieldAmount        ItemField = "amount"
	ItemFieldDiscountLabel ItemField = "discountLabel"
)

func (f ItemField) IsValid() bool {
	switch f {
	case ItemFieldDetails, ItemFieldUOM, ItemFieldQty, ItemFieldRate, ItemFieldAmount, ItemFieldDiscountLabel:
		return true
	}

	return false
}

func (f ItemField) IsNumeric() bool {
	return f == ItemFieldQty || f == ItemFieldRate || f == ItemFieldAmount
}

// SetItemField changes one field of an item. Text fields read Text, numeric fields read Number.
//
// Editing qty or rate of a regular item recomputes its amount when both are set. Editing amount
// stores the value as given (unset means zero) and later edits of other fields keep it.
type SetItemField struct {
	ID     uuid.UUID
	Field  ItemField
	Text   string
	Number decimal.NullDecimal
}

func (e SetItemField) apply(d Document) Document {
	_, idx, ok := lo.FindIndexOf(d.Items, func(item LineItem) bool { return item.ID == e.ID })
	if !ok || !e.Field.IsValid() {
		return d
	}

	items := slices.Clone(d.Items)
	item := items[idx]

	switch e.Field {
	case ItemFieldDetails:
		item.Details = e.Text
	case ItemFieldUOM:
		item.UOM = e.Text
	case ItemFieldDiscountLabel:
		item.DiscountLabel = e.Text
	case ItemFieldAmount:
		item.Amount = e.Number.Decimal
		if !e.Number.Valid {
			item.Amount = decimal.Zero
		}
	case ItemFieldQty, ItemFieldRate:
		if item.IsDiscount {
			return d
		}

		if e.Field == ItemFieldQty {
			item.Qty = e.Number
		} else {
			item.Rate = e.Number
		}

		if amount, ok := LineAmount(item.Qty, item.Rate); ok {
			item.Amount = amount
		}
	}

	items[idx] = item

	return d.withItems(items)
}

// AddItem appends a blank regular item numbered after the existing regular items.
type AddItem struct {
	ID uuid.UUID
}

func (e AddItem) apply(d Document) Document {
	if e.ID.IsNil() || hasItem(d, e.ID) {
		return d
	}

	no := lo.CountBy(d.Items, func(item LineItem) bool { return !item.IsDiscount }) + 1

	return d.withItems(append(slices.Clone(d.Items), NewLineItem(e.ID, no)))
}

// AddDiscount appends an unnumbered discount row with a zero amount.
type AddDiscount struct {
	ID uuid.UUID
}

func (e AddDiscount) apply(d Document) Document {
	if e.ID.IsNil() || hasItem(d, e.ID) {
		return d
	}

	return d.withItems(append(slices.Clone(d.Items), NewDiscount(e.ID)))
}

// RemoveItem drops an item and renumbers the remaining regular items from 1.
type RemoveItem struct {
	ID uuid.UUID
}

func (e RemoveItem) apply(d Document) Document {
	if !hasItem(d, e.ID) {
		return d
	}

	items := lo.Filter(d.Items, func(item LineItem, _ int) bool { return item.ID != e.ID })

	no := 0
	for i := range items {
		if items[i].IsDiscount {
			continue
		}

		no++
		items[i].No = no
	}

	return d.withItems(items)
}

// SetGSTRate changes the tax rate in percent. The range is checked by callers, not here.
type SetGSTRate struct {
	Rate int
}

func (e SetGSTRate) apply(d Document) Document {
	d.GSTRate = e.Rate
	return d.withItems(d.Items)
}

func hasItem(d Document, id uuid.UUID) bool {
	return lo.ContainsBy(d.Items, func(item LineItem) bool { return item.ID == id })
}

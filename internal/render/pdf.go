package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/samandr77/microservices/invoice/internal/entity"
)

const (
	pageMargin   = 12.0
	lineHeight   = 5.0
	logoHeight   = 18.0
	footerHeight = 16.0
	fontFamily   = "Helvetica"
	currencyMark = "Rs. "
)

type rgb struct{ r, g, b int }

// style is what differs between the classic and smart layouts.
type style struct {
	accent    rgb
	header    rgb
	zebra     *rgb
	discount  rgb
	titleSize float64
	titleBand bool
	border    string
}

var styles = map[entity.Template]style{
	entity.TemplateClassic: {
		accent:    rgb{0, 0, 0},
		header:    rgb{230, 230, 230},
		discount:  rgb{0, 0, 0},
		titleSize: 16,
		border:    "1",
	},
	entity.TemplateSmart: {
		accent:    rgb{37, 99, 235},
		header:    rgb{241, 245, 249},
		zebra:     &rgb{248, 250, 252},
		discount:  rgb{185, 28, 28},
		titleSize: 18,
		titleBand: true,
		border:    "B",
	},
}

// item table column widths: No, Details, UOM, Qty, Rate, Amount.
var columns = [6]float64{12, 78, 18, 20, 28, 30}

var columnTitles = [6]string{"No.", "Item Details", "UOM", "Qty", "Rate", "Amount"}

var columnAligns = [6]string{"C", "L", "C", "R", "R", "R"}

// PDF writes the document in the given template as an A4 PDF. Nil assets are left out.
func PDF(w io.Writer, doc entity.Document, tmpl entity.Template, assets entity.Assets) error {
	st, ok := styles[tmpl]
	if !ok {
		return fmt.Errorf("%w: unknown template %q", entity.ErrInvalidArgument, tmpl.String())
	}

	p := newPainter(st)
	v := newView(doc, tmpl)

	p.pdf.SetTitle(v.Title+" "+v.InvoiceNo, true)
	p.pdf.AddPage()

	p.image("logo", assets.Logo, logoHeight)
	p.title(v)
	p.references(v)
	p.parties(v)
	p.items(v)
	p.totals(v)
	p.bank(v)
	p.notes(v)
	p.signature(v)
	p.image("footer", assets.Footer, footerHeight)

	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("p.pdf.Output: %w", err)
	}

	return nil
}

type painter struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	st    style
	width float64
}

func newPainter(st style) *painter {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreator("invoice", false)

	pageWidth, _ := pdf.GetPageSize()

	return &painter{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		st:    st,
		width: pageWidth - 2*pageMargin,
	}
}

func (p *painter) font(styleStr string, size float64) {
	p.pdf.SetFont(fontFamily, styleStr, size)
}

func (p *painter) color(c rgb) {
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *painter) image(name string, img *entity.Image, height float64) {
	if img == nil || p.pdf.Err() {
		return
	}

	opts := gofpdf.ImageOptions{ImageType: img.Type}

	info := p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if info == nil || p.pdf.Err() {
		return
	}

	width := info.Width() * height / info.Height()
	if width > p.width {
		width, height = p.width, info.Height()*p.width/info.Width()
	}

	x := pageMargin + (p.width-width)/2
	p.pdf.ImageOptions(name, x, p.pdf.GetY(), width, height, true, opts, 0, "")
	p.pdf.Ln(2)
}

func (p *painter) title(v view) {
	if p.st.titleBand {
		p.pdf.SetFillColor(p.st.accent.r, p.st.accent.g, p.st.accent.b)
		p.pdf.SetTextColor(255, 255, 255)
	} else {
		p.color(p.st.accent)
	}

	p.font("B", p.st.titleSize)
	p.pdf.CellFormat(p.width, 10, p.tr(v.Title), "", 1, "C", p.st.titleBand, 0, "")

	p.color(rgb{})
	p.font("", 8)

	company := fmt.Sprintf("GST: %s    State Code: %s    CIN: %s", v.Company.GSTNo, v.Company.StateCode, v.Company.CIN)
	p.pdf.CellFormat(p.width, lineHeight, p.tr(company), "", 1, "C", false, 0, "")
	p.pdf.Ln(2)
}

func (p *painter) references(v view) {
	half := p.width / 2

	p.font("B", 9)
	p.pdf.CellFormat(half, lineHeight, p.tr("P.I. No.: "+v.InvoiceNo), "", 0, "L", false, 0, "")
	p.pdf.CellFormat(half, lineHeight, p.tr("Your PO No.: "+v.PONo), "", 1, "R", false, 0, "")

	p.font("", 9)
	p.pdf.CellFormat(half, lineHeight, p.tr("Date: "+v.InvoiceDate), "", 0, "L", false, 0, "")
	p.pdf.CellFormat(half, lineHeight, p.tr("PO Date: "+v.PODate), "", 1, "R", false, 0, "")
	p.pdf.Ln(2)
}

func (p *painter) parties(v view) {
	half := p.width / 2
	left := []string{v.Buyer.Name}
	left = append(left, v.Buyer.Address...)
	left = append(left, "GST No.: "+v.Buyer.GSTNo)

	right := []string{v.Consignee.Name}
	right = append(right, v.Consignee.Address...)
	right = append(right, "GST No.: "+v.Consignee.GSTNo)

	p.font("B", 9)
	p.color(p.st.accent)
	p.pdf.CellFormat(half, lineHeight, v.Buyer.Label, p.st.border, 0, "L", false, 0, "")
	p.pdf.CellFormat(half, lineHeight, v.Consignee.Label, p.st.border, 1, "L", false, 0, "")
	p.color(rgb{})

	p.font("", 9)
	p.row([]float64{half, half}, []string{strings.Join(left, "\n"), strings.Join(right, "\n")},
		[]string{"L", "L"}, false)
	p.pdf.Ln(3)
}

func (p *painter) items(v view) {
	p.pdf.SetFillColor(p.st.header.r, p.st.header.g, p.st.header.b)
	p.font("B", 9)

	for i, t := range columnTitles {
		p.pdf.CellFormat(columns[i], 7, t, p.st.border, 0, columnAligns[i], true, 0, "")
	}

	p.pdf.Ln(-1)
	p.font("", 9)

	for i, r := range v.Rows {
		fill := p.st.zebra != nil && i%2 == 1
		if fill {
			p.pdf.SetFillColor(p.st.zebra.r, p.st.zebra.g, p.st.zebra.b)
		}

		if r.IsDiscount {
			p.color(p.st.discount)
			p.row([]float64{columns[0] + columns[1] + columns[2] + columns[3] + columns[4], columns[5]},
				[]string{r.Details, r.Amount}, []string{"R", "R"}, fill)
			p.color(rgb{})

			continue
		}

		p.row(columns[:], []string{r.No, r.Details, r.UOM, r.Qty, r.Rate, r.Amount}, columnAligns[:], fill)
	}
}

func (p *painter) totals(v view) {
	label := p.width - columns[5]

	p.font("", 9)
	p.pdf.CellFormat(label, 6, "Basic Amount", p.st.border, 0, "R", false, 0, "")
	p.pdf.CellFormat(columns[5], 6, p.tr(v.Basic), p.st.border, 1, "R", false, 0, "")
	p.pdf.CellFormat(label, 6, p.tr(v.GSTLabel), p.st.border, 0, "R", false, 0, "")
	p.pdf.CellFormat(columns[5], 6, p.tr(v.GST), p.st.border, 1, "R", false, 0, "")

	p.font("B", 10)
	p.color(p.st.accent)
	p.pdf.CellFormat(label, 7, "Net Amount", p.st.border, 0, "R", false, 0, "")
	p.pdf.CellFormat(columns[5], 7, p.tr(currencyMark+v.Net), p.st.border, 1, "R", false, 0, "")
	p.color(rgb{})

	p.pdf.Ln(2)
	p.font("B", 9)
	p.pdf.CellFormat(p.width, lineHeight, "Amount in Words", "", 1, "L", false, 0, "")
	p.font("I", 9)
	p.pdf.MultiCell(p.width, lineHeight, p.tr(v.InWords), "", "L", false)
	p.pdf.Ln(2)
}

func (p *painter) bank(v view) {
	half := p.width / 2
	bank := strings.Join([]string{
		"Account Name: " + v.Bank.CompanyName,
		"Account No.: " + v.Bank.AccountNo,
		"Branch: " + v.Bank.BranchName,
		"IFSC Code: " + v.Bank.IFSCCode,
	}, "\n")
	terms := strings.Join([]string{
		"Payment: " + v.Terms.Payment,
		"Insurance: " + v.Terms.Insurance,
		"Freight: " + v.Terms.Freight,
	}, "\n")

	p.font("B", 9)
	p.color(p.st.accent)
	p.pdf.CellFormat(half, lineHeight, "Bank Details", p.st.border, 0, "L", false, 0, "")
	p.pdf.CellFormat(half, lineHeight, "Terms", p.st.border, 1, "L", false, 0, "")
	p.color(rgb{})

	p.font("", 9)
	p.row([]float64{half, half}, []string{bank, terms}, []string{"L", "L"}, false)
	p.pdf.Ln(2)
}

func (p *painter) notes(v view) {
	if len(v.Notes) == 0 {
		return
	}

	p.font("B", 9)
	p.pdf.CellFormat(p.width, lineHeight, "Special Notes", "", 1, "L", false, 0, "")
	p.font("", 9)
	p.pdf.MultiCell(p.width, lineHeight, p.tr(strings.Join(v.Notes, "\n")), "", "L", false)
	p.pdf.Ln(2)
}

func (p *painter) signature(v view) {
	p.font("B", 9)
	p.pdf.CellFormat(p.width, lineHeight, p.tr("For "+v.Bank.CompanyName), "", 1, "R", false, 0, "")
	p.pdf.Ln(12)
	p.font("", 9)
	p.pdf.CellFormat(p.width, lineHeight, "Authorised Signatory", "", 1, "R", false, 0, "")
	p.pdf.Ln(3)
}

// row draws one table row whose height fits the tallest wrapped cell.
func (p *painter) row(widths []float64, cells, aligns []string, fill bool) {
	height := lineHeight

	for i, c := range cells {
		n := len(p.pdf.SplitLines([]byte(p.tr(c)), widths[i]-2))
		height = max(height, float64(n)*lineHeight)
	}

	_, pageHeight := p.pdf.GetPageSize()
	if p.pdf.GetY()+height > pageHeight-pageMargin {
		p.pdf.AddPage()
	}

	x, y := p.pdf.GetXY()

	for i, c := range cells {
		if fill || p.st.border == "1" {
			p.pdf.Rect(x, y, widths[i], height, rectStyle(fill, p.st.border == "1"))
		}

		p.pdf.SetXY(x, y)
		p.pdf.MultiCell(widths[i], lineHeight, p.tr(c), "", aligns[i], false)

		x += widths[i]
	}

	if p.st.border != "1" {
		p.pdf.Line(pageMargin, y+height, pageMargin+p.width, y+height)
	}

	p.pdf.SetXY(pageMargin, y+height)
}

func rectStyle(fill, border bool) string {
	switch {
	case fill && border:
		return "FD"
	case fill:
		return "F"
	default:
		return "D"
	}
}

package render_test

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/render"
)

func sampleDocument(t *testing.T) entity.Document {
	t.Helper()

	d := entity.NewDocument(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), entity.DefaultSeller())
	id := d.Items[0].ID
	discountID := uuid.Must(uuid.NewV4())

	return d.Apply(
		entity.SetField{Field: entity.FieldInvoiceNo, Value: "PI/24-25/017"},
		entity.SetField{Field: entity.FieldBuyerName, Value: "Acme <Tools> Ltd."},
		entity.SetField{Field: entity.FieldBuyerAddress, Value: "Plot 4, GIDC\nVatva, Ahmedabad"},
		entity.SetItemField{ID: id, Field: entity.ItemFieldDetails, Text: "Hydraulic breaker\nwith chisel"},
		entity.SetItemField{ID: id, Field: entity.ItemFieldQty, Number: decimal.NewNullDecimal(decimal.NewFromInt(10))},
		entity.SetItemField{ID: id, Field: entity.ItemFieldRate, Number: decimal.NewNullDecimal(decimal.NewFromInt(250))},
		entity.AddDiscount{ID: discountID},
		entity.SetItemField{ID: discountID, Field: entity.ItemFieldAmount, Number: decimal.NewNullDecimal(decimal.NewFromInt(-100))},
	)
}

func pngImage(t *testing.T) *entity.Image {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 40, 10))))

	return &entity.Image{Data: buf.Bytes(), Type: "PNG"}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		invoiceNo string
		want      string
	}{
		{name: "empty", invoiceNo: "", want: "Proforma_Invoice_Draft_2024-03-07.pdf"},
		{name: "plain", invoiceNo: "PI-7", want: "Proforma_Invoice_PI-7_2024-03-07.pdf"},
		{name: "slashes", invoiceNo: "PI/24-25/017", want: "Proforma_Invoice_PI-24-25-017_2024-03-07.pdf"},
		{name: "only unsafe", invoiceNo: "//", want: "Proforma_Invoice_Draft_2024-03-07.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, render.FileName(entity.Document{InvoiceNo: tt.invoiceNo}, now))
		})
	}
}

func TestFileName_UTCDate(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "after local midnight",
			now:  time.Date(2024, 3, 8, 2, 0, 0, 0, ist),
			want: "Proforma_Invoice_PI-7_2024-03-07.pdf",
		},
		{
			name: "before local midnight",
			now:  time.Date(2024, 3, 7, 23, 0, 0, 0, ist),
			want: "Proforma_Invoice_PI-7_2024-03-07.pdf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, render.FileName(entity.Document{InvoiceNo: "PI-7"}, tt.now))
		})
	}
}

func TestPDF(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)

	for _, tmpl := range []entity.Template{entity.TemplateClassic, entity.TemplateSmart} {
		tmpl := tmpl
		t.Run(tmpl.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := render.PDF(&buf, doc, tmpl, entity.Assets{Logo: pngImage(t), Footer: pngImage(t)})
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestPDF_WithoutAssets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, render.PDF(&buf, sampleDocument(t), entity.TemplateSmart, entity.Assets{}))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDF_ManyItems(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)
	for i := 0; i < 60; i++ {
		doc = doc.Apply(entity.AddItem{ID: uuid.Must(uuid.NewV4())})
	}

	var buf bytes.Buffer

	require.NoError(t, render.PDF(&buf, doc, entity.TemplateClassic, entity.Assets{}))
}

func TestPDF_Errors(t *testing.T) {
	t.Parallel()

	doc := sampleDocument(t)

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		err := render.PDF(&bytes.Buffer{}, doc, entity.Template("modern"), entity.Assets{})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("broken image", func(t *testing.T) {
		t.Parallel()

		broken := &entity.Image{Data: []byte("not an image"), Type: "PNG"}

		err := render.PDF(&bytes.Buffer{}, doc, entity.TemplateClassic, entity.Assets{Logo: broken})
		require.Error(t, err)
	})
}

func TestHTML_Print(t *testing.T) {
	t.Parallel()

	h := render.NewHTML("https://assets.example.com/logo.png", "")
	doc := sampleDocument(t)

	var buf bytes.Buffer

	require.NoError(t, h.Print(&buf, doc, entity.TemplateSmart))

	page := buf.String()
	require.Contains(t, page, `<body class="smart">`)
	require.Contains(t, page, "PROFORMA INVOICE")
	require.Contains(t, page, "PI/24-25/017")
	require.Contains(t, page, "Acme &lt;Tools&gt; Ltd.")
	require.Contains(t, page, "Hydraulic breaker\nwith chisel")
	require.Contains(t, page, "Special Discount")
	require.Contains(t, page, "2,500.00")
	require.Contains(t, page, "GST @ 18%")
	require.Contains(t, page, "Rs. 2,832.00")
	require.Contains(t, page, "Rupees Two Thousand Eight Hundred Thirty Two only")
	require.Contains(t, page, `src="https://assets.example.com/logo.png"`)
	require.NotContains(t, page, `class="footer"`)
}

func TestHTML_PrintUnknownTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := render.NewHTML("", "").Print(&buf, entity.Document{}, entity.Template(""))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
	require.Zero(t, buf.Len())
	require.False(t, strings.Contains(buf.String(), "<html"))
}

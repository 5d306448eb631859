package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/mocks"
	"github.com/samandr77/microservices/invoice/internal/repository"
	"github.com/samandr77/microservices/invoice/internal/service"
)

const logoURL = "https://assets.example.com/logo.png"

type TestService struct {
	repo     *repository.Repository
	assets   *mocks.MockAssets
	mailer   *mocks.MockMailer
	producer *mocks.MockProducer
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAssets := mocks.NewMockAssets(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)
	mockProducer := mocks.NewMockProducer(ctrl)

	repo := repository.New()

	s := service.New(repo, mockAssets, mockMailer, mockProducer, service.Config{
		LogoURL:  logoURL,
		DraftTTL: time.Hour,
		Seller:   entity.DefaultSeller(),
	})

	return &TestService{
		repo:     repo,
		assets:   mockAssets,
		mailer:   mockMailer,
		producer: mockProducer,
		s:        s,
	}
}

func logo(t *testing.T) entity.Image {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 30, 10))))

	return entity.Image{Data: buf.Bytes(), Type: "PNG"}
}

func num(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestService_NewDraft(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)
	r.False(draft.ID.IsNil())
	r.Len(draft.Document.Items, 1)
	r.Equal(entity.DefaultGSTRatePercent, draft.Document.GSTRate)
	r.Equal(entity.DefaultSeller().Company, draft.Document.Company)

	stored, err := ts.s.Draft(ctx, draft.ID)
	r.NoError(err)
	r.Equal(draft.ID, stored.ID)

	_, err = ts.s.Draft(ctx, uuid.Must(uuid.NewV4()))
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_ApplyEdits(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	itemID := draft.Document.Items[0].ID

	draft, err = ts.s.ApplyEdits(ctx, draft.ID,
		entity.SetField{Field: entity.FieldInvoiceNo, Value: "PI-7"},
		entity.SetItemField{ID: itemID, Field: entity.ItemFieldQty, Number: num(10)},
		entity.SetItemField{ID: itemID, Field: entity.ItemFieldRate, Number: num(250)},
	)
	r.NoError(err)
	r.Equal("PI-7", draft.Document.InvoiceNo)
	r.True(draft.Document.Totals.Net.Equal(decimal.NewFromInt(2950)))
	r.Equal("Two Thousand Nine Hundred Fifty only", draft.Document.Totals.InWords)
	r.False(draft.UpdatedAt.Before(draft.CreatedAt))

	stored, err := ts.s.Draft(ctx, draft.ID)
	r.NoError(err)
	r.Equal("PI-7", stored.Document.InvoiceNo)

	_, err = ts.s.ApplyEdits(ctx, uuid.Must(uuid.NewV4()), entity.SetGSTRate{Rate: 5})
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_Items(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	itemID, draft, err := ts.s.AddItem(ctx, draft.ID, false)
	r.NoError(err)

	item, ok := draft.Document.Item(itemID)
	r.True(ok)
	r.Equal(2, item.No)
	r.False(item.IsDiscount)

	discountID, draft, err := ts.s.AddItem(ctx, draft.ID, true)
	r.NoError(err)

	discount, ok := draft.Document.Item(discountID)
	r.True(ok)
	r.True(discount.IsDiscount)
	r.Equal(entity.DefaultDiscountLabel, discount.DiscountLabel)

	draft, err = ts.s.RemoveItem(ctx, draft.ID, draft.Document.Items[0].ID)
	r.NoError(err)
	r.Len(draft.Document.Items, 2)
	r.Equal(1, draft.Document.Items[0].No)

	_, _, err = ts.s.AddItem(ctx, uuid.Must(uuid.NewV4()), false)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_SetGSTRateAndReset(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	itemID := draft.Document.Items[0].ID

	_, err = ts.s.ApplyEdits(ctx, draft.ID,
		entity.SetItemField{ID: itemID, Field: entity.ItemFieldAmount, Number: num(1000)})
	r.NoError(err)

	updated, err := ts.s.SetGSTRate(ctx, draft.ID, 5)
	r.NoError(err)
	r.Equal(5, updated.Document.GSTRate)
	r.True(updated.Document.Totals.GST.Equal(decimal.NewFromInt(50)))

	reset, err := ts.s.Reset(ctx, draft.ID)
	r.NoError(err)
	r.Equal(draft.ID, reset.ID)
	r.Equal(entity.DefaultGSTRatePercent, reset.Document.GSTRate)
	r.Len(reset.Document.Items, 1)
	r.True(reset.Document.Totals.Net.IsZero())
	r.NotEqual(itemID, reset.Document.Items[0].ID)
}

func TestService_DeleteDraft(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	r.NoError(ts.s.DeleteDraft(ctx, draft.ID))
	r.ErrorIs(ts.s.DeleteDraft(ctx, draft.ID), entity.ErrNotFound)

	_, err = ts.s.Draft(ctx, draft.ID)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_ExportPDF(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	draft, err = ts.s.ApplyEdits(ctx, draft.ID,
		entity.SetField{Field: entity.FieldInvoiceNo, Value: "PI-7"},
		entity.SetItemField{ID: draft.Document.Items[0].ID, Field: entity.ItemFieldAmount, Number: num(1000)},
	)
	r.NoError(err)

	ts.assets.EXPECT().Image(gomock.Any(), logoURL).Return(logo(t), nil)
	ts.producer.EXPECT().SendInvoiceExported(gomock.Any(), draft.ID, "PI-7", "smart", "download",
		draft.Document.Totals.Net)

	name, pdf, err := ts.s.ExportPDF(ctx, draft.ID, entity.TemplateSmart)
	r.NoError(err)
	r.Equal("Proforma_Invoice_PI-7_"+time.Now().UTC().Format(time.DateOnly)+".pdf", name)
	r.True(bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestService_ExportPDF_AssetFailure(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	ts.assets.EXPECT().Image(gomock.Any(), logoURL).Return(entity.Image{}, errors.New("connection refused"))
	ts.producer.EXPECT().SendInvoiceExported(gomock.Any(), draft.ID, "", "classic", "download", gomock.Any())

	name, pdf, err := ts.s.ExportPDF(ctx, draft.ID, entity.TemplateClassic)
	r.NoError(err)
	r.Contains(name, "Proforma_Invoice_Draft_")
	r.NotEmpty(pdf)
}

func TestService_ExportPDF_Errors(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	_, _, err := ts.s.ExportPDF(ctx, uuid.Must(uuid.NewV4()), entity.TemplateClassic)
	r.ErrorIs(err, entity.ErrNotFound)

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	_, _, err = ts.s.ExportPDF(ctx, draft.ID, entity.Template("modern"))
	r.ErrorIs(err, entity.ErrInvalidArgument)
}

func TestService_PrintHTML(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	_, err = ts.s.ApplyEdits(ctx, draft.ID, entity.SetField{Field: entity.FieldBuyerName, Value: "Acme Ltd."})
	r.NoError(err)

	page, err := ts.s.PrintHTML(ctx, draft.ID, entity.TemplateClassic)
	r.NoError(err)
	r.Contains(string(page), "Acme Ltd.")
	r.Contains(string(page), logoURL)

	_, err = ts.s.PrintHTML(ctx, uuid.Must(uuid.NewV4()), entity.TemplateClassic)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_SendPDF(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	draft, err = ts.s.ApplyEdits(ctx, draft.ID, entity.SetField{Field: entity.FieldInvoiceNo, Value: "PI-9"})
	r.NoError(err)

	recipients := []string{"buyer@example.com"}

	ts.assets.EXPECT().Image(gomock.Any(), logoURL).Return(logo(t), nil)
	ts.mailer.EXPECT().
		SendPDF(gomock.Any(), recipients, "Proforma Invoice PI-9", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, _, body, filename string, pdf []byte) error {
			r.Contains(body, "Rupees Zero only")
			r.Contains(filename, "Proforma_Invoice_PI-9_")
			r.True(bytes.HasPrefix(pdf, []byte("%PDF-")))

			return nil
		})
	ts.producer.EXPECT().SendInvoiceExported(gomock.Any(), draft.ID, "PI-9", "classic", "email", gomock.Any())

	r.NoError(ts.s.SendPDF(ctx, draft.ID, entity.TemplateClassic, recipients))
}

func TestService_SendPDF_Errors(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)
	ctx := context.Background()

	draft, err := ts.s.NewDraft(ctx)
	r.NoError(err)

	err = ts.s.SendPDF(ctx, draft.ID, entity.TemplateClassic, nil)
	r.ErrorIs(err, entity.ErrInvalidArgument)

	ts.assets.EXPECT().Image(gomock.Any(), logoURL).Return(logo(t), nil)
	ts.mailer.EXPECT().SendPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: 550"))

	err = ts.s.SendPDF(ctx, draft.ID, entity.TemplateClassic, []string{"buyer@example.com"})
	r.ErrorContains(err, "smtp: 550")

	disabled := service.New(repository.New(), nil, nil, nil, service.Config{})

	err = disabled.SendPDF(ctx, draft.ID, entity.TemplateClassic, []string{"buyer@example.com"})
	r.ErrorIs(err, entity.ErrDisabled)
}

func TestService_ExpireDrafts(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	ctx := context.Background()

	s := service.New(repo, nil, nil, nil, service.Config{DraftTTL: 24 * time.Hour})

	before := time.Now().Add(-24 * time.Hour)

	repo.EXPECT().DeleteDraftsUpdatedBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int, error) {
			r.False(cutoff.Before(before))
			r.True(cutoff.Before(time.Now().Add(-23 * time.Hour)))

			return 2, nil
		})

	r.NoError(s.ExpireDrafts(ctx))

	repo.EXPECT().DeleteDraftsUpdatedBefore(gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))

	r.ErrorContains(s.ExpireDrafts(ctx), "boom")
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    entity.Template
		wantErr bool
	}{
		{name: "empty defaults to classic", in: "", want: entity.TemplateClassic},
		{name: "classic", in: "classic", want: entity.TemplateClassic},
		{name: "smart", in: "smart", want: entity.TemplateSmart},
		{name: "unknown", in: "Smart", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := service.ParseTemplate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

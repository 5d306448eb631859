package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/render"
	"github.com/samandr77/microservices/invoice/pkg/inr"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateDraft(ctx context.Context, draft entity.Draft) error
	Draft(ctx context.Context, id uuid.UUID) (entity.Draft, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, updatedAt time.Time, fn func(entity.Document) entity.Document) (entity.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	DeleteDraftsUpdatedBefore(ctx context.Context, t time.Time) (int, error)
}

type Assets interface {
	Image(ctx context.Context, url string) (entity.Image, error)
}

type Mailer interface {
	SendPDF(ctx context.Context, recipients []string, subject, body, filename string, pdf []byte) error
}

type Producer interface {
	SendInvoiceExported(ctx context.Context, draftID uuid.UUID, invoiceNo, template, channel string, netAmount decimal.Decimal)
}

type Config struct {
	LogoURL   string
	FooterURL string
	DraftTTL  time.Duration
	Seller    entity.Seller
}

type Service struct {
	repo     Repository
	assets   Assets
	mailer   Mailer
	producer Producer
	html     *render.HTML
	cfg      Config
}

// New builds the service. A nil mailer disables e-mail export.
func New(repo Repository, assets Assets, mailer Mailer, producer Producer, cfg Config) *Service {
	return &Service{
		repo:     repo,
		assets:   assets,
		mailer:   mailer,
		producer: producer,
		html:     render.NewHTML(cfg.LogoURL, cfg.FooterURL),
		cfg:      cfg,
	}
}

func (s *Service) NewDraft(ctx context.Context) (entity.Draft, error) {
	now := time.Now()

	draft := entity.Draft{
		ID:        uuid.Must(uuid.NewV4()),
		Document:  entity.NewDocument(now, s.cfg.Seller),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.CreateDraft(ctx, draft)
	if err != nil {
		return entity.Draft{}, fmt.Errorf("s.repo.CreateDraft: %w", err)
	}

	slog.InfoContext(ctx, "draft created", "draft_id", draft.ID)

	return draft, nil
}

func (s *Service) Draft(ctx context.Context, id uuid.UUID) (entity.Draft, error) {
	return s.repo.Draft(ctx, id)
}

// ApplyEdits applies the edits in order as one atomic step.
func (s *Service) ApplyEdits(ctx context.Context, id uuid.UUID, edits ...entity.Edit) (entity.Draft, error) {
	return s.update(ctx, id, func(d entity.Document) entity.Document {
		return d.Apply(edits...)
	})
}

// AddItem appends a regular item or, when discount is set, a discount row, and returns its id.
func (s *Service) AddItem(ctx context.Context, id uuid.UUID, discount bool) (uuid.UUID, entity.Draft, error) {
	itemID := uuid.Must(uuid.NewV4())

	var edit entity.Edit = entity.AddItem{ID: itemID}
	if discount {
		edit = entity.AddDiscount{ID: itemID}
	}

	draft, err := s.ApplyEdits(ctx, id, edit)
	if err != nil {
		return uuid.Nil, entity.Draft{}, err
	}

	return itemID, draft, nil
}

func (s *Service) RemoveItem(ctx context.Context, id, itemID uuid.UUID) (entity.Draft, error) {
	return s.ApplyEdits(ctx, id, entity.RemoveItem{ID: itemID})
}

func (s *Service) SetGSTRate(ctx context.Context, id uuid.UUID, rate int) (entity.Draft, error) {
	return s.ApplyEdits(ctx, id, entity.SetGSTRate{Rate: rate})
}

// Reset replaces the document with the defaults a new draft starts with.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (entity.Draft, error) {
	now := time.Now()

	return s.update(ctx, id, func(entity.Document) entity.Document {
		return entity.NewDocument(now, s.cfg.Seller)
	})
}

func (s *Service) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteDraft(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.DeleteDraft: %w", err)
	}

	slog.InfoContext(ctx, "draft deleted")

	return nil
}

// ExportPDF renders the draft and returns the download file name with the PDF bytes.
func (s *Service) ExportPDF(ctx context.Context, id uuid.UUID, tmpl entity.Template) (string, []byte, error) {
	draft, err := s.repo.Draft(ctx, id)
	if err != nil {
		return "", nil, err
	}

	name, pdf, err := s.renderPDF(ctx, draft.Document, tmpl)
	if err != nil {
		return "", nil, err
	}

	s.exported(ctx, draft, tmpl, entity.ExportChannelDownload)

	return name, pdf, nil
}

// PrintHTML renders the draft as a page for the browser's print dialog.
func (s *Service) PrintHTML(ctx context.Context, id uuid.UUID, tmpl entity.Template) ([]byte, error) {
	draft, err := s.repo.Draft(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = s.html.Print(&buf, draft.Document, tmpl)
	if err != nil {
		return nil, fmt.Errorf("s.html.Print: %w", err)
	}

	return buf.Bytes(), nil
}

// SendPDF e-mails the rendered draft to the recipients. It returns entity.ErrDisabled when no
// mail server is configured.
func (s *Service) SendPDF(ctx context.Context, id uuid.UUID, tmpl entity.Template, recipients []string) error {
	if s.mailer == nil {
		return fmt.Errorf("%w: mailer is not configured", entity.ErrDisabled)
	}

	if len(recipients) == 0 {
		return fmt.Errorf("%w: no recipients", entity.ErrInvalidArgument)
	}

	draft, err := s.repo.Draft(ctx, id)
	if err != nil {
		return err
	}

	name, pdf, err := s.renderPDF(ctx, draft.Document, tmpl)
	if err != nil {
		return err
	}

	subject, body := mailText(draft.Document)

	err = s.mailer.SendPDF(ctx, recipients, subject, body, name, pdf)
	if err != nil {
		return fmt.Errorf("s.mailer.SendPDF: %w", err)
	}

	slog.InfoContext(ctx, "invoice sent", "recipients", len(recipients))

	s.exported(ctx, draft, tmpl, entity.ExportChannelEmail)

	return nil
}

// ExpireDrafts removes drafts that were not touched for longer than the configured TTL.
func (s *Service) ExpireDrafts(ctx context.Context) error {
	n, err := s.repo.DeleteDraftsUpdatedBefore(ctx, time.Now().Add(-s.cfg.DraftTTL))
	if err != nil {
		return fmt.Errorf("s.repo.DeleteDraftsUpdatedBefore: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired drafts removed", "count", n)
	}

	return nil
}

func (s *Service) update(ctx context.Context, id uuid.UUID, fn func(entity.Document) entity.Document) (entity.Draft, error) {
	draft, err := s.repo.UpdateDraft(ctx, id, time.Now(), fn)
	if err != nil {
		return entity.Draft{}, fmt.Errorf("s.repo.UpdateDraft: %w", err)
	}

	return draft, nil
}

func (s *Service) renderPDF(ctx context.Context, doc entity.Document, tmpl entity.Template) (string, []byte, error) {
	if err := tmpl.Validate(); err != nil {
		return "", nil, err
	}

	assets := entity.Assets{
		Logo:   s.image(ctx, s.cfg.LogoURL),
		Footer: s.image(ctx, s.cfg.FooterURL),
	}

	var buf bytes.Buffer

	err := render.PDF(&buf, doc, tmpl, assets)
	if err != nil {
		return "", nil, fmt.Errorf("render.PDF: %w", err)
	}

	return render.FileName(doc, time.Now()), buf.Bytes(), nil
}

// image fetches an optional asset. A failed fetch leaves the image out of the rendering.
func (s *Service) image(ctx context.Context, url string) *entity.Image {
	if url == "" {
		return nil
	}

	img, err := s.assets.Image(ctx, url)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("asset %s skipped: %s", url, err))
		return nil
	}

	return &img
}

func (s *Service) exported(ctx context.Context, draft entity.Draft, tmpl entity.Template, channel entity.ExportChannel) {
	s.producer.SendInvoiceExported(ctx, draft.ID, draft.Document.InvoiceNo, tmpl.String(), string(channel),
		draft.Document.Totals.Net)
}

func mailText(doc entity.Document) (string, string) {
	no := doc.InvoiceNo
	if no == "" {
		no = "(draft)"
	}

	subject := "Proforma Invoice " + no
	body := fmt.Sprintf("Dear Sir/Madam,\n\nPlease find attached proforma invoice %s for Rs. %s (Rupees %s).\n\nRegards,\n%s\n",
		no, inr.FormatCurrency(doc.Totals.Net), doc.Totals.InWords, doc.Bank.CompanyName)

	return subject, body
}

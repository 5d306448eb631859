package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/service"
	"github.com/samandr77/microservices/invoice/pkg/inr"
)

// @title Proforma Invoice API
// @version 1.0
// @description Drafts of proforma invoices with live totals, GST and amount in words; PDF and print export.
// @BasePath /api

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	NewDraft(ctx context.Context) (entity.Draft, error)
	Draft(ctx context.Context, id uuid.UUID) (entity.Draft, error)
	ApplyEdits(ctx context.Context, id uuid.UUID, edits ...entity.Edit) (entity.Draft, error)
	AddItem(ctx context.Context, id uuid.UUID, discount bool) (uuid.UUID, entity.Draft, error)
	RemoveItem(ctx context.Context, id, itemID uuid.UUID) (entity.Draft, error)
	SetGSTRate(ctx context.Context, id uuid.UUID, rate int) (entity.Draft, error)
	Reset(ctx context.Context, id uuid.UUID) (entity.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
	ExportPDF(ctx context.Context, id uuid.UUID, tmpl entity.Template) (string, []byte, error)
	PrintHTML(ctx context.Context, id uuid.UUID, tmpl entity.Template) ([]byte, error)
	SendPDF(ctx context.Context, id uuid.UUID, tmpl entity.Template, recipients []string) error
}

var validate = validator.New()

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type DraftResponse struct {
	ID        uuid.UUID       `json:"id"`
	Document  entity.Document `json:"document"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func newDraftResponse(d entity.Draft) DraftResponse {
	return DraftResponse{
		ID:        d.ID,
		Document:  d.Document,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CreateDraft starts a new invoice draft
// @Summary Create draft
// @Description Creates a draft with one blank item, seller presets, today's dates and 18% GST
// @Tags invoices
// @Produce json
// @Success 201 {object} DraftResponse
// @Failure 500 {object} ErrorResponse "Failed to create draft"
// @Router /invoices [post]
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	draft, err := h.s.NewDraft(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create draft")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newDraftResponse(draft))
}

// Draft returns the current snapshot of a draft
// @Summary Get draft
// @Tags invoices
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid draft id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Router /invoices/{id} [get]
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	draft, err := h.s.Draft(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get draft")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newDraftResponse(draft))
}

// DeleteDraft discards a draft
// @Summary Delete draft
// @Tags invoices
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid draft id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Router /invoices/{id} [delete]
func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	err := h.s.DeleteDraft(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to delete draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type EditsRequest struct {
	Edits []EditRequest `json:"edits" validate:"required,dive"`
}

// EditRequest is one edit of a batch. Type selects which of the other fields are read:
// setField uses field and value, setItemField uses id, field and value, removeItem uses id and
// setGSTRate uses rate. Numeric values may be JSON numbers or strings; anything that does not
// parse as a number clears the value. Numbers of 1e15 or more in magnitude are rejected.
type EditRequest struct {
	Type  string          `json:"type" validate:"required,oneof=setField setItemField addItem addDiscount removeItem setGSTRate"`
	Field string          `json:"field,omitempty"`
	ID    string          `json:"id,omitempty" validate:"omitempty,uuid"`
	Value json.RawMessage `json:"value,omitempty" swaggertype:"string"`
	Rate  *int            `json:"rate,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *EditsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrInvalidArgument, err)
	}

	return nil
}

func (r EditRequest) Edit() (entity.Edit, error) {
	switch r.Type {
	case "setField":
		return entity.SetField{Field: entity.DocField(r.Field), Value: text(r.Value)}, nil
	case "setItemField":
		id, err := uuid.FromString(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: item id: %w", entity.ErrInvalidArgument, err)
		}

		field := entity.ItemField(r.Field)
		if field.IsNumeric() {
			n, err := number(r.Value)
			if err != nil {
				return nil, err
			}

			return entity.SetItemField{ID: id, Field: field, Number: n}, nil
		}

		return entity.SetItemField{ID: id, Field: field, Text: text(r.Value)}, nil
	case "addItem":
		return entity.AddItem{ID: uuid.Must(uuid.NewV4())}, nil
	case "addDiscount":
		return entity.AddDiscount{ID: uuid.Must(uuid.NewV4())}, nil
	case "removeItem":
		id, err := uuid.FromString(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: item id: %w", entity.ErrInvalidArgument, err)
		}

		return entity.RemoveItem{ID: id}, nil
	case "setGSTRate":
		if r.Rate == nil {
			return nil, fmt.Errorf("%w: rate is required", entity.ErrInvalidArgument)
		}

		return entity.SetGSTRate{Rate: *r.Rate}, nil
	default:
		return nil, fmt.Errorf("%w: unknown edit type %q", entity.ErrInvalidArgument, r.Type)
	}
}

// ApplyEdits applies an ordered batch of edits
// @Summary Apply edits
// @Description Applies the edits in order as one step and returns the recomputed snapshot
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param EditsRequest body EditsRequest true "Edits"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 422 {object} ErrorResponse "Invalid edit"
// @Router /invoices/{id}/edits [post]
func (h *Handler) ApplyEdits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	var req EditsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = req.Validate()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid edits")
		return
	}

	edits := make([]entity.Edit, 0, len(req.Edits))

	for _, e := range req.Edits {
		edit, err := e.Edit()
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid edits")
			return
		}

		edits = append(edits, edit)
	}

	draft, err := h.s.ApplyEdits(ctx, id, edits...)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to apply edits")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newDraftResponse(draft))
}

type AddItemRequest struct {
	Discount bool `json:"discount"`
}

type AddItemResponse struct {
	ItemID uuid.UUID `json:"itemId"`
	DraftResponse
}

// AddItem inserts a line item or a discount row
// @Summary Add item
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param AddItemRequest body AddItemRequest false "Item kind"
// @Success 201 {object} AddItemResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Router /invoices/{id}/items [post]
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	var req AddItemRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	itemID, draft, err := h.s.AddItem(ctx, id, req.Discount)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to add item")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, AddItemResponse{ItemID: itemID, DraftResponse: newDraftResponse(draft)})
}

// RemoveItem removes a line item and renumbers the rest
// @Summary Remove item
// @Tags invoices
// @Produce json
// @Param id path string true "Draft ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Router /invoices/{id}/items/{itemId} [delete]
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	itemID, err := uuid.FromString(chi.URLParam(r, "itemId"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	draft, err := h.s.RemoveItem(ctx, id, itemID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to remove item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newDraftResponse(draft))
}

type GSTRateRequest struct {
	Rate *int `json:"rate" validate:"required,min=0,max=100"`
}

// SetGSTRate changes the GST rate
// @Summary Set GST rate
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param GSTRateRequest body GSTRateRequest true "Rate in percent, 0 to 100"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 422 {object} ErrorResponse "Rate out of range"
// @Router /invoices/{id}/gst-rate [put]
func (h *Handler) SetGSTRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	var req GSTRateRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "GST rate must be between 0 and 100")
		return
	}

	draft, err := h.s.SetGSTRate(ctx, id, *req.Rate)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to set GST rate")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newDraftResponse(draft))
}

// Reset restores the defaults of a new draft
// @Summary Reset draft
// @Tags invoices
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} ErrorResponse "Invalid draft id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Router /invoices/{id}/reset [post]
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	draft, err := h.s.Reset(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to reset draft")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newDraftResponse(draft))
}

// PDF downloads the draft as PDF
// @Summary Download PDF
// @Tags export
// @Produce application/pdf
// @Param id path string true "Draft ID"
// @Param template query string false "classic or smart" Enums(classic, smart)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid draft id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 422 {object} ErrorResponse "Unknown template"
// @Failure 500 {object} ErrorResponse "PDF export failed"
// @Router /invoices/{id}/pdf [get]
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	tmpl, err := service.ParseTemplate(r.URL.Query().Get("template"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Unknown template")
		return
	}

	name, pdf, err := h.s.ExportPDF(ctx, id, tmpl)
	if err != nil {
		sendServiceErr(ctx, w, err, "PDF export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(pdf)
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}

// Print returns the draft as a printable HTML page
// @Summary Print view
// @Tags export
// @Produce html
// @Param id path string true "Draft ID"
// @Param template query string false "classic or smart" Enums(classic, smart)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse "Invalid draft id"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 422 {object} ErrorResponse "Unknown template"
// @Router /invoices/{id}/print [get]
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	tmpl, err := service.ParseTemplate(r.URL.Query().Get("template"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Unknown template")
		return
	}

	page, err := h.s.PrintHTML(ctx, id, tmpl)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to render print view")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(page)
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}

type SendRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,max=20,dive,email"`
	Template   string   `json:"template" validate:"omitempty,oneof=classic smart"`
}

// Send e-mails the draft as a PDF attachment
// @Summary Send by e-mail
// @Tags export
// @Accept json
// @Param id path string true "Draft ID"
// @Param SendRequest body SendRequest true "Recipients and template"
// @Success 202
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Draft not found"
// @Failure 422 {object} ErrorResponse "Invalid recipients"
// @Failure 503 {object} ErrorResponse "E-mail is not configured"
// @Router /invoices/{id}/send [post]
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := draftID(ctx, w, r)
	if !ok {
		return
	}

	var req SendRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validate.Struct(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid recipients")
		return
	}

	tmpl, err := service.ParseTemplate(req.Template)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Unknown template")
		return
	}

	err = h.s.SendPDF(ctx, id, tmpl, req.Recipients)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to send invoice")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

type WordsResponse struct {
	Amount  string `json:"amount"`
	InWords string `json:"inWords"`
}

// Words spells an amount the way it is printed on invoices
// @Summary Amount in words
// @Tags calc
// @Produce json
// @Param amount query string true "Amount, e.g. 2950.75"
// @Success 200 {object} WordsResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 422 {object} ErrorResponse "Amount out of range"
// @Router /calc/words [get]
func (h *Handler) Words(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, err := decimal.NewFromString(strings.TrimSpace(r.URL.Query().Get("amount")))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid amount")
		return
	}

	err = checkRange(amount)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Amount out of range")
		return
	}

	SendJSON(ctx, w, http.StatusOK, WordsResponse{
		Amount:  inr.FormatCurrency(amount),
		InWords: inr.AmountInWords(amount),
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service unavailable")
		return
	}
}

func draftID(ctx context.Context, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid draft id")
		return uuid.Nil, false
	}

	return id, true
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Draft not found")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, msg)
	case errors.Is(err, entity.ErrDisabled):
		SendJSONErr(ctx, w, http.StatusServiceUnavailable, err, "E-mail is not configured")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msg)
	}
}

// text reads a JSON string value. null and non-strings read as empty.
func text(raw json.RawMessage) string {
	var s string

	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

// Bounds on numbers read from requests.
const (
	maxExponent = 15
	minExponent = -20
)

var maxMagnitude = decimal.New(1, maxExponent)

// checkRange rejects magnitudes of 1e15 and above and exponents outside [-20, 15].
// The exponent is checked first, huge exponents are never expanded.
func checkRange(d decimal.Decimal) error {
	if e := d.Exponent(); e > maxExponent || e < minExponent {
		return fmt.Errorf("%w: number is out of range", entity.ErrInvalidArgument)
	}

	if d.Abs().GreaterThanOrEqual(maxMagnitude) {
		return fmt.Errorf("%w: number is out of range", entity.ErrInvalidArgument)
	}

	return nil
}

// number coerces a JSON number or numeric string. Anything else is unset.
// A number out of range is an error.
func number(raw json.RawMessage) (decimal.NullDecimal, error) {
	var v any

	if err := json.Unmarshal(raw, &v); err != nil {
		return decimal.NullDecimal{}, nil
	}

	var s string

	switch v := v.(type) {
	case string:
		s = strings.TrimSpace(v)
	case float64:
		s = strings.TrimSpace(string(raw))
	default:
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, nil
	}

	if err := checkRange(d); err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NewNullDecimal(d), nil
}

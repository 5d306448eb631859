package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/invoice/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Get("/calc/words", h.Words)

		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", h.CreateDraft)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(mw.DraftID)
				r.Get("/", h.Draft)
				r.Delete("/", h.DeleteDraft)
				r.Post("/edits", h.ApplyEdits)
				r.Post("/items", h.AddItem)
				r.Delete("/items/{itemId}", h.RemoveItem)
				r.Put("/gst-rate", h.SetGSTRate)
				r.Post("/reset", h.Reset)
				r.Get("/pdf", h.PDF)
				r.Get("/print", h.Print)
				r.Post("/send", h.Send)
			})
		})
	})

	return mux
}

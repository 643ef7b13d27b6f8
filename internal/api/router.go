package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/DeNice-r/liqpay-go/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/donate", func(r chi.Router) {
			r.Post("/", h.Donate)
			r.Post("/form", h.DonateForm)
			r.Post("/sign", h.SignPayload)
		})

		r.Route("/callbacks", func(r chi.Router) {
			r.Post("/liqpay", h.LiqPayCallback)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Donations)
			r.Get("/events", h.PaymentEvents)
			r.Get("/{id}", h.DonationByID)
		})
	})

	return mux
}

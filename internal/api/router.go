package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/voucher/docs" // swagger docs
	"github.com/samandr77/microservices/voucher/pkg/metrics"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.Handle("/metrics", metrics.Handler())
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/vouchers", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/scan", h.ScanVoucher)
			r.Get("/{code}", h.LocateVoucher)
			r.Post("/{id}/settle", h.SettleVoucher)
			r.Get("/{id}/reconcile", h.Reconcile)
		})

		r.Route("/requisitions", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.IssueRequisition)
			r.Get("/qr/{code}", h.QRCode)
		})

		r.Route("/receipts", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/", h.Receipts)
			r.Get("/export", h.ExportReceipts)
			r.Get("/{id}/pdf", h.ReceiptPDF)
		})
	})

	return mux
}

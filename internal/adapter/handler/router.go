package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handlers struct {
	Bookings       *BookingHandler
	DriverPayments *DriverPaymentHandler
	Drivers        *DriverHandler
	Companies      *CompanyHandler
	Finance        *FinanceHandler
	Fuel           *FuelHandler
}

func NewRouter(h Handlers, log *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.Bookings.CreateBooking)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Bookings.GetBooking)
			r.Put("/status", h.Bookings.UpdateStatus)
			r.Put("/billed", h.Bookings.SetBilled)

			r.Post("/expenses", h.Bookings.AddExpense)
			r.Get("/expenses", h.Bookings.ListExpenses)

			r.Post("/payments", h.Bookings.AddPayment)
			r.Get("/payments", h.Bookings.ListPayments)

			r.Post("/driver-payments", h.DriverPayments.AddDriverPayment)
			r.Get("/driver-payments", h.DriverPayments.ListDriverPayments)
			r.Put("/driver-payments/{paymentId}", h.DriverPayments.UpdateDriverPayment)
			r.Delete("/driver-payments/{paymentId}", h.DriverPayments.DeleteDriverPayment)

			r.Get("/fuel-entries", h.Fuel.ListForBooking)
		})
	})

	r.Route("/drivers", func(r chi.Router) {
		r.Post("/", h.Drivers.CreateDriver)
		r.Get("/{id}", h.Drivers.GetDriver)
		r.Post("/{id}/advances", h.Drivers.AddAdvance)
		r.Put("/{id}/settle-advance", h.Drivers.SettleAdvance)
	})

	r.Route("/companies", func(r chi.Router) {
		r.Post("/", h.Companies.CreateCompany)
		r.Get("/{id}", h.Companies.GetCompany)
		r.Post("/{id}/payments", h.Companies.RecordPayment)
	})

	r.Route("/finance", func(r chi.Router) {
		r.Get("/drivers/{id}/payments", h.Finance.DriverStatement)
		r.Get("/payments", h.Finance.ListPayments)
	})

	r.Route("/fuel-entries", func(r chi.Router) {
		r.Post("/", h.Fuel.CreateFuelEntry)
		r.Get("/{id}", h.Fuel.GetFuelEntry)
		r.Put("/{id}", h.Fuel.UpdateFuelEntry)
	})

	r.Get("/vehicles/{id}/fuel-entries", h.Fuel.ListForVehicle)

	return r
}

func accessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

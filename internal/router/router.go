package router

import (
	"net/http"

	"stitchkart/internal/auth"
	"stitchkart/internal/handler"
	"stitchkart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// Catalogue reads are public; cart, checkout and own-order routes require a
// customer token; order administration and config routes require an admin
// token.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	settingHandler *handler.SettingHandler,
	verifier *auth.Verifier,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.GetAll)
		r.Get("/products/{productID}", productHandler.GetByID)

		r.Route("/customer", func(r chi.Router) {
			r.Use(verifier.Require(auth.RealmCustomer, logger))

			r.Get("/cart", cartHandler.Get)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{itemID}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{itemID}", cartHandler.RemoveItem)

			r.Post("/checkout", checkoutHandler.Checkout)

			r.Get("/orders", orderHandler.ListMine)
			r.Get("/orders/{orderID}", orderHandler.GetMine)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(verifier.Require(auth.RealmAdmin, logger))

			r.Get("/orders", orderHandler.ListAll)
			r.Put("/orders/{orderID}/status", orderHandler.UpdateStatus)

			r.Post("/configs", settingHandler.Create)
			r.Get("/configs/{key}", settingHandler.Get)
			r.Put("/configs/{key}", settingHandler.Update)
			r.Delete("/configs/{key}", settingHandler.Delete)
		})
	})

	return r
}

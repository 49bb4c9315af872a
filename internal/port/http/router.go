package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/security"
)

// SetupRoutes wires the storefront API. The csrf token endpoint is the only
// route outside the guard so that clients can bootstrap a token.
func SetupRoutes(mux *chi.Mux, h *Handler, csrf *security.CSRFManager, log logger.Logger) {
	mux.Use(RequestLogger(log))

	mux.Get("/api/csrf", h.HandleGetCSRFToken)

	mux.Group(func(r chi.Router) {
		r.Use(CSRFGuard(csrf, log))

		r.Get("/api/listings", h.HandleBrowseListings)
		r.Get("/api/listings/{id}", h.HandleGetListing)
		r.Post("/api/listings/{id}/like", h.HandleToggleLike)
		r.Post("/api/listings/refresh", h.HandleRefreshCatalog)

		r.Get("/api/filters", h.HandleGetFilters)
		r.Put("/api/filters", h.HandleUpdateFilters)
		r.Post("/api/filters/reset", h.HandleResetFilters)

		r.Get("/api/cart", h.HandleGetCart)
		r.Post("/api/cart/items", h.HandleAddCartItem)
		r.Delete("/api/cart/items/{id}", h.HandleRemoveCartItem)
		r.Delete("/api/cart", h.HandleClearCart)

		r.Get("/api/wallet", h.HandleWalletStatus)
		r.Post("/api/wallet/connect", h.HandleWalletConnect)
		r.Post("/api/wallet/disconnect", h.HandleWalletDisconnect)

		r.Post("/api/purchase", h.HandleBeginPurchase)
		r.Post("/api/purchase/confirm", h.HandleConfirmPurchase)
		r.Post("/api/purchase/cancel", h.HandleCancelPurchase)
	})
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	"github.com/kurobe2240/NFT-EC/internal/security"
	"github.com/kurobe2240/NFT-EC/internal/service"
)

// Handler exposes the storefront core over JSON. It owns no business logic;
// every operation delegates to a service.
type Handler struct {
	catalog  service.CatalogService
	cart     service.CartService
	wallet   service.WalletService
	purchase service.PurchaseService
	csrf     *security.CSRFManager
	log      logger.Logger
}

func NewHandler(
	catalog service.CatalogService,
	cart service.CartService,
	wallet service.WalletService,
	purchase service.PurchaseService,
	csrf *security.CSRFManager,
	log logger.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		cart:     cart,
		wallet:   wallet,
		purchase: purchase,
		csrf:     csrf,
		log:      log,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) HandleGetCSRFToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.csrf.Token(r.Context())
	if err != nil {
		h.log.Errorf("Failed to issue csrf token: %v", err)
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type browseResponse struct {
	service.CatalogPage
	Page     int             `json:"page"`
	Criteria entity.Criteria `json:"criteria"`
}

func (h *Handler) HandleBrowseListings(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			h.writeError(w, http.StatusBadRequest, errors.New("page must be a positive integer"))
			return
		}
		h.catalog.SetPage(page)
	}

	h.writeJSON(w, http.StatusOK, browseResponse{
		CatalogPage: h.catalog.Browse(),
		Page:        h.catalog.Page(),
		Criteria:    h.catalog.Criteria(),
	})
}

func (h *Handler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	l, err := h.catalog.GetListing(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	l, err := h.catalog.ToggleLike(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, l)
}

func (h *Handler) HandleRefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Refresh(r.Context()); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Criteria())
}

func (h *Handler) HandleUpdateFilters(w http.ResponseWriter, r *http.Request) {
	var c entity.Criteria
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.log.Warnf("Invalid request body for UpdateFilters: %v", err)
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := h.catalog.SetCriteria(r.Context(), c); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.catalog.Criteria())
}

func (h *Handler) HandleResetFilters(w http.ResponseWriter, r *http.Request) {
	h.catalog.ResetCriteria(r.Context())
	h.writeJSON(w, http.StatusOK, h.catalog.Criteria())
}

type cartResponse struct {
	Items []entity.Listing `json:"items"`
	Total float64          `json:"total"`
}

func (h *Handler) cartView() cartResponse {
	return cartResponse{Items: h.cart.Items(), Total: h.cart.Total()}
}

func (h *Handler) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.cartView())
}

type addCartItemRequest struct {
	ID string `json:"id"`
}

func (h *Handler) HandleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	l, err := h.catalog.GetListing(req.ID)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	h.cart.AddToCart(r.Context(), l)
	h.writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) HandleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.cart.RemoveFromCart(r.Context(), id)
	h.writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) HandleClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.ClearCart(r.Context())
	h.writeJSON(w, http.StatusOK, h.cartView())
}

func (h *Handler) HandleWalletStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.wallet.Status())
}

func (h *Handler) HandleWalletConnect(w http.ResponseWriter, r *http.Request) {
	if err := h.wallet.Connect(r.Context()); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.wallet.Status())
}

func (h *Handler) HandleWalletDisconnect(w http.ResponseWriter, r *http.Request) {
	h.wallet.Disconnect(r.Context())
	h.writeJSON(w, http.StatusOK, h.wallet.Status())
}

type purchaseResponse struct {
	State     service.PurchaseState `json:"state"`
	ReceiptID string                `json:"receiptId,omitempty"`
}

func (h *Handler) HandleBeginPurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.purchase.Begin(r.Context()); err != nil {
		switch {
		case errors.Is(err, entity.ErrPurchaseInFlight):
			h.writeError(w, http.StatusConflict, err)
		default:
			h.writeError(w, http.StatusBadRequest, err)
		}
		return
	}
	h.writeJSON(w, http.StatusOK, purchaseResponse{State: h.purchase.State()})
}

func (h *Handler) HandleConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	receiptID, err := h.purchase.Confirm(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPurchaseInFlight), errors.Is(err, entity.ErrNoPendingPurchase):
			h.writeError(w, http.StatusConflict, err)
		case errors.Is(err, entity.ErrDebitDeclined):
			h.writeError(w, http.StatusPaymentRequired, err)
		default:
			h.log.Errorf("Purchase confirmation failed: %v", err)
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	h.writeJSON(w, http.StatusOK, purchaseResponse{State: h.purchase.State(), ReceiptID: receiptID})
}

func (h *Handler) HandleCancelPurchase(w http.ResponseWriter, r *http.Request) {
	h.purchase.Cancel(r.Context())
	h.writeJSON(w, http.StatusOK, purchaseResponse{State: h.purchase.State()})
}

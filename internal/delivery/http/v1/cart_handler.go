package v1

import (
	"encoding/json"
	"log/slog"
	"mohini-backend/internal/domain"
	"mohini-backend/internal/usecase"
	"net/http"
	"strings"
)

type CartHandler struct {
	cartUC  *usecase.CartUsecase
	orderUC *usecase.OrderUsecase
}

func NewCartHandler(cartUC *usecase.CartUsecase, orderUC *usecase.OrderUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, orderUC: orderUC}
}

// sessionID pulls the visitor's session from context. The session middleware
// guarantees it is set on every request.
func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(domain.SessionContextKey).(string)
	return sid
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := h.cartUC.GetCart(r.Context(), sessionID(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	view, err := h.cartUC.AddToCart(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		http.Error(w, "Product ID required", http.StatusBadRequest)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	view := h.cartUC.UpdateQuantity(r.Context(), sessionID(r), productID, req.Quantity)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		http.Error(w, "Product ID required", http.StatusBadRequest)
		return
	}

	view := h.cartUC.RemoveFromCart(r.Context(), sessionID(r), productID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartUC.ClearCart(r.Context(), sessionID(r))

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req usecase.CheckoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.orderUC.Checkout(r.Context(), sessionID(r), req)
	if err != nil {
		slog.Error("Checkout failed", "error", err)
		switch {
		case strings.Contains(err.Error(), "required"):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case strings.Contains(err.Error(), "cart is empty"):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Failed to place order", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})
}

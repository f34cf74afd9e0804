package v1

import (
	"encoding/json"
	"log/slog"
	"mohini-backend/internal/usecase"
	"net/http"
	"strings"
)

type AdminOrderHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{orderUC: uc}
}

// ListOrders returns all orders with customer and line item details,
// newest first.
func (h *AdminOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUC.GetAllOrders(r.Context())
	if err != nil {
		slog.Error("Failed to list orders", "error", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Order ID required", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := h.orderUC.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case strings.Contains(err.Error(), "invalid order status"):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case strings.Contains(err.Error(), "not found"):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"id":     id,
		"status": req.Status,
	})
}

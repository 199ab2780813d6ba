package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DavidBen48/connect-sao-bento/internal/catalog"
	"github.com/DavidBen48/connect-sao-bento/internal/domain"
	"github.com/DavidBen48/connect-sao-bento/internal/format"
	"github.com/DavidBen48/connect-sao-bento/internal/ledger"
	"github.com/DavidBen48/connect-sao-bento/internal/session"
)

type CartHandler struct {
	sessions *session.Store
	catalog  *catalog.Catalog
}

func NewCartHandler(sessions *session.Store, c *catalog.Catalog) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		catalog:  c,
	}
}

type AddItemRequestDTO struct {
	ProductID     int64  `json:"product_id"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
	Size          string `json:"size,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
	Size          string `json:"size,omitempty"`
}

type CartItemDTO struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	PaymentMethod string `json:"payment_method"`
	PaymentLabel  string `json:"payment_label"`
	Size          string `json:"size,omitempty"`
	UnitPrice     string `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Subtotal      string `json:"subtotal"`
}

type CartResponseDTO struct {
	Items          []CartItemDTO `json:"items"`
	ItemCount      int           `json:"item_count"`
	Total          string        `json:"total"`
	TotalFormatted string        `json:"total_formatted"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))
	respondJSON(w, http.StatusOK, cartResponse(l))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment_method must be pix or card")
		return
	}
	size, err := domain.ParseSize(req.Size)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_size", "size must be one of PP, P, M, G, GG")
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "product_not_found", "no such product")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	// Snapshot name and price at add time; catalog changes never reach
	// items already in the ledger.
	price, err := product.PriceFor(method)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", err.Error())
		return
	}

	l.Add(domain.LineItem{
		ProductID:     product.ID,
		Name:          product.Name,
		PaymentMethod: method,
		Size:          size,
		UnitPrice:     price,
		Quantity:      req.Quantity,
	})

	respondJSON(w, http.StatusCreated, cartResponse(l))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Zero is allowed: updating to zero removes the entry.
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 0 and 99")
		return
	}

	key, ok := itemKey(w, productID, req.PaymentMethod, req.Size)
	if !ok {
		return
	}

	l.UpdateQuantity(key, req.Quantity)
	respondJSON(w, http.StatusOK, cartResponse(l))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))

	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	key, ok := itemKey(w, productID, r.URL.Query().Get("payment_method"), r.URL.Query().Get("size"))
	if !ok {
		return
	}

	l.Remove(key)
	respondJSON(w, http.StatusOK, cartResponse(l))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))
	l.Clear()
	respondJSON(w, http.StatusOK, cartResponse(l))
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}

func itemKey(w http.ResponseWriter, productID int64, rawMethod, rawSize string) (domain.ItemKey, bool) {
	method, err := domain.ParsePaymentMethod(rawMethod)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment_method must be pix or card")
		return domain.ItemKey{}, false
	}
	size, err := domain.ParseSize(rawSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_size", "size must be one of PP, P, M, G, GG")
		return domain.ItemKey{}, false
	}
	return domain.ItemKey{ProductID: productID, PaymentMethod: method, Size: size}, true
}

func cartResponse(l *ledger.Ledger) CartResponseDTO {
	items := l.Items()

	out := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemDTO{
			ProductID:     item.ProductID,
			Name:          item.Name,
			PaymentMethod: string(item.PaymentMethod),
			PaymentLabel:  item.PaymentMethod.Label(),
			Size:          string(item.Size),
			UnitPrice:     item.UnitPrice.String(),
			Quantity:      item.Quantity,
			Subtotal:      format.Currency(item.Subtotal()),
		})
	}

	return CartResponseDTO{
		Items:          out,
		ItemCount:      l.ItemCount(),
		Total:          l.Total().String(),
		TotalFormatted: format.Currency(l.Total()),
	}
}

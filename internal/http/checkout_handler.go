package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/DavidBen48/connect-sao-bento/internal/composer"
	"github.com/DavidBen48/connect-sao-bento/internal/domain"
	"github.com/DavidBen48/connect-sao-bento/internal/format"
	"github.com/DavidBen48/connect-sao-bento/internal/session"
)

// emailPattern accepts the usual local@domain.tld shape; anything fancier is
// the mail server's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutHandler is the buyer-input collaborator: it validates the contact
// fields before the composer ever sees them, then hands the finished order
// back as a WhatsApp deep link.
type CheckoutHandler struct {
	sessions *session.Store
	composer *composer.Composer
	pixKey   string
}

func NewCheckoutHandler(sessions *session.Store, c *composer.Composer, pixKey string) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		composer: c,
		pixKey:   pixKey,
	}
}

type CheckoutRequestDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutResponseDTO struct {
	OrderID        string `json:"order_id"`
	Total          string `json:"total"`
	TotalFormatted string `json:"total_formatted"`
	Message        string `json:"message"`
	WhatsAppURL    string `json:"whatsapp_url"`
	PixKey         string `json:"pix_key,omitempty"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	l := h.sessions.Ledger(getSessionID(r.Context()))

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if len([]rune(name)) < 2 {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must have at least 2 characters")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		respondError(w, http.StatusBadRequest, "invalid_email", "email must look like local@domain.tld")
		return
	}
	phone := format.DigitsOnly(req.Phone)
	if len(phone) != 11 {
		respondError(w, http.StatusBadRequest, "invalid_phone", "phone must have 11 digits (area code + number)")
		return
	}

	items := l.Items()
	if len(items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cannot checkout an empty cart")
		return
	}

	buyer := domain.Buyer{
		Name:  name,
		Email: req.Email,
		Phone: phone,
	}
	order := h.composer.Compose(buyer, items)
	h.composer.Dispatch(order.URL)

	resp := CheckoutResponseDTO{
		OrderID:        order.ID,
		Total:          order.Total.String(),
		TotalFormatted: format.Currency(order.Total),
		Message:        order.Message,
		WhatsAppURL:    order.URL,
	}
	for _, item := range items {
		if item.PaymentMethod == domain.PaymentPix {
			resp.PixKey = h.pixKey
			break
		}
	}

	// A successful checkout ends the shopping session.
	l.Clear()

	respondJSON(w, http.StatusCreated, resp)
}

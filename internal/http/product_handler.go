package http

import (
	"net/http"

	"github.com/DavidBen48/connect-sao-bento/internal/catalog"
	"github.com/DavidBen48/connect-sao-bento/internal/format"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

type ProductDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	PixPrice           string `json:"pix_price"`
	CardPrice          string `json:"card_price"`
	PixPriceFormatted  string `json:"pix_price_formatted"`
	CardPriceFormatted string `json:"card_price_formatted"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List()

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{
			ID:                 p.ID,
			Name:               p.Name,
			Description:        p.Description,
			Image:              p.Image,
			PixPrice:           p.PixPrice.String(),
			CardPrice:          p.CardPrice.String(),
			PixPriceFormatted:  format.Currency(p.PixPrice),
			CardPriceFormatted: format.Currency(p.CardPrice),
		})
	}

	respondJSON(w, http.StatusOK, out)
}

// Package catalog supplies the ordered list of purchasable products. The
// catalog is static configuration: it is loaded once at startup and never
// mutated by the cart or the composer.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/DavidBen48/connect-sao-bento/internal/domain"
)

// Common errors returned by the catalog
var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
)

//go:embed products.yaml
var defaultProductsYAML []byte

// Product is one catalog entry. Each product carries two prices; the one that
// applies is decided by the buyer's payment method.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	PixPrice    decimal.Decimal `json:"pix_price"`
	CardPrice   decimal.Decimal `json:"card_price"`
}

// PriceFor returns the unit price matching the payment method.
func (p Product) PriceFor(method domain.PaymentMethod) (decimal.Decimal, error) {
	switch method {
	case domain.PaymentPix:
		return p.PixPrice, nil
	case domain.PaymentCard:
		return p.CardPrice, nil
	default:
		return decimal.Zero, fmt.Errorf("no price for payment method %q", method)
	}
}

// Catalog is an ordered, read-only product list with id lookup.
type Catalog struct {
	products []Product
	byID     map[int64]Product
}

// New builds a catalog from a product list, rejecting duplicate ids.
func New(products []Product) (*Catalog, error) {
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Default returns the catalog built into the binary.
func Default() (*Catalog, error) {
	return parse(defaultProductsYAML)
}

// Load reads a catalog from a YAML file, for overriding the built-in list.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parse(data)
}

// List returns the products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int64) (Product, error) {
	p, exists := c.byID[id]
	if !exists {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// productYAML mirrors Product for decoding; prices travel as strings so they
// parse into decimals exactly.
type productYAML struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	PixPrice    string `yaml:"pix_price"`
	CardPrice   string `yaml:"card_price"`
}

type catalogYAML struct {
	Products []productYAML `yaml:"products"`
}

func parse(data []byte) (*Catalog, error) {
	var doc catalogYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		pixPrice, err := decimal.NewFromString(p.PixPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid pix_price for product %d: %w", p.ID, err)
		}
		cardPrice, err := decimal.NewFromString(p.CardPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid card_price for product %d: %w", p.ID, err)
		}
		products = append(products, Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			PixPrice:    pixPrice,
			CardPrice:   cardPrice,
		})
	}
	return New(products)
}

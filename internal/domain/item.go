package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMethod selects which of the two catalog prices applies to a line item.
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod converts wire input into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentPix:
		return PaymentPix, nil
	case PaymentCard:
		return PaymentCard, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// Label returns the human-facing label used on receipts and cart views.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentPix:
		return "Pix"
	case PaymentCard:
		return "Cartão"
	default:
		return string(p)
	}
}

// Size is the apparel size of a line item. The empty value means the buyer
// did not pick a size, which the storefront allows.
type Size string

const (
	SizeNone Size = ""
	SizePP   Size = "PP"
	SizeP    Size = "P"
	SizeM    Size = "M"
	SizeG    Size = "G"
	SizeGG   Size = "GG"
)

// ParseSize converts wire input into a Size. Empty input is valid and maps
// to SizeNone.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeNone, SizePP, SizeP, SizeM, SizeG, SizeGG:
		return Size(s), nil
	default:
		return "", fmt.Errorf("unknown size %q", s)
	}
}

// ItemKey is the identity tuple of a line item within a ledger. Two additions
// with the same key merge into a single entry; any difference in the tuple
// produces an independent entry.
type ItemKey struct {
	ProductID     int64
	PaymentMethod PaymentMethod
	Size          Size
}

// LineItem is one purchasable selection in the ledger. Name and UnitPrice are
// snapshotted from the catalog at add time and are not re-fetched later.
type LineItem struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Size          Size            `json:"size,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
}

// Key returns the identity tuple of the item.
func (i LineItem) Key() ItemKey {
	return ItemKey{
		ProductID:     i.ProductID,
		PaymentMethod: i.PaymentMethod,
		Size:          i.Size,
	}
}

// Subtotal returns unit price times quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

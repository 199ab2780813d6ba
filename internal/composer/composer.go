// Package composer turns a ledger snapshot and buyer details into the order
// receipt message and the WhatsApp deep link that hands the order to a human
// seller. Composing is a single pure transformation per checkout attempt;
// there is no protocol, retry, or acknowledgment from the destination.
package composer

import (
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DavidBen48/connect-sao-bento/internal/domain"
	"github.com/DavidBen48/connect-sao-bento/internal/format"
)

const (
	orderIDPrefix = "2025"
	orderIDSuffix = "connectsb"

	deepLinkBase = "https://wa.me/"
)

// receiptTemplate is the literal receipt layout, legal-terms block included.
// Downstream humans read this as a receipt, so line ordering and whitespace
// are part of the contract and must stay byte-for-byte stable.
const receiptTemplate = `
=== Comprovante de Pedido ===
Nome: %s
Email: %s
Número do Telefone: %s

=====
ID da Compra: %s
=====

Produtos comprados:
%s
- Total: %s

===== termos e políticas =====
1. Pedido feito com sucesso através desta mensagem;
2. O comprovante da compra deverá ser entregue para poder retirar a blusa na igreja;
3. Em casos de faltas de blusa para outros pedidos, se esse pedido não foi pago e a data é próxima ao dia do evento, as blusas pedidas por você, usuário, automaticamente sairá deste pedido e dado para outro que pagar primeiro;
4. Comprometa-se e pague a blusa o quanto antes para garantir que tenha sua blusa;
5. Não aceitamos trocas, devoluções nem algo do tipo. Realizado a compra uma vez, assim permanecerá;
6. Isso não é um comprovante de oficial, e sim comprovante de pedido oficial.
7. Ao realizar a compra, é imprescindível que você envie o comprovante para este número o quanto antes;
8. Não só compre, mas compareça a conferência :) será nos dias 25 e 26 de outubro.
    `

// Composer builds order receipts and deep links for one storefront. The
// destination handle is configured once for the whole store, not per order.
type Composer struct {
	number     string
	dispatcher Dispatcher
}

// New creates a composer targeting the given WhatsApp number.
func New(whatsAppNumber string, dispatcher Dispatcher) *Composer {
	return &Composer{
		number:     whatsAppNumber,
		dispatcher: dispatcher,
	}
}

// OrderID produces a session-unique human-shareable token: a fixed year
// prefix, a zero-padded random 5-digit number, and a fixed suffix tag. It is
// a human reference number, not a primary key; nothing checks for collisions.
func OrderID() string {
	return fmt.Sprintf("%s%05d%s", orderIDPrefix, rand.Intn(100000), orderIDSuffix)
}

// Total restates the ledger total over an arbitrary snapshot, so the composer
// never needs a live ledger reference.
func Total(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Message renders the receipt for a buyer and snapshot under the given order
// id. An empty snapshot is not an error; it renders zero items and a zero
// total, and the caller is expected to have disabled checkout on empty carts.
func Message(buyer domain.Buyer, items []domain.LineItem, orderID string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%dx | %s | %s", item.Quantity, item.Name, itemLabel(item)))
	}

	return fmt.Sprintf(receiptTemplate,
		buyer.Name,
		buyer.Email,
		buyer.Phone,
		orderID,
		strings.Join(lines, "\n"),
		format.ReceiptTotal(Total(items)),
	)
}

// itemLabel is the third column of an item line: the chosen size, or the
// payment label when no size was picked.
func itemLabel(item domain.LineItem) string {
	if item.Size != domain.SizeNone {
		return string(item.Size)
	}
	return item.PaymentMethod.Label()
}

// DeepLink percent-encodes the message and appends it to the messaging base
// URL. Spaces encode as %20, not +, so the link opens identically everywhere.
func (c *Composer) DeepLink(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return deepLinkBase + c.number + "?text=" + encoded
}

// Compose builds the ephemeral order for a checkout attempt.
func (c *Composer) Compose(buyer domain.Buyer, items []domain.LineItem) domain.Order {
	id := OrderID()
	message := Message(buyer, items, id)

	return domain.Order{
		ID:      id,
		Buyer:   buyer,
		Items:   items,
		Total:   Total(items),
		Message: message,
		URL:     c.DeepLink(message),
	}
}

// Dispatch hands the deep link to the host environment. Fire and forget: the
// navigation outcome is outside this system's control, so failures are logged
// and swallowed.
func (c *Composer) Dispatch(url string) {
	if err := c.dispatcher.OpenURL(url); err != nil {
		log.Printf("deep link dispatch failed: %v", err)
	}
}

// Copy hands text to the host clipboard, best effort like Dispatch.
func (c *Composer) Copy(text string) {
	if err := c.dispatcher.CopyText(text); err != nil {
		log.Printf("clipboard copy failed: %v", err)
	}
}

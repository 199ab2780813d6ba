package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/DavidBen48/connect-sao-bento/internal/domain"
)

// Ledger holds the line items of one shopping session. Entries keep insertion
// order for display; order has no effect on totals. A session is mutated by a
// single actor, but the ledger still guards its state with a lock so one
// server process can host many sessions.
type Ledger struct {
	mu    sync.RWMutex
	items []domain.LineItem
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add inserts an item, merging with an existing entry that has the same
// identity key. On merge the quantities are summed and the incoming item's
// name and unit price win, so a price snapshot taken at add time sticks until
// the product is re-added. A non-positive incoming quantity is clamped to 1.
func (l *Ledger) Add(item domain.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := item.Key()
	for i := range l.items {
		if l.items[i].Key() == key {
			item.Quantity += l.items[i].Quantity
			l.items[i] = item
			return
		}
	}
	l.items = append(l.items, item)
}

// Remove deletes the entry matching key. Removing an absent key is a no-op,
// not an error: the UI may race a double click or hold a stale reference.
func (l *Ledger) Remove(key domain.ItemKey) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remove(key)
}

func (l *Ledger) remove(key domain.ItemKey) {
	for i := range l.items {
		if l.items[i].Key() == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites the quantity of the entry matching key, keeping
// its position. A quantity of zero or less behaves exactly like Remove.
func (l *Ledger) UpdateQuantity(key domain.ItemKey, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		l.remove(key)
		return
	}
	for i := range l.items {
		if l.items[i].Key() == key {
			l.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the ledger unconditionally.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// Items returns a snapshot copy of the current entries in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Total returns the sum of unit price times quantity over all entries. It is
// recomputed on every call so it can never go stale.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount returns the sum of quantities, used for the cart badge. It is
// distinct from Len, which counts entries.
func (l *Ledger) ItemCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

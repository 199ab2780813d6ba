package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidBen48/connect-sao-bento/internal/domain"
)

func pixItem(productID int64, quantity int, price int64) domain.LineItem {
	return domain.LineItem{
		ProductID:     productID,
		Name:          "Blusa Fruitful (Marrom)",
		PaymentMethod: domain.PaymentPix,
		Size:          domain.SizeM,
		UnitPrice:     decimal.NewFromInt(price),
		Quantity:      quantity,
	}
}

func TestLedger_Empty(t *testing.T) {
	l := New()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.ItemCount())
	assert.True(t, l.Total().IsZero())
	assert.Empty(t, l.Items())
}

func TestLedger_Add_MergesSameKey(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 1, 60))
	l.Add(pixItem(1, 2, 60))

	require.Equal(t, 1, l.Len())
	items := l.Items()
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "180", l.Total().String())
}

func TestLedger_Add_SameKeySequence_AccumulatesQuantity(t *testing.T) {
	l := New()

	sum := 0
	for _, q := range []int{1, 4, 2, 3} {
		l.Add(pixItem(1, q, 60))
		sum += q
	}

	require.Equal(t, 1, l.Len())
	assert.Equal(t, sum, l.Items()[0].Quantity)
	assert.Equal(t, sum, l.ItemCount())
}

func TestLedger_Add_DifferentPaymentMethod_IsSeparateEntry(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 1, 60))

	card := pixItem(1, 1, 66)
	card.PaymentMethod = domain.PaymentCard
	l.Add(card)

	require.Equal(t, 2, l.Len())
	assert.Equal(t, "126", l.Total().String())
}

func TestLedger_Add_DifferentSize_IsSeparateEntry(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 1, 60))

	other := pixItem(1, 1, 60)
	other.Size = domain.SizeG
	l.Add(other)

	assert.Equal(t, 2, l.Len())
}

func TestLedger_Add_MergeTakesIncomingPrice(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 2, 60))
	l.Add(pixItem(1, 1, 55))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "55", items[0].UnitPrice.String())
	assert.Equal(t, "165", l.Total().String())
}

func TestLedger_Add_ClampsNonPositiveQuantity(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 0, 60))
	l.Add(pixItem(2, -3, 60))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestLedger_Add_PreservesInsertionOrder(t *testing.T) {
	l := New()

	for id := int64(1); id <= 3; id++ {
		l.Add(pixItem(id, 1, 60))
	}
	// Merging must not move the entry.
	l.Add(pixItem(1, 1, 60))

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[1].ProductID)
	assert.Equal(t, int64(3), items[2].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLedger_Remove(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 2, 60))
	l.Add(pixItem(2, 1, 60))

	l.Remove(pixItem(1, 0, 0).Key())

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ProductID)
}

func TestLedger_Remove_AbsentKey_IsNoOp(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 2, 60))
	before := l.Items()

	l.Remove(domain.ItemKey{ProductID: 99, PaymentMethod: domain.PaymentPix})
	l.Remove(domain.ItemKey{ProductID: 1, PaymentMethod: domain.PaymentCard, Size: domain.SizeM})

	assert.Equal(t, before, l.Items())
}

func TestLedger_UpdateQuantity(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 1, 60))
	l.Add(pixItem(2, 1, 60))

	l.UpdateQuantity(pixItem(1, 0, 0).Key(), 5)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(1), items[0].ProductID) // position preserved
	assert.Equal(t, "360", l.Total().String())
}

func TestLedger_UpdateQuantity_ZeroBehavesLikeRemove(t *testing.T) {
	removed := New()
	removed.Add(pixItem(1, 2, 60))
	removed.Add(pixItem(2, 1, 60))
	removed.Remove(pixItem(1, 0, 0).Key())

	updated := New()
	updated.Add(pixItem(1, 2, 60))
	updated.Add(pixItem(2, 1, 60))
	updated.UpdateQuantity(pixItem(1, 0, 0).Key(), 0)

	assert.Equal(t, removed.Items(), updated.Items())

	updated.UpdateQuantity(pixItem(2, 0, 0).Key(), -1)
	assert.Equal(t, 0, updated.Len())
}

func TestLedger_UpdateQuantity_AbsentKey_IsNoOp(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 2, 60))

	l.UpdateQuantity(domain.ItemKey{ProductID: 99, PaymentMethod: domain.PaymentPix}, 4)

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLedger_Clear(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 2, 60))
	l.Add(pixItem(2, 1, 60))

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.ItemCount())
	assert.True(t, l.Total().IsZero())
}

func TestLedger_Total_ConsistentAfterInterleavedMutations(t *testing.T) {
	l := New()

	l.Add(pixItem(1, 2, 60))  // 120
	l.Add(pixItem(2, 1, 60))  // 180
	l.UpdateQuantity(pixItem(2, 0, 0).Key(), 3) // 240
	l.Add(pixItem(3, 1, 60))  // 300
	l.Remove(pixItem(1, 0, 0).Key()) // 180

	expected := decimal.Zero
	for _, item := range l.Items() {
		expected = expected.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, l.Total().Equal(expected))
	assert.Equal(t, "180", l.Total().String())
	assert.Equal(t, 4, l.ItemCount())
}

func TestLedger_Items_ReturnsSnapshotCopy(t *testing.T) {
	l := New()
	l.Add(pixItem(1, 2, 60))

	snapshot := l.Items()
	snapshot[0].Quantity = 99

	assert.Equal(t, 2, l.Items()[0].Quantity)
}

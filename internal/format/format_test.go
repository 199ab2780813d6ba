package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "R$60,00", Currency(decimal.NewFromInt(60)))
	assert.Equal(t, "R$66,00", Currency(decimal.NewFromInt(66)))
	assert.Equal(t, "R$126,50", Currency(decimal.RequireFromString("126.5")))
	assert.Equal(t, "R$0,00", Currency(decimal.Zero))
	assert.Equal(t, "R$1234,56", Currency(decimal.RequireFromString("1234.56")))
}

func TestReceiptTotal(t *testing.T) {
	assert.Equal(t, "R$120.00", ReceiptTotal(decimal.NewFromInt(120)))
	assert.Equal(t, "R$0.00", ReceiptTotal(decimal.Zero))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "21991442334", DigitsOnly("(21) 99144-2334"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(21) 99144-2334", FormatPhone("21991442334"))
	assert.Equal(t, "(21) 99144-2334", FormatPhone("(21) 99144-2334"))

	// Not 11 digits: returned untouched.
	assert.Equal(t, "1234567", FormatPhone("1234567"))
	assert.Equal(t, "219914423345", FormatPhone("219914423345"))
}

func TestMaskPhone_Progressive(t *testing.T) {
	assert.Equal(t, "2", MaskPhone("2"))
	assert.Equal(t, "(21) ", MaskPhone("21"))
	assert.Equal(t, "(21) 991", MaskPhone("21991"))
	assert.Equal(t, "(21) 99144-", MaskPhone("2199144"))
	assert.Equal(t, "(21) 99144-23", MaskPhone("219914423"))
	assert.Equal(t, "(21) 99144-2334", MaskPhone("21991442334"))

	// Extra digits are dropped.
	assert.Equal(t, "(21) 99144-2334", MaskPhone("21991442334999"))

	// Non-digits are ignored while typing.
	assert.Equal(t, "(21) 99144-2334", MaskPhone("(21) 99144-2334"))
}

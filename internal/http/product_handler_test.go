package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidBen48/connect-sao-bento/internal/catalog"
)

func TestListProducts(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	handler := NewProductHandler(c)

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest("GET", "/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var products []ProductDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&products))
	require.Len(t, products, 3)

	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Blusa Fruitful (Marrom)", products[0].Name)
	assert.Equal(t, "60", products[0].PixPrice)
	assert.Equal(t, "66", products[0].CardPrice)
	assert.Equal(t, "R$60,00", products[0].PixPriceFormatted)
	assert.Equal(t, "R$66,00", products[0].CardPriceFormatted)
}

package store

import (
	"testing"

	"github.com/ozguragaoglu95/pastayapp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dripCakeLine(qty int) models.CartItem {
	return models.CartItem{
		TemplateProductID: "t-drip-caramel",
		ProductName:       "Salted Caramel Drip Cake",
		VendorID:          "v-karamel",
		SelectedOptions: map[string][]string{
			"size":   {"15p"},
			"flavor": {"chocolate"},
		},
		Quantity:  qty,
		UnitPrice: 1350,
	}
}

func TestAddItem_MergesEqualFingerprints(t *testing.T) {
	carts := NewCartStore()

	carts.AddItem("u1", dripCakeLine(1))
	carts.AddItem("u1", dripCakeLine(2))

	lines := carts.Items("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	totalItems, totalPrice := carts.Totals("u1")
	assert.Equal(t, 3, totalItems)
	assert.Equal(t, 4050.0, totalPrice)
}

func TestAddItem_DistinctOptionsStaySeparate(t *testing.T) {
	carts := NewCartStore()

	carts.AddItem("u1", dripCakeLine(1))

	other := dripCakeLine(1)
	other.SelectedOptions["flavor"] = []string{"vanilla"}
	carts.AddItem("u1", other)

	assert.Len(t, carts.Items("u1"), 2)
}

func TestAddItem_FingerprintIgnoresSliceOrder(t *testing.T) {
	carts := NewCartStore()

	a := dripCakeLine(1)
	a.SelectedOptions["topping"] = []string{"macarons", "fresh-fruit"}
	a.Extras = []string{"candles", "card"}
	carts.AddItem("u1", a)

	b := dripCakeLine(1)
	b.SelectedOptions["topping"] = []string{"fresh-fruit", "macarons"}
	b.Extras = []string{"card", "candles"}
	carts.AddItem("u1", b)

	lines := carts.Items("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItem_NoteIsPartOfIdentity(t *testing.T) {
	carts := NewCartStore()

	a := dripCakeLine(1)
	a.Note = "Happy Birthday Ayşe"
	carts.AddItem("u1", a)

	b := dripCakeLine(1)
	b.Note = "Happy Birthday Mehmet"
	carts.AddItem("u1", b)

	assert.Len(t, carts.Items("u1"), 2)
}

func TestUpdateQuantity(t *testing.T) {
	carts := NewCartStore()
	line := carts.AddItem("u1", dripCakeLine(1))

	require.NoError(t, carts.UpdateQuantity("u1", line.Fingerprint, 5))
	totalItems, totalPrice := carts.Totals("u1")
	assert.Equal(t, 5, totalItems)
	assert.Equal(t, 6750.0, totalPrice)

	// qty <= 0 removes the line
	require.NoError(t, carts.UpdateQuantity("u1", line.Fingerprint, 0))
	assert.Empty(t, carts.Items("u1"))

	assert.ErrorIs(t, carts.UpdateQuantity("u1", line.Fingerprint, 2), ErrNotFound)
}

func TestRemoveItem_KeysOnFingerprint(t *testing.T) {
	carts := NewCartStore()

	kept := dripCakeLine(1)
	kept.SelectedOptions["flavor"] = []string{"vanilla"}
	carts.AddItem("u1", kept)
	removed := carts.AddItem("u1", dripCakeLine(1))

	require.NoError(t, carts.RemoveItem("u1", removed.Fingerprint))

	lines := carts.Items("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"vanilla"}, lines[0].SelectedOptions["flavor"])
}

func TestClearAndTotalsRecompute(t *testing.T) {
	carts := NewCartStore()
	carts.AddItem("u1", dripCakeLine(2))

	carts.Clear("u1")

	totalItems, totalPrice := carts.Totals("u1")
	assert.Zero(t, totalItems)
	assert.Zero(t, totalPrice)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	carts := NewCartStore()
	carts.AddItem("u1", dripCakeLine(1))

	assert.Empty(t, carts.Items("u2"))
}

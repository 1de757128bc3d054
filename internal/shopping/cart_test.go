package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMerges(t *testing.T) {
	cart, qty := NewCart().Add("Milk", 2)
	assert.Equal(t, 2, qty)

	cart, qty = cart.Add("Milk", 3)
	assert.Equal(t, 5, qty)

	got, ok := cart.Quantity("Milk")
	require.True(t, ok)
	assert.Equal(t, 5, got)
	assert.Equal(t, 1, cart.LineCount())
}

func TestCart_AddNormalizesNonPositive(t *testing.T) {
	cart, qty := NewCart().Add("Bread", 0)
	assert.Equal(t, 1, qty)

	_, qty = cart.Add("Bread", -4)
	assert.Equal(t, 2, qty)
}

func TestCart_AddDoesNotModifyReceiver(t *testing.T) {
	base, _ := NewCart().Add("Milk", 1)
	_, _ = base.Add("Milk", 4)
	_, _ = base.Add("Eggs", 1)

	assert.Equal(t, []CartLine{{Product: "Milk", Quantity: 1}}, base.Lines())
}

func TestCart_SetQuantity(t *testing.T) {
	base, _ := NewCart().Add("Milk", 2)

	tests := []struct {
		name     string
		product  string
		quantity int
		want     []CartLine
	}{
		{
			name:     "positive overwrites",
			product:  "Milk",
			quantity: 7,
			want:     []CartLine{{Product: "Milk", Quantity: 7}},
		},
		{
			name:     "zero removes",
			product:  "Milk",
			quantity: 0,
			want:     []CartLine{},
		},
		{
			name:     "negative removes",
			product:  "Milk",
			quantity: -1,
			want:     []CartLine{},
		},
		{
			name:     "absent product with positive quantity is added",
			product:  "Cheese",
			quantity: 3,
			want:     []CartLine{{Product: "Milk", Quantity: 2}, {Product: "Cheese", Quantity: 3}},
		},
		{
			name:     "absent product with zero quantity is a no-op",
			product:  "Cheese",
			quantity: 0,
			want:     []CartLine{{Product: "Milk", Quantity: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.SetQuantity(tt.product, tt.quantity)
			assert.Equal(t, tt.want, got.Lines())
		})
	}
}

func TestCart_SetQuantityOnAbsentEqualsAdd(t *testing.T) {
	viaSet := NewCart().SetQuantity("Apple", 4)
	viaAdd, _ := NewCart().Add("Apple", 4)

	assert.Equal(t, viaAdd.Lines(), viaSet.Lines())
}

func TestCart_CarrotScenario(t *testing.T) {
	cart := NewCart()
	require.True(t, cart.IsEmpty())

	cart, _ = cart.Add("Carrot", 3)
	assert.Equal(t, []CartLine{{Product: "Carrot", Quantity: 3}}, cart.Lines())

	cart, _ = cart.Add("Carrot", 2)
	assert.Equal(t, []CartLine{{Product: "Carrot", Quantity: 5}}, cart.Lines())

	cart = cart.Remove("Carrot")
	assert.True(t, cart.IsEmpty())
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	cart, _ := NewCart().Add("Milk", 1)
	cart = cart.Remove("Nuts")

	assert.Equal(t, 1, cart.LineCount())
}

func TestCart_Totals(t *testing.T) {
	cart, _ := NewCart().Add("Milk", 2)
	cart, _ = cart.Add("Bread", 1)
	cart, _ = cart.Add("Apple", 6)

	assert.Equal(t, 9, cart.TotalItems())
	assert.Equal(t, 3, cart.LineCount())

	cart = cart.Clear()
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.IsEmpty())
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	cart, _ := NewCart().Add("Milk", 1)
	cart, _ = cart.Add("Bread", 1)
	cart, _ = cart.Add("Milk", 1)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Milk", lines[0].Product)
	assert.Equal(t, "Bread", lines[1].Product)
}

package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumOfLineTotals(b Bill) float64 {
	var total float64
	for _, item := range b.Items {
		total += item.LineTotal
	}
	return total
}

func TestLedgerTotalInvariant(t *testing.T) {
	ledger := NewLedger("MK")

	rice, err := ledger.AddItem("Rice", 60, 5)
	require.NoError(t, err)
	assert.Equal(t, 300.0, rice.LineTotal)
	assert.Equal(t, 300.0, ledger.Bill().GrandTotal)

	_, err = ledger.AddItem("Sugar", 45, 3)
	require.NoError(t, err)

	bill := ledger.Bill()
	assert.Equal(t, 435.0, bill.GrandTotal)
	assert.Equal(t, sumOfLineTotals(bill), bill.GrandTotal)

	ledger.RemoveItem(rice.ID)
	bill = ledger.Bill()
	assert.Equal(t, 135.0, bill.GrandTotal)
	assert.Equal(t, sumOfLineTotals(bill), bill.GrandTotal)
	assert.Len(t, bill.Items, 1)
	assert.Equal(t, "Sugar", bill.Items[0].Name)
}

func TestLedgerAddItemValidation(t *testing.T) {
	nan := func() float64 {
		var zero float64
		return zero / zero
	}()

	tests := []struct {
		name     string
		itemName string
		price    float64
		quantity float64
	}{
		{name: "empty name", itemName: "", price: 10, quantity: 1},
		{name: "whitespace name", itemName: "   ", price: 10, quantity: 1},
		{name: "negative price", itemName: "Rice", price: -1, quantity: 1},
		{name: "negative quantity", itemName: "Rice", price: 10, quantity: -2},
		{name: "NaN price", itemName: "Rice", price: nan, quantity: 1},
		{name: "NaN quantity", itemName: "Rice", price: 10, quantity: nan},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ledger := NewLedger("MK")
			_, err := ledger.AddItem(testCase.itemName, testCase.price, testCase.quantity)

			require.Error(t, err)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)

			bill := ledger.Bill()
			assert.Empty(t, bill.Items, "failed add must not mutate the bill")
			assert.Equal(t, 0.0, bill.GrandTotal)
		})
	}
}

func TestLedgerFractionalQuantity(t *testing.T) {
	ledger := NewLedger("MK")
	item, err := ledger.AddItem("Onions", 30, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 75.0, item.LineTotal)
	assert.Equal(t, 75.0, ledger.Bill().GrandTotal)
}

func TestLedgerRemoveUnknownIDIsNoop(t *testing.T) {
	ledger := NewLedger("MK")
	_, err := ledger.AddItem("Rice", 60, 5)
	require.NoError(t, err)

	ledger.RemoveItem("no-such-id")

	bill := ledger.Bill()
	assert.Len(t, bill.Items, 1)
	assert.Equal(t, 300.0, bill.GrandTotal)
}

func TestLedgerRemoveLastItemMatchesFreshState(t *testing.T) {
	ledger := NewLedger("MK")
	item, err := ledger.AddItem("Rice", 60, 5)
	require.NoError(t, err)

	ledger.RemoveItem(item.ID)

	bill := ledger.Bill()
	assert.Empty(t, bill.Items)
	assert.Equal(t, 0.0, bill.GrandTotal)
}

func TestLedgerReset(t *testing.T) {
	ledger := NewLedger("MK")
	_, err := ledger.AddItem("Rice", 60, 5)
	require.NoError(t, err)
	ledger.SetCustomer("Rahul Sharma", "9876543210")
	before := ledger.Bill()

	ledger.Reset()

	after := ledger.Bill()
	assert.Empty(t, after.Items)
	assert.Equal(t, 0.0, after.GrandTotal)
	assert.Empty(t, after.CustomerName)
	assert.Empty(t, after.CustomerPhone)
	assert.NotEqual(t, before.BillNumber, after.BillNumber)
}

func TestLedgerSnapshotIsolation(t *testing.T) {
	ledger := NewLedger("MK")
	_, err := ledger.AddItem("Rice", 60, 5)
	require.NoError(t, err)

	snap := ledger.Bill()
	_, err = ledger.AddItem("Dal", 120, 2)
	require.NoError(t, err)

	assert.Len(t, snap.Items, 1)
	assert.Equal(t, 300.0, snap.GrandTotal)
	assert.Equal(t, sumOfLineTotals(snap), snap.GrandTotal, "snapshot total must match its own items")

	live := ledger.Bill()
	assert.Len(t, live.Items, 2)
	assert.Equal(t, 540.0, live.GrandTotal)
}

func TestLedgerSetDate(t *testing.T) {
	ledger := NewLedger("MK")
	issued := time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC)
	ledger.SetDate(issued)
	assert.Equal(t, issued, ledger.Bill().Date)
}

func TestLedgerItemOrderPreserved(t *testing.T) {
	ledger := NewLedger("MK")
	names := []string{"Rice", "Dal", "Sugar", "Salt"}
	for _, name := range names {
		_, err := ledger.AddItem(name, 10, 1)
		require.NoError(t, err)
	}

	bill := ledger.Bill()
	for i, item := range bill.Items {
		assert.Equal(t, names[i], item.Name)
	}
}

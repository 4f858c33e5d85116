package billing

import (
	"strings"
	"time"

	"kirana/utils"
)

// SampleBills returns the built-in demo bills used by the search screen.
// They are fixtures, not persisted records.
func SampleBills() []Bill {
	return []Bill{
		{
			BillNumber: "MK-123456-789",
			Date:       time.Date(2023, time.October, 15, 0, 0, 0, 0, time.UTC),
			Items: []LineItem{
				{ID: "1", Name: "Rice", UnitPrice: 60, Quantity: 5, LineTotal: 300},
				{ID: "2", Name: "Dal", UnitPrice: 120, Quantity: 2, LineTotal: 240},
				{ID: "3", Name: "Sugar", UnitPrice: 45, Quantity: 3, LineTotal: 135},
			},
			GrandTotal:    675,
			CustomerName:  "Rahul Sharma",
			CustomerPhone: "9876543210",
		},
		{
			BillNumber: "MK-789012-345",
			Date:       time.Date(2023, time.October, 16, 0, 0, 0, 0, time.UTC),
			Items: []LineItem{
				{ID: "1", Name: "Wheat Flour", UnitPrice: 40, Quantity: 10, LineTotal: 400},
				{ID: "2", Name: "Cooking Oil", UnitPrice: 180, Quantity: 2, LineTotal: 360},
			},
			GrandTotal:    760,
			CustomerName:  "Priya Patel",
			CustomerPhone: "8765432109",
		},
	}
}

// SearchBills filters bills by case-insensitive substring match against the
// bill number, customer name, customer phone, or formatted date. A blank term
// matches nothing.
func SearchBills(bills []Bill, term string) []Bill {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var results []Bill
	for _, bill := range bills {
		if strings.Contains(strings.ToLower(bill.BillNumber), term) ||
			strings.Contains(strings.ToLower(bill.CustomerName), term) ||
			strings.Contains(bill.CustomerPhone, term) ||
			strings.Contains(utils.FormatDate(bill.Date), term) {
			results = append(results, bill)
		}
	}
	return results
}

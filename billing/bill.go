package billing

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"kirana/utils"
)

// LineItem is one purchased entry on a bill. LineTotal is derived at creation
// and never mutated afterwards.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  float64 `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Bill is the record of a single transaction. GrandTotal always equals the
// sum of the items' line totals; it is recomputed by the ledger after every
// mutation and must never be set directly.
type Bill struct {
	BillNumber    string     `json:"billNumber"`
	Date          time.Time  `json:"date"`
	CustomerName  string     `json:"customerName,omitempty"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	Items         []LineItem `json:"items"`
	GrandTotal    float64    `json:"grandTotal"`
}

// ValidationError reports invalid line-item input. The bill is left untouched
// when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Ledger owns the single active bill. It is the only writer; readers obtain
// a snapshot so they never observe a partially updated item list with a stale
// total.
type Ledger struct {
	mu     sync.Mutex
	prefix string
	bill   Bill
}

// NewLedger starts a fresh bill with a newly generated number and an empty
// item list.
func NewLedger(prefix string) *Ledger {
	return &Ledger{
		prefix: prefix,
		bill: Bill{
			BillNumber: NewBillNumber(prefix),
			Date:       time.Now(),
		},
	}
}

// AddItem validates the input, appends a new line item to the end of the bill
// and recomputes the grand total. Existing items keep their order.
func (l *Ledger) AddItem(name string, unitPrice, quantity float64) (LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(unitPrice) || unitPrice < 0 {
		return LineItem{}, &ValidationError{Field: "unitPrice", Reason: "must be a non-negative number"}
	}
	if math.IsNaN(quantity) || quantity < 0 {
		return LineItem{}, &ValidationError{Field: "quantity", Reason: "must be a non-negative number"}
	}

	item := LineItem{
		ID:        utils.GetUUID(),
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		LineTotal: unitPrice * quantity,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.bill.Items = append(l.bill.Items, item)
	l.recomputeTotal()
	return item, nil
}

// RemoveItem drops the first item with the given id and recomputes the grand
// total. An unknown id is a no-op, not an error.
func (l *Ledger) RemoveItem(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.bill.Items {
		if item.ID == id {
			l.bill.Items = append(l.bill.Items[:i], l.bill.Items[i+1:]...)
			l.recomputeTotal()
			return
		}
	}
}

// SetCustomer records the optional customer details for the current bill.
func (l *Ledger) SetCustomer(name, phone string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bill.CustomerName = strings.TrimSpace(name)
	l.bill.CustomerPhone = strings.TrimSpace(phone)
}

// SetDate adjusts the issue date before the bill is finalized.
func (l *Ledger) SetDate(t time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bill.Date = t
}

// Reset discards the current bill and starts a new empty one with a fresh
// bill number and the current time as issue date.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bill = Bill{
		BillNumber: NewBillNumber(l.prefix),
		Date:       time.Now(),
	}
}

// Bill returns a snapshot copy of the current bill. The items slice is copied
// so the caller can render or export it while the ledger keeps mutating.
func (l *Ledger) Bill() Bill {
	l.mu.Lock()
	defer l.mu.Unlock()
	snap := l.bill
	snap.Items = make([]LineItem, len(l.bill.Items))
	copy(snap.Items, l.bill.Items)
	return snap
}

// recomputeTotal folds the line totals into GrandTotal. Callers must hold mu.
func (l *Ledger) recomputeTotal() {
	var total float64
	for _, item := range l.bill.Items {
		total += item.LineTotal
	}
	l.bill.GrandTotal = total
}

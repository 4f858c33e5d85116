package invoice

import (
	"fmt"
	"strings"

	"kirana/billing"
	"kirana/shop"
	"kirana/utils"
)

// Text renders a bill as the line-oriented message body used for sharing.
// The asterisks are messenger bold markers. Pure function, no side effects.
func Text(cfg shop.Config, bill billing.Bill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", cfg.Name)
	fmt.Fprintf(&b, "Bill No: %s\n", bill.BillNumber)
	fmt.Fprintf(&b, "Date: %s\n", utils.FormatDate(bill.Date))
	if bill.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", bill.CustomerName)
	}
	b.WriteString("\n*Items:*\n")
	for i, item := range bill.Items {
		fmt.Fprintf(&b, "%d. %s - %s x %s = %s\n",
			i+1,
			item.Name,
			utils.FormatQuantity(item.Quantity),
			utils.FormatCurrency(item.UnitPrice),
			utils.FormatCurrency(item.LineTotal),
		)
	}
	fmt.Fprintf(&b, "\n*Grand Total: %s*\n", utils.FormatCurrency(bill.GrandTotal))
	fmt.Fprintf(&b, "\n%s", cfg.CourtesyLine)
	return b.String()
}

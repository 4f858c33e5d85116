package invoice

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"kirana/billing"
	"kirana/shop"
	"kirana/upi"
	"kirana/utils"
)

// ErrExport marks a catastrophic failure of the export pipeline itself. No
// partial file is produced when it is returned.
var ErrExport = errors.New("invoice export failed")

// Document is the finished export artifact.
type Document struct {
	PDF      []byte
	Filename string
	Warnings []string
}

// Exporter serializes bill snapshots into printable A4 invoices.
type Exporter struct {
	cfg    shop.Config
	qrSize int
}

func NewExporter(cfg shop.Config) *Exporter {
	return &Exporter{cfg: cfg, qrSize: upi.DefaultQRSize}
}

// Export builds the invoice PDF for a bill snapshot. The steps run in a fixed
// order: load logo, rasterize the payment code, lay out the document. A
// missing logo degrades to the layout without one, and a failed payment code
// drops the payment block with a warning on the document; only a document
// construction failure aborts the export.
func (e *Exporter) Export(bill billing.Bill) (*Document, error) {
	doc := &Document{Filename: fmt.Sprintf("Invoice-%s.pdf", bill.BillNumber)}

	logo, err := loadLogo(e.cfg.LogoPath)
	if err != nil {
		log.Printf("invoice: logo unavailable, using reduced layout: %v", err)
		logo = nil
	}

	var qrPNG []byte
	if e.cfg.UPIID != "" {
		qrPNG, err = upi.ForBill(e.cfg, bill).QRCode(e.qrSize)
		if err != nil {
			log.Printf("invoice: payment block skipped: %v", err)
			doc.Warnings = append(doc.Warnings, "payment QR generation failed; invoice exported without payment block")
			qrPNG = nil
		}
	}

	pdf := e.buildPDF(bill, logo, qrPNG)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExport, err)
	}
	doc.PDF = buf.Bytes()
	return doc, nil
}

func (e *Exporter) buildPDF(bill billing.Bill, logo, qrPNG []byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	// Page background and border repeat on continuation pages.
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(248, 250, 252)
		pdf.Rect(0, 0, 210, 297, "F")
		pdf.SetDrawColor(226, 232, 240)
		pdf.SetLineWidth(0.5)
		pdf.Rect(10, 10, 190, 277, "D")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(95, 10, "Generated on: "+utils.FormatDate(time.Now()), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(21, 128, 61)
	pdf.Rect(10, 10, 190, 30, "F")
	if logo != nil {
		opts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		pdf.ImageOptions("logo", 15, 15, 20, 20, false, opts, 0, "")
	}
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(10, 14)
	pdf.CellFormat(190, 10, e.cfg.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetX(10)
	pdf.CellFormat(190, 6, e.cfg.Address+" | Phone: "+e.cfg.Phone, "", 1, "C", false, 0, "")

	// Title strip
	pdf.SetFillColor(241, 245, 249)
	pdf.RoundedRect(10, 45, 190, 12, 2, "1234", "F")
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetXY(10, 47)
	pdf.CellFormat(190, 8, "INVOICE", "", 1, "C", false, 0, "")

	// Metadata boxes: bill details left, customer right
	const metaY = 65.0
	pdf.SetFillColor(241, 245, 249)
	pdf.RoundedRect(10, metaY, 90, 20, 1, "1234", "F")
	pdf.RoundedRect(110, metaY, 90, 20, 1, "1234", "F")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.Text(15, metaY+7, "Bill Number:")
	pdf.Text(15, metaY+15, "Date:")
	pdf.Text(115, metaY+7, "Customer:")
	if bill.CustomerPhone != "" {
		pdf.Text(115, metaY+15, "Phone:")
	}

	customer := bill.CustomerName
	if customer == "" {
		customer = "Walk-in Customer"
	}
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(15, 23, 42)
	pdf.Text(40, metaY+7, bill.BillNumber)
	pdf.Text(40, metaY+15, utils.FormatDate(bill.Date))
	pdf.Text(140, metaY+7, customer)
	if bill.CustomerPhone != "" {
		pdf.Text(140, metaY+15, bill.CustomerPhone)
	}

	// Item table
	pdf.SetFillColor(241, 245, 249)
	pdf.RoundedRect(10, 95, 190, 8, 1, "1234", "F")
	pdf.SetFont("Arial", "B", 10)
	pdf.Text(20, 100, "ITEM DETAILS")
	pdf.SetY(105)
	e.itemTable(pdf, bill.Items)

	// Grand total box
	finalY := pdf.GetY()
	pdf.SetFillColor(241, 245, 249)
	pdf.SetDrawColor(203, 213, 225)
	pdf.SetLineWidth(0.5)
	pdf.RoundedRect(100, finalY+5, 100, 20, 2, "1234", "FD")
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(21, 128, 61)
	pdf.Text(110, finalY+18, "Grand Total:")
	pdf.SetXY(100, finalY+12)
	pdf.CellFormat(90, 8, utils.FormatCurrency(bill.GrandTotal), "", 0, "R", false, 0, "")

	courtesyY := finalY + 40
	if qrPNG != nil {
		courtesyY = e.paymentBlock(pdf, bill, qrPNG, finalY+30) + 10
	}

	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(71, 85, 105)
	pdf.SetXY(10, courtesyY)
	pdf.CellFormat(190, 8, e.cfg.CourtesyLine, "", 1, "C", false, 0, "")
	return pdf
}

func (e *Exporter) itemTable(pdf *gofpdf.Fpdf, items []billing.LineItem) {
	widths := []float64{10, 95, 35, 15, 35}
	headers := []string{"#", "Item", "Price", "Qty", "Total"}
	aligns := []string{"C", "L", "C", "C", "C"}

	drawHeader := func() {
		pdf.SetX(10)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(21, 128, 61)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(15, 23, 42)
	}

	drawHeader()
	for i, item := range items {
		// keep room for the totals box under the table
		if pdf.GetY() > 250 {
			pdf.AddPage()
			pdf.SetY(20)
			drawHeader()
		}
		pdf.SetFillColor(248, 250, 252)
		row := []string{
			strconv.Itoa(i + 1),
			item.Name,
			utils.FormatCurrency(item.UnitPrice),
			utils.FormatQuantity(item.Quantity),
			utils.FormatCurrency(item.LineTotal),
		}
		pdf.SetX(10)
		for c, cell := range row {
			pdf.CellFormat(widths[c], 7, cell, "1", 0, aligns[c], i%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}
}

// paymentBlock draws the scan-to-pay section and returns the y coordinate of
// its bottom edge.
func (e *Exporter) paymentBlock(pdf *gofpdf.Fpdf, bill billing.Bill, qrPNG []byte, y float64) float64 {
	if y+45 > 277 {
		pdf.AddPage()
		y = 20
	}
	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("payqr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("payqr", 15, y, 40, 40, false, opts, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(15, 23, 42)
	pdf.Text(60, y+10, "Scan to Pay")
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(71, 85, 105)
	pdf.Text(60, y+17, "UPI ID: "+e.cfg.UPIID)
	pdf.Text(60, y+24, "Phone: "+e.cfg.Phone)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(15, 23, 42)
	pdf.Text(60, y+31, "Amount: "+utils.FormatCurrency(bill.GrandTotal))
	return y + 40
}

package infra

// pdf.go — purchase order document rendering using go-pdf/fpdf.
// Generates an A4 PO sheet with supplier block, item table and total, saved
// into the document archive so the stored document_path can serve it later.

import (
	"fmt"

	"dapurstok/internal/model"

	"github.com/go-pdf/fpdf"
)

// RenderPurchaseOrderPDF renders po into a PDF and archives it under the
// PO's date. Returns the archive path (e.g. "/archive/2026-08-31/PO-....pdf").
func RenderPurchaseOrderPDF(po *model.PurchaseOrder, store *DocumentStore) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "PURCHASE ORDER", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, po.PONumber, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Supplier / order info ────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW/2, 5, "Supplier", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Tanggal", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	supplierName := ""
	if po.Supplier != nil {
		supplierName = po.Supplier.Name
	}
	pdf.CellFormat(contentW/2, 5, supplierName, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, po.Date.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // product
	col2 := contentW * 0.15 // qty
	col3 := contentW * 0.10 // unit
	col4 := contentW * 0.17 // unit price
	col5 := contentW * 0.18 // total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Barang", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, "Satuan", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Harga", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Jumlah", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range po.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		if len(name) > 40 {
			name = name[:39] + "…"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, item.Unit, "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, item.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3+col4, 7, "TOTAL:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 7, po.TotalAmount.StringFixed(2), "T", 1, "R", false, 0, "")

	if po.Notes != nil && *po.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 5, "Catatan: "+*po.Notes, "", "L", false)
	}

	var buf pdfBuffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("pdf: render PO %s: %w", po.PONumber, err)
	}

	return store.Archive(buf.data, po.Date.Format("2006-01-02"), po.PONumber+".pdf")
}

// pdfBuffer collects fpdf output in memory so it can go through the
// document store instead of straight to disk.
type pdfBuffer struct{ data []byte }

func (b *pdfBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

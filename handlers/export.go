package handlers

import (
	"net/http"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"community-fund/fund"
	"community-fund/models"
)

// Export downloads the ledger as a PDF or XLSX report. Without a format
// parameter it falls back to JSON.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Fund.Transactions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	txs = fund.SortByDateDesc(txs)

	switch r.URL.Query().Get("format") {
	case "pdf":
		h.exportPDF(txs, w)
	case "xlsx":
		h.exportXLSX(txs, w)
	default:
		h.GetTransactions(w, r)
	}
}

func (h *Handler) exportPDF(txs []models.Transaction, w http.ResponseWriter) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Community Fund Contributions")
	pdf.Ln(12)

	// Table header
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(35, 7, "Date")
	pdf.Cell(55, 7, "Member")
	pdf.Cell(40, 7, "Role")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(7)

	// Table rows
	pdf.SetFont("Arial", "", 12)
	for _, tx := range txs {
		pdf.CellFormat(35, 7, tx.Date, "1", 0, "", false, 0, "")
		pdf.CellFormat(55, 7, tx.MemberName, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, string(tx.Role), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, strconv.FormatFloat(tx.Amount, 'f', 2, 64), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="contributions.pdf"`)
	if err := pdf.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) exportXLSX(txs []models.Transaction, w http.ResponseWriter) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Contributions")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	row := sheet.AddRow()
	row.AddCell().SetValue("Date")
	row.AddCell().SetValue("Member")
	row.AddCell().SetValue("Role")
	row.AddCell().SetValue("Amount")

	for _, tx := range txs {
		row = sheet.AddRow()
		row.AddCell().SetValue(tx.Date)
		row.AddCell().SetValue(tx.MemberName)
		row.AddCell().SetValue(string(tx.Role))
		row.AddCell().SetValue(tx.Amount)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="contributions.xlsx"`)
	if err := file.Write(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

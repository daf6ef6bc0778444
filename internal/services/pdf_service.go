package services

import (
	"bytes"
	"fmt"

	"referral-backend/internal/models"
	"referral-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders invoices and job sheets as A4 documents.
// All labels are German; the documents go out to Austrian recipients.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateInvoicePDF renders an invoice with its job line items
func (s *PDFService) GenerateInvoicePDF(settings *models.Settings, data *models.InvoiceForPDF) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate umlauts and the euro sign
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(180, 8, tr(settings.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(180, 5, tr(settings.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 5, tr(fmt.Sprintf("%s  |  %s", settings.Email, settings.Website)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Recipient
	if data.Company != nil {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(180, 6, tr(data.Company.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(180, 5, tr(data.Company.Address), "", 1, "L", false, 0, "")
		if data.Company.VatID != nil && *data.Company.VatID != "" {
			pdf.CellFormat(180, 5, tr(fmt.Sprintf("UID-Nr.: %s", *data.Company.VatID)), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(8)

	// Title and metadata
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(180, 8, "RECHNUNG", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(90, 6, tr(fmt.Sprintf("Rechnungsnummer: %s", data.InvoiceNumber)), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, tr(fmt.Sprintf("Rechnungsdatum: %s", timeutil.Format(data.Date, timeutil.DateLayout))), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 6, tr(fmt.Sprintf("Leistungszeitraum: %s", data.MonthYear)), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Line item table
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(28, 7, "Auftrag", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Datum", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Hausverwaltung", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Gewerk", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, tr("Vermittlungsgebühr"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, job := range data.Jobs {
		manager := ""
		if job.PropertyManager != nil {
			manager = job.PropertyManager.Name
		}
		if len(manager) > 26 {
			manager = manager[:23] + "..."
		}
		trade := job.Trade
		if len(trade) > 17 {
			trade = trade[:14] + "..."
		}
		pdf.CellFormat(28, 6, job.JobNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, timeutil.Format(job.CreatedAt, timeutil.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, tr(manager), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, tr(trade), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, job.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, tr(formatEuro(job.ReferralFee)), "1", 1, "R", false, 0, "")
	}

	// Total
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Gesamtsumme", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, tr(formatEuro(data.TotalAmount)), "1", 1, "R", true, 0, "")
	pdf.Ln(8)

	// Payment terms follow the billed company, 14 days if unset
	termsDays := 14
	if data.Company != nil && data.Company.PaymentTermsDays > 0 {
		termsDays = data.Company.PaymentTermsDays
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, tr(fmt.Sprintf("Zahlungsziel: %d Tage ab Rechnungsdatum", termsDays)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateJobPDF renders the job sheet with the report if one exists
func (s *PDFService) GenerateJobPDF(settings *models.Settings, data *models.JobForPDF) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(180, 8, tr(settings.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(180, 5, tr(settings.Address), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(180, 8, tr("Auftragsblatt / Einsatzprotokoll"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(90, 6, tr(fmt.Sprintf("Auftragsnummer: %s", data.JobNumber)), "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, tr(fmt.Sprintf("Datum: %s", timeutil.Format(data.CreatedAt, timeutil.DateLayout))), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 6, tr(fmt.Sprintf("Status: %s", data.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Parties
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(180, 7, "Auftragsdaten", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)

	manager := "-"
	if data.PropertyManager != nil {
		manager = data.PropertyManager.Name
	}
	company := "-"
	if data.Company != nil {
		company = data.Company.Name
	}
	pdf.CellFormat(90, 7, tr(fmt.Sprintf("Hausverwaltung: %s", manager)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr(fmt.Sprintf("Firma: %s", company)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr(fmt.Sprintf("Einsatzort: %s", data.LocationAddress)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, tr(fmt.Sprintf("Gewerk: %s", data.Trade)), "RB", 1, "L", false, 0, "")
	if data.Description != nil && *data.Description != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(180, 7, "Beschreibung", "LR", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(180, 5, tr(*data.Description), "LRB", "L", false)
	}
	pdf.Ln(5)

	// Report section
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(180, 7, "Einsatzprotokoll", "1", 1, "L", true, 0, "")
	if data.Report == nil {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(180, 7, tr("Noch kein Protokoll erfasst"), "LRB", 1, "L", false, 0, "")
	} else {
		writeReportField(pdf, tr, "Arbeitsschritte", data.Report.Steps)
		writeReportField(pdf, tr, "Zeiten", data.Report.Times)
		writeReportField(pdf, tr, "Material", data.Report.Material)
		writeReportField(pdf, tr, "Ergebnis", data.Report.Result)
		writeReportField(pdf, tr, "Fotos", data.Report.PhotosURL)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReportField(pdf *gofpdf.Fpdf, tr func(string) string, label string, value *string) {
	text := "-"
	if value != nil && *value != "" {
		text = *value
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(180, 6, tr(label), "LR", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(180, 5, tr(text), "LRB", "L", false)
}

// formatEuro renders a decimal-text amount as a euro value
func formatEuro(amount string) string {
	return fmt.Sprintf("€ %.2f", ParseFee(amount))
}

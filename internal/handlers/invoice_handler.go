package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"referral-backend/internal/metrics"
	"referral-backend/internal/models"
	"referral-backend/internal/services"
	"referral-backend/internal/timeutil"
	"referral-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type InvoiceHandler struct {
	Service  *services.InvoiceService
	Settings *services.SettingsService
	PDF      *services.PDFService
}

func NewInvoiceHandler(s *services.InvoiceService, settings *services.SettingsService, pdf *services.PDFService) *InvoiceHandler {
	return &InvoiceHandler{Service: s, Settings: settings, PDF: pdf}
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.List(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, invoices)
}

// GenerateInvoices bills all completed, unbilled jobs of a month
func (h *InvoiceHandler) GenerateInvoices(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateInvoicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	// A month that matches no jobs simply yields an empty result
	invoices, err := h.Service.Generate(context.Background(), req.MonthYear)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.InvoicesGenerated.Add(float64(len(invoices)))

	utils.JSON(w, http.StatusCreated, invoices)
}

// PayInvoice marks an invoice as paid
func (h *InvoiceHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.PayInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	paidAt := req.PaidAt
	if paidAt.IsZero() {
		paidAt = timeutil.Now()
	}

	invoice, err := h.Service.MarkPaid(context.Background(), id, paidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "Invoice not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, invoice)
}

// ExportInvoicePDF renders the invoice document
func (h *InvoiceHandler) ExportInvoicePDF(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	invoice, err := h.Service.GetForPDF(context.Background(), id)
	if err != nil {
		http.Error(w, "Invoice not found", http.StatusNotFound)
		return
	}

	settings, err := h.Settings.Get(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pdfData, err := h.PDF.GenerateInvoicePDF(settings, invoice)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.PDFExportsTotal.WithLabelValues("invoice").Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.pdf"`, invoice.InvoiceNumber))
	w.Write(pdfData)
}

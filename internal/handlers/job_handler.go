package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"referral-backend/internal/metrics"
	"referral-backend/internal/models"
	"referral-backend/internal/services"
	"referral-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type JobHandler struct {
	Service  *services.JobService
	Settings *services.SettingsService
	PDF      *services.PDFService
}

func NewJobHandler(s *services.JobService, settings *services.SettingsService, pdf *services.PDFService) *JobHandler {
	return &JobHandler{Service: s, Settings: settings, PDF: pdf}
}

func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Service.List(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	job, err := h.Service.Get(context.Background(), id)
	if err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, job)
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LocationAddress == "" || req.Trade == "" {
		http.Error(w, "location_address and trade are required", http.StatusBadRequest)
		return
	}

	job, err := h.Service.Create(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.Service.Update(context.Background(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, job)
}

// UpsertJobReport creates or patches the report attached to a job
func (h *JobHandler) UpsertJobReport(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	// The job must exist before a report can hang off it
	if _, err := h.Service.Get(context.Background(), id); err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	var req models.UpsertJobReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := h.Service.UpsertReport(context.Background(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, report)
}

// ExportJobPDF renders the job sheet with its report
func (h *JobHandler) ExportJobPDF(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	job, err := h.Service.GetForPDF(context.Background(), id)
	if err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	settings, err := h.Settings.Get(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pdfData, err := h.PDF.GenerateJobPDF(settings, job)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.PDFExportsTotal.WithLabelValues("job").Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="auftrag_%s.pdf"`, job.JobNumber))
	w.Write(pdfData)
}

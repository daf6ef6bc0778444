package handlers

import (
	"context"
	"net/http"
	"strconv"

	"referral-backend/internal/models"
	"referral-backend/internal/services"
	"referral-backend/internal/storage"
	"referral-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// maxPhotoSize limits report photo uploads to 10 MB
const maxPhotoSize = 10 << 20

// UploadHandler stores report photos in object storage and saves the
// resulting URL on the job's report. A nil uploader means storage is not
// configured and uploads are rejected.
type UploadHandler struct {
	Uploader *storage.Uploader
	Jobs     *services.JobService
}

func NewUploadHandler(uploader *storage.Uploader, jobs *services.JobService) *UploadHandler {
	return &UploadHandler{Uploader: uploader, Jobs: jobs}
}

// UploadJobPhoto accepts a multipart photo for a job report, stores it and
// upserts the report with the photo URL. Responds with the updated report.
func (h *UploadHandler) UploadJobPhoto(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		http.Error(w, "Photo storage is not configured", http.StatusServiceUnavailable)
		return
	}

	idStr := mux.Vars(r)["id"]
	jobID, _ := strconv.Atoi(idStr)

	if _, err := h.Jobs.Get(context.Background(), jobID); err != nil {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		http.Error(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Uploader.UploadReportPhoto(context.Background(), jobID, header.Filename, contentType, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report, err := h.Jobs.UpsertReport(context.Background(), jobID,
		&models.UpsertJobReportRequest{PhotosURL: &url})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, report)
}

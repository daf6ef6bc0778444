package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"referral-backend/internal/handlers"
	"referral-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	propertyManagerHandler *handlers.PropertyManagerHandler,
	companyHandler *handlers.CompanyHandler,
	cooperationHandler *handlers.CooperationHandler,
	jobHandler *handlers.JobHandler,
	uploadHandler *handlers.UploadHandler,
	invoiceHandler *handlers.InvoiceHandler,
	settingsHandler *handlers.SettingsHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	r.Handle("/api/auth/user",
		authMiddleware.Authenticate(http.HandlerFunc(authHandler.CurrentUser))).Methods("GET")

	// Protected API routes - Property Managers
	managersAPI := r.PathPrefix("/api/property-managers").Subrouter()
	managersAPI.Use(authMiddleware.Authenticate)
	managersAPI.HandleFunc("", propertyManagerHandler.ListPropertyManagers).Methods("GET")
	managersAPI.HandleFunc("", propertyManagerHandler.CreatePropertyManager).Methods("POST")
	managersAPI.HandleFunc("/{id}", propertyManagerHandler.GetPropertyManager).Methods("GET")
	managersAPI.HandleFunc("/{id}", propertyManagerHandler.UpdatePropertyManager).Methods("PUT")
	managersAPI.HandleFunc("/{id}", propertyManagerHandler.DeletePropertyManager).Methods("DELETE")

	// Protected API routes - Companies
	companiesAPI := r.PathPrefix("/api/companies").Subrouter()
	companiesAPI.Use(authMiddleware.Authenticate)
	companiesAPI.HandleFunc("", companyHandler.ListCompanies).Methods("GET")
	companiesAPI.HandleFunc("", companyHandler.CreateCompany).Methods("POST")
	companiesAPI.HandleFunc("/{id}", companyHandler.GetCompany).Methods("GET")
	companiesAPI.HandleFunc("/{id}", companyHandler.UpdateCompany).Methods("PUT")
	companiesAPI.HandleFunc("/{id}", companyHandler.DeleteCompany).Methods("DELETE")

	// Protected API routes - Cooperations
	cooperationsAPI := r.PathPrefix("/api/cooperations").Subrouter()
	cooperationsAPI.Use(authMiddleware.Authenticate)
	cooperationsAPI.HandleFunc("", cooperationHandler.ListCooperations).Methods("GET")
	cooperationsAPI.HandleFunc("", cooperationHandler.ToggleCooperation).Methods("POST")

	// Protected API routes - Jobs and their reports
	jobsAPI := r.PathPrefix("/api/jobs").Subrouter()
	jobsAPI.Use(authMiddleware.Authenticate)
	jobsAPI.HandleFunc("", jobHandler.ListJobs).Methods("GET")
	jobsAPI.HandleFunc("", jobHandler.CreateJob).Methods("POST")
	jobsAPI.HandleFunc("/{id}", jobHandler.GetJob).Methods("GET")
	jobsAPI.HandleFunc("/{id}", jobHandler.UpdateJob).Methods("PUT")
	jobsAPI.HandleFunc("/{id}/report", jobHandler.UpsertJobReport).Methods("POST")
	jobsAPI.HandleFunc("/{id}/report/photos", uploadHandler.UploadJobPhoto).Methods("POST")
	jobsAPI.HandleFunc("/{id}/pdf", jobHandler.ExportJobPDF).Methods("GET")

	// Protected API routes - Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.HandleFunc("/generate", invoiceHandler.GenerateInvoices).Methods("POST")
	invoicesAPI.HandleFunc("/{id}/pay", invoiceHandler.PayInvoice).Methods("PATCH")
	invoicesAPI.HandleFunc("/{id}/pdf", invoiceHandler.ExportInvoicePDF).Methods("GET")

	// Protected API routes - Settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingsHandler.GetSettings).Methods("GET")
	settingsAPI.HandleFunc("", settingsHandler.UpdateSettings).Methods("POST")

	// Health endpoints (no auth required - for probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

package http

import (
	"net/http"

	"hospital-admin-api/internal/delivery/http/handler"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/internal/monitoring"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	scheduleHandler    *handler.ScheduleHandler
	appointmentHandler *handler.AppointmentHandler
	serviceHandler     *handler.ServiceHandler
	eventHandler       *handler.EventHandler
	historiqueHandler  *handler.HistoriqueHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	storageRoot        string
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	serviceHandler *handler.ServiceHandler,
	eventHandler *handler.EventHandler,
	historiqueHandler *handler.HistoriqueHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	storageRoot string,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		scheduleHandler:    scheduleHandler,
		appointmentHandler: appointmentHandler,
		serviceHandler:     serviceHandler,
		eventHandler:       eventHandler,
		historiqueHandler:  historiqueHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
		storageRoot:        storageRoot,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Prometheus metrics
	r.router.Handle("/metrics", monitoring.Handler()).Methods(http.MethodGet)

	// Doctor routes
	r.router.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Patient routes
	r.router.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Schedule routes
	r.router.HandleFunc("/schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/schedules", r.scheduleHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/schedules/doctor/{doctorId}", r.scheduleHandler.GetByDoctor).Methods(http.MethodGet)
	r.router.HandleFunc("/schedules/available/{doctorId}", r.scheduleHandler.GetAvailableSlots).Methods(http.MethodGet)
	r.router.HandleFunc("/schedules/{id}", r.scheduleHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/schedules/{id}", r.scheduleHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/schedules/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)

	// Appointment routes, singular prefix kept from the historical API
	r.router.HandleFunc("/appointment", r.appointmentHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/appointment", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/{id}/statut/{statut}", r.appointmentHandler.UpdateStatut).Methods(http.MethodPut)
	r.router.HandleFunc("/appointment/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/appointment/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Service routes
	r.router.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/services", r.serviceHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/services/doctor/{doctorId}", r.serviceHandler.GetByDoctor).Methods(http.MethodGet)
	r.router.HandleFunc("/services/{id}", r.serviceHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Event routes
	r.router.HandleFunc("/events", r.eventHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/events", r.eventHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/events/{id}", r.eventHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/events/{id}", r.eventHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/events/{id}", r.eventHandler.Delete).Methods(http.MethodDelete)

	// Historique routes
	r.router.HandleFunc("/historiques", r.historiqueHandler.Create).Methods(http.MethodPost)
	r.router.HandleFunc("/historiques", r.historiqueHandler.GetAll).Methods(http.MethodGet)
	r.router.HandleFunc("/historiques/{id}", r.historiqueHandler.Get).Methods(http.MethodGet)
	r.router.HandleFunc("/historiques/{id}", r.historiqueHandler.Update).Methods(http.MethodPut)
	r.router.HandleFunc("/historiques/{id}", r.historiqueHandler.Delete).Methods(http.MethodDelete)

	// Uploaded files
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.storageRoot))),
	).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

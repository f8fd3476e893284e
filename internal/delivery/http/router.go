package http

import (
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/handler"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	agendamentoHandler  *handler.AgendamentoHandler
	filaEsperaHandler   *handler.FilaEsperaHandler
	dentistaHandler     *handler.DentistaHandler
	pacienteHandler     *handler.PacienteHandler
	planoDentalHandler  *handler.PlanoDentalHandler
	evolucaoHandler     *handler.EvolucaoHandler
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	agendamentoHandler *handler.AgendamentoHandler,
	filaEsperaHandler *handler.FilaEsperaHandler,
	dentistaHandler *handler.DentistaHandler,
	pacienteHandler *handler.PacienteHandler,
	planoDentalHandler *handler.PlanoDentalHandler,
	evolucaoHandler *handler.EvolucaoHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		agendamentoHandler:  agendamentoHandler,
		filaEsperaHandler:   filaEsperaHandler,
		dentistaHandler:     dentistaHandler,
		pacienteHandler:     pacienteHandler,
		planoDentalHandler:  planoDentalHandler,
		evolucaoHandler:     evolucaoHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/login", r.rateLimitMiddleware.LimitLogin(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Staff routes: any authenticated clinic role
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Agendamentos
	staff.HandleFunc("/agendamentos", r.agendamentoHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/agendamentos", r.agendamentoHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/agendamentos/verificar-disponibilidade", r.agendamentoHandler.VerificarDisponibilidade).Methods(http.MethodGet)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}", r.agendamentoHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}", r.agendamentoHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}", r.agendamentoHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}/confirmar", r.agendamentoHandler.Confirmar).Methods(http.MethodPatch)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}/iniciar-atendimento", r.agendamentoHandler.IniciarAtendimento).Methods(http.MethodPatch)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}/concluir", r.agendamentoHandler.Concluir).Methods(http.MethodPatch)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}/cancelar", r.agendamentoHandler.Cancelar).Methods(http.MethodPatch)
	staff.HandleFunc("/agendamentos/{id:[0-9]+}/marcar-falta", r.agendamentoHandler.MarcarFalta).Methods(http.MethodPatch)

	// Fila de espera
	staff.HandleFunc("/fila-espera", r.filaEsperaHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/fila-espera", r.filaEsperaHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/fila-espera/expirar", r.filaEsperaHandler.Expirar).Methods(http.MethodPatch)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}", r.filaEsperaHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}", r.filaEsperaHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}", r.filaEsperaHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}/notificar", r.filaEsperaHandler.Notificar).Methods(http.MethodPatch)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}/confirmar", r.filaEsperaHandler.ConfirmarInteresse).Methods(http.MethodPatch)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}/converter", r.filaEsperaHandler.Converter).Methods(http.MethodPatch)
	staff.HandleFunc("/fila-espera/{id:[0-9]+}/cancelar", r.filaEsperaHandler.Cancelar).Methods(http.MethodPatch)

	// Cadastros
	staff.HandleFunc("/dentistas", r.dentistaHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/dentistas", r.dentistaHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/dentistas/{id:[0-9]+}", r.dentistaHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/dentistas/{id:[0-9]+}", r.dentistaHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/dentistas/{id:[0-9]+}", r.dentistaHandler.Delete).Methods(http.MethodDelete)

	staff.HandleFunc("/pacientes", r.pacienteHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/pacientes", r.pacienteHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/pacientes/{id:[0-9]+}", r.pacienteHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/pacientes/{id:[0-9]+}", r.pacienteHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/pacientes/{id:[0-9]+}", r.pacienteHandler.Delete).Methods(http.MethodDelete)

	// Clinical records: dentists and admins only
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireDentistaOrAdmin)

	clinical.HandleFunc("/planos-dentais", r.planoDentalHandler.List).Methods(http.MethodGet)
	clinical.HandleFunc("/planos-dentais", r.planoDentalHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}", r.planoDentalHandler.Get).Methods(http.MethodGet)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}", r.planoDentalHandler.Update).Methods(http.MethodPut)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}", r.planoDentalHandler.Delete).Methods(http.MethodDelete)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}/iniciar", r.planoDentalHandler.Iniciar).Methods(http.MethodPatch)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}/concluir", r.planoDentalHandler.Concluir).Methods(http.MethodPatch)
	clinical.HandleFunc("/planos-dentais/{id:[0-9]+}/cancelar", r.planoDentalHandler.Cancelar).Methods(http.MethodPatch)

	clinical.HandleFunc("/evolucoes", r.evolucaoHandler.ListByPaciente).Methods(http.MethodGet)
	clinical.HandleFunc("/evolucoes", r.evolucaoHandler.Create).Methods(http.MethodPost)
	clinical.HandleFunc("/evolucoes/{id:[0-9]+}", r.evolucaoHandler.Delete).Methods(http.MethodDelete)

	// User management: admin only
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

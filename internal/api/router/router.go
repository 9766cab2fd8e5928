package router

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gocadastro/docs" // Registra o documento Swagger
	"gocadastro/internal/api/auth"
	"gocadastro/internal/api/user"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/httpx"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/middleware"
	"gocadastro/internal/pkg/ratelimit"
)

// DocsPrefix é o caminho da documentação Swagger.
const DocsPrefix = "/api-docs"

// MsgRouteNotFound é a mensagem devolvida para rotas inexistentes.
const MsgRouteNotFound = "Rota não encontrada"

// Options reúne as dependências de infraestrutura do roteador.
type Options struct {
	Logger        logger.Logger
	Limiter       ratelimit.Limiter // nil desativa o limite de requisições
	AllowedOrigin string
}

// NewRouter configura e retorna o roteador HTTP principal, já envolvido pelos middlewares globais.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(userHandler *user.Handler, authHandler *auth.Handler, opts Options) http.Handler {
	log := opts.Logger
	r := mux.NewRouter()

	// --- 1. Rotas de Health Check ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthCheckHandler).Methods(http.MethodGet)

	// --- 2. Rotas de Usuário e Autenticação ---
	r.HandleFunc("/users", userHandler.RegisterUserHandler).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.LoginHandler).Methods(http.MethodPost)

	// --- 3. Documentação ---
	r.Handle(DocsPrefix, http.RedirectHandler(DocsPrefix+"/index.html", http.StatusMovedPermanently)).Methods(http.MethodGet)
	r.PathPrefix(DocsPrefix + "/").Handler(httpSwagger.Handler(
		httpSwagger.URL(DocsPrefix + "/doc.json"),
	)).Methods(http.MethodGet)

	// --- 4. Respostas JSON para rota inexistente e método não permitido ---
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httpx.Error(w, req, log, apperror.NewNotFoundError(MsgRouteNotFound))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httpx.Error(w, req, log, apperror.NewMethodNotAllowedError(req.Method))
	})

	// --- 5. Middlewares Globais (o primeiro é o mais externo) ---
	mws := []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.AccessLog(log),
		middleware.Recovery(log),
		middleware.SecurityHeaders(DocsPrefix),
		middleware.CORS(opts.AllowedOrigin),
	}
	if opts.Limiter != nil {
		mws = append(mws, middleware.RateLimiter(opts.Limiter, middleware.ClientIP, log))
	}

	return middleware.Chain(r, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// HealthCheckHandler responde {"status":"online"}.
// @Summary Verifica se o serviço está no ar
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, nil, http.StatusOK, map[string]string{"status": "online"})
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // Garante o fuso America/Sao_Paulo mesmo em imagens sem tzdata

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gocadastro/config"
	"gocadastro/internal/pkg/cache"
	"gocadastro/internal/pkg/clock"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/ratelimit"

	// Camadas para Injeção de Dependências
	"gocadastro/internal/api/auth"   // Handlers
	"gocadastro/internal/api/router" // Roteador central
	"gocadastro/internal/api/user"
	"gocadastro/internal/repository/userrepo" // Acesso a Dados
	"gocadastro/internal/service/authservice" // Lógica de Negócio
	"gocadastro/internal/service/userservice"
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	log.Println("⚡ Inicializando serviço de cadastro...")
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	loc, err := clock.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Warn("Fuso horário inválido; usando o horário local.", map[string]interface{}{"tz": cfg.TimeZone})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Rate Limiting (memória ou Redis)
	var limiter ratelimit.Limiter
	if cfg.RateLimitEnabled {
		switch cfg.RateLimitBackend {
		case config.RateLimitBackendRedis:
			cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisTimeout)
			if err != nil {
				log.Fatal("Não foi possível conectar ao Redis.", err)
			}
			defer cacheClient.Close()
			log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
			limiter = ratelimit.NewFixedWindow(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
		default:
			store := ratelimit.NewMemoryStore(cfg.RateLimitRPS, cfg.RateLimitBurst)
			store.StartJanitor(ctx)
			limiter = store
		}
		log.Info("Rate limit ativado.", map[string]interface{}{"backend": cfg.RateLimitBackend})
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Montagem da Clean Architecture)
	// Ordem: Repository -> Service -> Handler

	// A. Repositório (em memória, vive enquanto o processo estiver de pé)
	userRepo := userrepo.NewUserRepository(log)
	log.Debug("Repositório de Usuário inicializado.", nil)

	// B. Serviços
	userSvc := userservice.NewService(userRepo, clock.System(loc), log)
	authSvc := authservice.NewService(userRepo, log)
	log.Debug("Serviços de Usuário e Autenticação inicializados.", nil)

	// C. Handlers
	userHandler := user.NewHandler(userSvc, log)
	authHandler := auth.NewHandler(authSvc, log)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(userHandler, authHandler, router.Options{
		Logger:        log,
		Limiter:       limiter,
		AllowedOrigin: cfg.CORSAllowedOrigin,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	<-ctx.Done()
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}

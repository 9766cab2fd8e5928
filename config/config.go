package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backends de limite de requisições suportados.
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Config armazena todas as configurações do serviço de cadastro.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string
	TimeZone    string // Fuso usado no cálculo de idade (e.g., America/Sao_Paulo)

	// HTTP
	CORSAllowedOrigin string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// Rate Limiting
	RateLimitEnabled     bool
	RateLimitBackend     string  // memory | redis
	RateLimitRPS         float64 // memory: tokens por segundo
	RateLimitBurst       int     // memory: rajada máxima
	RateLimitMaxRequests int     // redis: requisições por janela
	RateLimitPeriod      time.Duration

	// Cache (Redis), usado pelo backend redis do rate limit
	RedisAddr    string
	RedisTimeout time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O main.go chama godotenv.Load() antes, para aceitar um arquivo .env opcional.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "3333"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		TimeZone:    getEnv("TZ_NAME", "America/Sao_Paulo"),

		// 2. HTTP
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		ReadTimeout:       getDurationEnv("HTTP_READ_TIMEOUT_SEC", 10) * time.Second,
		WriteTimeout:      getDurationEnv("HTTP_WRITE_TIMEOUT_SEC", 10) * time.Second,
		IdleTimeout:       getDurationEnv("HTTP_IDLE_TIMEOUT_SEC", 60) * time.Second,
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT_SEC", 15) * time.Second,

		// 3. Rate Limiting
		RateLimitEnabled:     getBoolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitBackend:     strings.ToLower(getEnv("RATE_LIMIT_BACKEND", RateLimitBackendMemory)),
		RateLimitRPS:         getFloatEnv("RATE_LIMIT_RPS", 5),
		RateLimitBurst:       getIntEnv("RATE_LIMIT_BURST", 10),
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 4. Cache (Redis)
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisTimeout: getDurationEnv("REDIS_TIMEOUT_SEC", 2) * time.Second,
	}

	if cfg.RateLimitBackend != RateLimitBackendMemory && cfg.RateLimitBackend != RateLimitBackendRedis {
		log.Printf("⚠️ Aviso: RATE_LIMIT_BACKEND ('%s') desconhecido. Usando padrão (%s).", cfg.RateLimitBackend, RateLimitBackendMemory)
		cfg.RateLimitBackend = RateLimitBackendMemory
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
// Variável definida como vazia conta como ausente.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration
// (a unidade é aplicada por quem chama).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número válido. Usando padrão (%g).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

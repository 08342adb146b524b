package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/gateway/payment/paystack"
)

const (
	EnvProduction = "production"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	defaultBackendBaseURL   = "http://localhost:4000"
	defaultBackendAPIPrefix = "/api"
	defaultBackendTimeout   = 10 * time.Second
	defaultCurrency         = "ZAR"
	defaultSessionTTL       = 30 * time.Minute
	defaultPaymentTTL       = 24 * time.Hour
	defaultViewIdleTTL      = 15 * time.Minute
	defaultEvictionInterval = time.Minute
	defaultRedisAddr        = "localhost:6379"
	defaultLogLevel         = "info"
	defaultRequestTimeout   = 15 * time.Second
	defaultRateLimiterQPS   = 100
	defaultRateLimiterBurst = 100
)

type (
	App struct {
		Env      string
		LogLevel string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Backend struct {
		BaseURL      string
		APIPrefix    string
		Timeout      time.Duration
		AuthToken    string
		StartupProbe bool // ждать /health бэкенда перед стартом
	}

	Checkout struct {
		PaystackPublicKey string
		Currency          string
		SessionTTL        time.Duration
		PaymentTTL        time.Duration // сессия в ожидании оплаты живёт не меньше
		SessionStore      string        // memory | redis
	}

	Redis struct {
		Addr string
	}

	Dashboard struct {
		ViewIdleTTL time.Duration
	}

	Tasks struct {
		EvictionInterval time.Duration
	}

	Config struct {
		App       App
		Server    HTTPServer
		Backend   Backend
		Checkout  Checkout
		Redis     Redis
		Dashboard Dashboard
		Tasks     Tasks
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) Production() bool {
	return strings.EqualFold(c.App.Env, EnvProduction)
}

// UsesPlaceholderPaymentKey: оплата в таком режиме работать не будет,
// вне production об этом только предупреждаем.
func (c *Config) UsesPlaceholderPaymentKey() bool {
	return paystack.IsPlaceholderKey(c.Checkout.PaystackPublicKey)
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backendTimeout, err := osGetEnvDuration("BACKEND_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	startupProbe, err := osGetBool("BACKEND_STARTUP_PROBE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("CHECKOUT_SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentTTL, err := osGetEnvDuration("CHECKOUT_PAYMENT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	viewIdleTTL, err := osGetEnvDuration("VIEW_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	evictionInterval, err := osGetEnvDuration("BACKGROUND_EVICTION_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		App: App{
			Env:      os.Getenv("APP_ENV"),
			LogLevel: os.Getenv("LOG_LEVEL"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Backend: Backend{
			BaseURL:      os.Getenv("BACKEND_BASE_URL"),
			APIPrefix:    os.Getenv("BACKEND_API_PREFIX"),
			Timeout:      backendTimeout,
			AuthToken:    os.Getenv("BACKEND_AUTH_TOKEN"),
			StartupProbe: startupProbe,
		},
		Checkout: Checkout{
			PaystackPublicKey: strings.TrimSpace(os.Getenv("PAYSTACK_PUBLIC_KEY")),
			Currency:          os.Getenv("CHECKOUT_CURRENCY"),
			SessionTTL:        sessionTTL,
			PaymentTTL:        paymentTTL,
			SessionStore:      strings.ToLower(os.Getenv("CHECKOUT_SESSION_STORE")),
		},
		Redis: Redis{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Dashboard: Dashboard{
			ViewIdleTTL: viewIdleTTL,
		},
		Tasks: Tasks{
			EvictionInterval: evictionInterval,
		},
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.App.LogLevel, defaultLogLevel)
	setDefault(&cfg.Backend.BaseURL, defaultBackendBaseURL)
	setDefault(&cfg.Backend.APIPrefix, defaultBackendAPIPrefix)
	setDefault(&cfg.Checkout.PaystackPublicKey, paystack.PlaceholderPublicKey)
	setDefault(&cfg.Checkout.Currency, defaultCurrency)
	setDefault(&cfg.Checkout.SessionStore, SessionStoreMemory)
	setDefault(&cfg.Redis.Addr, defaultRedisAddr)

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.RateLimiterQPS == 0 {
		cfg.Server.RateLimiterQPS = defaultRateLimiterQPS
	}
	if cfg.Server.RateLimiterBurst == 0 {
		cfg.Server.RateLimiterBurst = defaultRateLimiterBurst
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}
	if cfg.Checkout.SessionTTL == 0 {
		cfg.Checkout.SessionTTL = defaultSessionTTL
	}
	if cfg.Checkout.PaymentTTL == 0 {
		cfg.Checkout.PaymentTTL = defaultPaymentTTL
	}
	if cfg.Dashboard.ViewIdleTTL == 0 {
		cfg.Dashboard.ViewIdleTTL = defaultViewIdleTTL
	}
	if cfg.Tasks.EvictionInterval == 0 {
		cfg.Tasks.EvictionInterval = defaultEvictionInterval
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED is set")
	}
	if cfg.Server.RateLimiterQPS < 0 || cfg.Server.RateLimiterBurst < 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS and MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}

	if cfg.Backend.Timeout < 0 {
		return errors.New("BACKEND_TIMEOUT must be positive")
	}

	switch cfg.Checkout.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("CHECKOUT_SESSION_STORE must be %q or %q, got %q",
			SessionStoreMemory, SessionStoreRedis, cfg.Checkout.SessionStore)
	}

	if cfg.Production() && cfg.UsesPlaceholderPaymentKey() {
		return errors.New("PAYSTACK_PUBLIC_KEY is required in production, placeholder key is not accepted")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

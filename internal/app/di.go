// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/credstore/internal/config"
	credentialHTTP "github.com/allisson/credstore/internal/credential/http"
	credentialUseCase "github.com/allisson/credstore/internal/credential/usecase"
	cryptoService "github.com/allisson/credstore/internal/crypto/service"
	"github.com/allisson/credstore/internal/database"
	"github.com/allisson/credstore/internal/http"
	keysHTTP "github.com/allisson/credstore/internal/keys/http"
	keysService "github.com/allisson/credstore/internal/keys/service"
	"github.com/allisson/credstore/internal/metrics"
	"github.com/allisson/credstore/internal/securestore"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	keeperSealer    *securestore.KeeperSealer

	// Secure store
	secureStore securestore.Store

	// Services
	keyManager        keysService.KeyManager
	encrypter         cryptoService.Encrypter
	credentialUseCase credentialUseCase.CredentialUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	txManagerInit         sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	secureStoreInit       sync.Once
	keyManagerInit        sync.Once
	encrypterInit         sync.Once
	credentialUseCaseInit sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection. Only valid for SQL store backends.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, or nil when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// SecureStore returns the secure store selected by configuration, wrapped
// with at-rest sealing when a seal mode is configured.
func (c *Container) SecureStore() (securestore.Store, error) {
	var err error
	c.secureStoreInit.Do(func() {
		c.secureStore, err = c.initSecureStore()
		if err != nil {
			c.initErrors["secureStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secureStore"]; exists {
		return nil, storedErr
	}
	return c.secureStore, nil
}

// KeyManager returns the key manager service.
func (c *Container) KeyManager() (keysService.KeyManager, error) {
	var err error
	c.keyManagerInit.Do(func() {
		c.keyManager, err = c.initKeyManager()
		if err != nil {
			c.initErrors["keyManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyManager"]; exists {
		return nil, storedErr
	}
	return c.keyManager, nil
}

// Encrypter returns the RSA encryption service.
func (c *Container) Encrypter() cryptoService.Encrypter {
	c.encrypterInit.Do(func() {
		c.encrypter = cryptoService.NewRSAEncrypter()
	})
	return c.encrypter
}

// CredentialUseCase returns the credential use case instance.
func (c *Container) CredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.keeperSealer != nil {
		if err := c.keeperSealer.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("keeper close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// usesDatabase reports whether the configured store backend needs a SQL database.
func (c *Container) usesDatabase() bool {
	switch c.config.StoreBackend {
	case "postgres", "mysql":
		return true
	default:
		return false
	}
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	if !c.usesDatabase() {
		return nil, fmt.Errorf("store backend %q does not use a database", c.config.StoreBackend)
	}

	db, err := database.Connect(database.Config{
		Driver:             c.config.StoreBackend,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder when metrics are enabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initSecureStore creates the secure store based on the configured backend
// and seal mode.
func (c *Container) initSecureStore() (securestore.Store, error) {
	var store securestore.Store

	switch c.config.StoreBackend {
	case "memory":
		store = securestore.NewInMemoryStore()
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secure store: %w", err)
		}
		store = securestore.NewPostgreSQLStore(db)
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secure store: %w", err)
		}
		store = securestore.NewMySQLStore(db)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", c.config.StoreBackend)
	}

	sealer, err := c.initSealer()
	if err != nil {
		return nil, err
	}
	if sealer != nil {
		store = securestore.NewSealedStore(store, sealer)
	}

	return store, nil
}

// initSealer creates the at-rest sealer for the configured seal mode.
// Returns nil when sealing is disabled.
func (c *Container) initSealer() (securestore.Sealer, error) {
	switch c.config.SealMode {
	case "", "none":
		return nil, nil
	case "aead":
		key, err := base64.StdEncoding.DecodeString(c.config.SealAEADKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode SEAL_AEAD_KEY: %w", err)
		}
		return securestore.NewAEADSealer(key)
	case "keeper":
		sealer, err := securestore.OpenKeeperSealer(context.Background(), c.config.SealKeeperURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open keeper sealer: %w", err)
		}
		c.keeperSealer = sealer
		return sealer, nil
	default:
		return nil, fmt.Errorf("unsupported seal mode: %s", c.config.SealMode)
	}
}

// initKeyManager creates the key manager over the secure store, adding the
// transactional write path for SQL backends and the metrics decorator when
// metrics are enabled.
func (c *Container) initKeyManager() (keysService.KeyManager, error) {
	store, err := c.SecureStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get secure store for key manager: %w", err)
	}

	var keyManager keysService.KeyManager = keysService.NewKeyManager(store)

	if c.usesDatabase() {
		txManager, err := c.TxManager()
		if err != nil {
			return nil, fmt.Errorf("failed to get tx manager for key manager: %w", err)
		}
		keyManager = keysService.NewKeyManagerWithTx(keyManager, txManager)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	if businessMetrics != nil {
		keyManager = keysService.NewKeyManagerWithMetrics(keyManager, businessMetrics)
	}

	return keyManager, nil
}

// initCredentialUseCase creates the credential use case with all its dependencies.
func (c *Container) initCredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	keyManager, err := c.KeyManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get key manager for credential use case: %w", err)
	}

	useCase := credentialUseCase.NewCredentialUseCase(keyManager, c.Encrypter())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	if businessMetrics != nil {
		useCase = credentialUseCase.NewCredentialUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	keyManager, err := c.KeyManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get key manager for http server: %w", err)
	}

	useCase, err := c.CredentialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential use case for http server: %w", err)
	}

	var db *sql.DB
	if c.usesDatabase() {
		db, err = c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for http server: %w", err)
		}
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}

	opts := http.ServerOptions{
		Host:                    c.config.ServerHost,
		Port:                    c.config.ServerPort,
		RateLimitEnabled:        c.config.RateLimitEnabled,
		RateLimitRequestsPerSec: c.config.RateLimitRequestsPerSec,
		RateLimitBurst:          c.config.RateLimitBurst,
		CORSEnabled:             c.config.CORSEnabled,
		CORSAllowOrigins:        c.config.CORSAllowOrigins,
	}

	keyHandler := keysHTTP.NewKeyHandler(keyManager, logger)
	credentialHandler := credentialHTTP.NewCredentialHandler(useCase, logger)

	if provider != nil {
		return http.NewServer(
			opts, logger, db, keyHandler, credentialHandler,
			metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace),
		), nil
	}

	return http.NewServer(opts, logger, db, keyHandler, credentialHandler, nil), nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Quality providers.
const (
	QualityProviderStub   = "stub"
	QualityProviderRemote = "remote"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// token signing, background workers, the stubbed integrations and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the default level of the environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Stubbed AI calls take up to 3.5s so keep it comfortably above that.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// PublicBaseURL is the externally visible base URL used in QR verification links
		PublicBaseURL string `env:"HTTP_PUBLIC_BASE_URL" env-default:"https://sattva.io" yaml:"publicBaseURL"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"sattva" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"sattva" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"sattva" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectAttempts is how many times the first ping is tried before giving up
		ConnectAttempts uint `env:"DATABASE_CONNECT_ATTEMPTS" env-default:"5" yaml:"connectAttempts"`
		// ConnectDelay is the pause between two ping attempts
		ConnectDelay time.Duration `env:"DATABASE_CONNECT_DELAY" env-default:"2s" yaml:"connectDelay"`
	} `yaml:"database"`

	// JWT configures bearer tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is how long an issued token stays valid
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
		// Issuer is written to the iss claim
		Issuer string `env:"JWT_ISSUER" env-default:"sattva" yaml:"issuer"`
	} `yaml:"jwt"`

	// Auth configures password hashing
	Auth struct {
		// PerUserSalt makes registration draw a random salt per account instead
		// of using the fixed salt of the role
		PerUserSalt bool `env:"AUTH_PER_USER_SALT" env-default:"true" yaml:"perUserSalt"`
		// FarmerSalt, ManufacturerSalt and ConsumerSalt are the fixed role salts
		FarmerSalt       string `env:"AUTH_FARMER_SALT" env-default:"a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4" yaml:"farmerSalt"`
		ManufacturerSalt string `env:"AUTH_MANUFACTURER_SALT" env-default:"f1e2d3c4b5a6f1e2d3c4b5a6f1e2d3c4" yaml:"manufacturerSalt"` //nolint: lll
		ConsumerSalt     string `env:"AUTH_CONSUMER_SALT" env-default:"1a2b3c4d5e6f1a2b3c4d5e6f1a2b3c4d" yaml:"consumerSalt"`
	} `yaml:"auth"`

	// Worker configures the batch anchoring queue
	Worker struct {
		// Enabled starts the River workers in the serve command
		Enabled bool `env:"WORKER_ENABLED" env-default:"true" yaml:"enabled"`
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is the number of attempts before a job is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// LedgerConcurrency bounds concurrent ledger writes
		LedgerConcurrency int64 `env:"WORKER_LEDGER_CONCURRENCY" env-default:"4" yaml:"ledgerConcurrency"`
	} `yaml:"worker"`

	// Stubs configures the artificial latency of the simulated integrations
	Stubs struct {
		AIVerifyDelay      time.Duration `env:"STUBS_AI_VERIFY_DELAY" env-default:"2s" yaml:"aiVerifyDelay"`
		AIVerifyJitter     time.Duration `env:"STUBS_AI_VERIFY_JITTER" env-default:"1500ms" yaml:"aiVerifyJitter"`
		AIShelfLifeDelay   time.Duration `env:"STUBS_AI_SHELF_LIFE_DELAY" env-default:"800ms" yaml:"aiShelfLifeDelay"`
		LedgerWriteDelay   time.Duration `env:"STUBS_LEDGER_WRITE_DELAY" env-default:"1500ms" yaml:"ledgerWriteDelay"`
		LedgerWriteJitter  time.Duration `env:"STUBS_LEDGER_WRITE_JITTER" env-default:"1s" yaml:"ledgerWriteJitter"`
		LedgerVerifyDelay  time.Duration `env:"STUBS_LEDGER_VERIFY_DELAY" env-default:"800ms" yaml:"ledgerVerifyDelay"`
		LedgerVerifyJitter time.Duration `env:"STUBS_LEDGER_VERIFY_JITTER" env-default:"500ms" yaml:"ledgerVerifyJitter"`
		LedgerHistoryDelay time.Duration `env:"STUBS_LEDGER_HISTORY_DELAY" env-default:"600ms" yaml:"ledgerHistoryDelay"`
	} `yaml:"stubs"`

	// Quality selects the AI quality provider
	Quality struct {
		// Provider is either "stub" or "remote"
		Provider string `env:"QUALITY_PROVIDER" env-default:"stub" yaml:"provider"`
		// Endpoint is the base URL of the remote model
		Endpoint string `env:"QUALITY_ENDPOINT" yaml:"endpoint"`
		// APIKey is sent in the Api-Key header
		APIKey string `env:"QUALITY_API_KEY" yaml:"apiKey"`
		// Timeout bounds a single remote call
		Timeout time.Duration `env:"QUALITY_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"quality"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate reports configuration combinations that cannot work.
func (c *Config) Validate() error {
	switch c.Quality.Provider {
	case QualityProviderStub:
	case QualityProviderRemote:
		if c.Quality.Endpoint == "" {
			return fmt.Errorf("quality.endpoint is required for the %q provider", QualityProviderRemote)
		}
	default:
		return fmt.Errorf("unknown quality provider %q", c.Quality.Provider)
	}

	if c.Worker.LedgerConcurrency < 1 {
		return fmt.Errorf("worker.ledgerConcurrency must be positive, got %d", c.Worker.LedgerConcurrency)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

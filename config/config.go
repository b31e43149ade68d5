package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			MaxWrites     int  `envconfig:"MAX_WRITES"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
		Hotel  struct {
			Name        string `envconfig:"NAME"         default:"GrandHotel"`
			UPIPayee    string `envconfig:"UPI_PAYEE"    default:"8541030170@upi"`
			Currency    string `envconfig:"CURRENCY"     default:"INR"`
			QREndpoint  string `envconfig:"QR_ENDPOINT"  default:"https://api.qrserver.com/v1/create-qr-code/"`
			PhoneRegion string `envconfig:"PHONE_REGION" default:"IN"`
		} `envconfig:"HOTEL"`
		Admin struct {
			PIN string `envconfig:"PIN"`
		} `envconfig:"ADMIN"`
		Booking struct {
			StrictTransitions bool `envconfig:"STRICT_TRANSITIONS"`
		} `envconfig:"BOOKING"`
		Users struct {
			BlockBlacklisted bool `envconfig:"BLOCK_BLACKLISTED"`
		} `envconfig:"USERS"`
		Checkout struct {
			SessionSecret string `envconfig:"SESSION_SECRET"`
			SessionDir    string `envconfig:"SESSION_DIR"`
			MaxAgeSeconds int    `envconfig:"MAX_AGE_SECONDS" default:"3600"`
		} `envconfig:"CHECKOUT"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int      `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int      `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string   `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool     `envconfig:"AUTO_MIGRATE"`
			Prefix         string   `envconfig:"PREFIX"`
			Read           Database `envconfig:"READ"`
			Write          Database `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
		EmailJS struct {
			Endpoint   string `envconfig:"ENDPOINT"    default:"https://api.emailjs.com/api/v1.0/email/send"`
			ServiceID  string `envconfig:"SERVICE_ID"  default:"service_hotel"`
			TemplateID string `envconfig:"TEMPLATE_ID" default:"template_booking"`
			PublicKey  string `envconfig:"PUBLIC_KEY"`
		} `envconfig:"EMAILJS"`
	} `envconfig:"EXTERNAL"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"grandhotel-notifier"`
		Compression   string   `envconfig:"COMPRESSION" default:"snappy"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingConfirmed string `envconfig:"BOOKING_CONFIRMED" default:"booking.confirmed"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	Gateway struct {
		BaseURL        string `envconfig:"BASE_URL"        default:"http://localhost:8080/api"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		MirrorPath     string `envconfig:"MIRROR_PATH"     default:"./grandhotel-mirror.db"`
	} `envconfig:"GATEWAY"`
}

// Database is one postgres endpoint. Read and write may point at the same server.
type Database struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Init loads .env when present and then the process environment. Only the first call
// does any work.
func Init() error {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Debug().Err(err).Msg("no .env file, using the process environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("failed to process environment: %w", err)

			return
		}

		loadErr = conf.check()
	})

	return loadErr
}

// check refuses a production start with settings that would make every login fail.
func (c *Config) check() error {
	if c.Server.Env != "production" {
		return nil
	}

	var missing []string

	if c.JWT.AccessSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}

	if c.JWT.RefreshSecret == "" {
		missing = append(missing, "JWT_REFRESH_SECRET")
	}

	if c.App.Checkout.SessionSecret == "" {
		missing = append(missing, "APP_CHECKOUT_SESSION_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing production settings: %s", strings.Join(missing, ", "))
	}

	return nil
}

func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return &conf
}

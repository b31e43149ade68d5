package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"time"

	"grandhotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits reads (catalog, dashboards) from writes (bookings, inquiries).
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the connection pair.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func New(cfg *config.Config) *Connection {
	read, write := Endpoints(cfg)

	return &Connection{
		Read:  open(read, cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime),
		Write: open(write, cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime),
	}
}

// Endpoints resolves the read and write databases, applying the optional name prefix.
func Endpoints(cfg *config.Config) (read, write Endpoint) {
	pg := cfg.DB.Postgres

	return endpoint("read", pg.Prefix, pg.Read), endpoint("write", pg.Prefix, pg.Write)
}

func endpoint(role, prefix string, db config.Database) Endpoint {
	return Endpoint{
		Role:     role,
		Host:     db.Host,
		Port:     db.Port,
		Username: db.Username,
		Password: db.Password,
		Name:     prefix + db.Name,
		SSLMode:  db.SSLMode,
	}
}

// DSN renders the endpoint as a postgres url. extra is appended to the query string.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	for key, values := range extra {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func open(e Endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().Str("role", e.Role).Str("host", e.Host).Str("port", e.Port).Str("db", e.Name).Logger()

	for attempt := range maxRetry {
		db, err := sqlx.Connect("postgres", e.DSN(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Error().Int("attempts", maxRetry).Msg(fmt.Sprintf("giving up on %s database", e.Role))

	return nil
}

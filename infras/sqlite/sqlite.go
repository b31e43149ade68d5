// Package sqlite keeps the on-device mirror used when the remote API is unreachable.
// Each named collection is stored as one JSON document.
package sqlite

//go:generate go run go.uber.org/mock/mockgen -source=./sqlite.go -destination=./mocks/sqlite_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/shared/constant"
	"grandhotel/shared/timezone"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // pure Go driver
)

const (
	driverName = "sqlite"
	memoryDSN  = ":memory:"

	otelAttrCollection = "collection"
)

// Collection names shared with the browser build of the site.
const (
	CollectionBookings       = "bookings"
	CollectionInquiries      = "inquiries"
	CollectionRooms          = "rooms"
	CollectionReviews        = "reviews"
	CollectionCoupons        = "adminCoupons"
	CollectionBlacklist      = "blacklist"
	CollectionRegisteredUser = "registeredUser"
	CollectionSession        = "session"
	CollectionUserCount      = "userCount"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

type Mirror interface {
	// Load decodes the collection into dest. found is false when nothing was stored yet.
	Load(ctx context.Context, collection string, dest any) (found bool, err error)
	Store(ctx context.Context, collection string, value any) (err error)
	Remove(ctx context.Context, collection string) (err error)
	Close() error
}

type mirrorImpl struct {
	db   *sql.DB
	otel otel.Otel
}

// New opens the mirror at the configured path and creates its schema.
func New(cfg *config.Config, otel otel.Otel) (Mirror, error) {
	return Open(cfg.Gateway.MirrorPath, otel)
}

func Open(path string, otel otel.Otel) (Mirror, error) {
	if path == "" {
		path = memoryDSN
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite mirror: %w", err)
	}

	// every connection to :memory: is a separate database
	if path == memoryDSN {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite mirror: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Error().Err(err).Msg("failed to create mirror schema")

		return nil, fmt.Errorf("failed to create mirror schema: %w", err)
	}

	log.Info().Str("path", path).Msg("local mirror ready")

	return &mirrorImpl{db: db, otel: otel}, nil
}

func (m *mirrorImpl) Load(ctx context.Context, collection string, dest any) (found bool, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMirrorScopeName, constant.OtelMirrorScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrCollection, collection)

	var payload string

	err = m.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Str(otelAttrCollection, collection).Msg("failed to read mirror collection")

		return false, fmt.Errorf("failed to read mirror collection %s: %w", collection, err)
	}

	if err = json.Unmarshal([]byte(payload), dest); err != nil {
		return false, fmt.Errorf("failed to decode mirror collection %s: %w", collection, err)
	}

	return true, nil
}

func (m *mirrorImpl) Store(ctx context.Context, collection string, value any) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMirrorScopeName, constant.OtelMirrorScopeName+".Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrCollection, collection)

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode mirror collection %s: %w", collection, err)
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		collection, string(payload), timezone.Now())
	if err != nil {
		log.Error().Err(err).Str(otelAttrCollection, collection).Msg("failed to write mirror collection")

		return fmt.Errorf("failed to write mirror collection %s: %w", collection, err)
	}

	return nil
}

func (m *mirrorImpl) Remove(ctx context.Context, collection string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMirrorScopeName, constant.OtelMirrorScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = m.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, collection); err != nil {
		return fmt.Errorf("failed to remove mirror collection %s: %w", collection, err)
	}

	return nil
}

func (m *mirrorImpl) Close() error {
	return m.db.Close()
}

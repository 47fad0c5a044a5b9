package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the SmartRead key-value store, applies the embedded migrations and
// registers the *sql.DB in the dependency container.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger   `resolve:""`
	DBUser             string        `config:"DB_USER"`
	DBPass             string        `config:"DB_PASS"`
	DBHost             string        `config:"DB_HOST"`
	DBPort             string        `config:"DB_PORT" default:"5432"`
	DBName             string        `config:"DB_NAME"`
	SSLMode            string        `config:"DB_SSL_MODE" default:"disable"`
	MaxConns           int           `config:"DB_MAX_CONNS" default:"4"`
	MaxConnIdleTime    time.Duration `config:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
}

// dsn builds the connection URL. Credentials are escaped so passwords may hold any character.
func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": []string{di.SSLMode}}.Encode(),
	}
	return u.String()
}

// Initialize opens the pool and runs the migrations.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("invalid database configuration: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = int32(di.MaxConns)
	}
	if di.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = di.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbAttributes,
		otelsql.WithInstrumentAttributesGetter(newQuerySummarizer(di.Logger).attributes),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, dbAttributes)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	return ctx, nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	di.Logger.Printf("InitDB: schema at version %d (dirty: %t)", version, dirty)
	return nil
}

// Close closes the database and drops the stats metrics callback.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	var errs []error
	errs = append(errs, di.db.Close())
	if di.metricRegistration != nil {
		errs = append(errs, di.metricRegistration.Unregister())
	}
	if err := errors.Join(errs...); err != nil {
		di.Logger.Printf("InitDB: failed to close database: %v", err)
	}
}

// querySummary holds what the span attributes need from a statement.
type querySummary struct {
	commands []string
	tables   []string
}

// querySummarizer derives db.query.summary and db.collection.name from SQL text.
// Results are memoized per query text.
type querySummarizer struct {
	logger *log.Logger
	cache  sync.Map
}

func newQuerySummarizer(logger *log.Logger) *querySummarizer {
	return &querySummarizer{logger: logger}
}

func (qs *querySummarizer) attributes(_ context.Context, method otelsql.Method, query string, _ []driver.NamedValue) []attribute.KeyValue {
	if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
		return nil
	}

	summary := qs.summarize(query)
	var attrs []attribute.KeyValue
	if len(summary.commands) > 0 {
		attrs = append(attrs, semconv.DBQuerySummary(
			strings.TrimSpace(strings.Join(summary.commands, ",")+" "+strings.Join(summary.tables, ",")),
		))
	}
	if len(summary.tables) > 0 {
		attrs = append(attrs, semconv.DBCollectionName(strings.Join(summary.tables, ",")))
	}
	return attrs
}

func (qs *querySummarizer) summarize(query string) querySummary {
	if cached, ok := qs.cache.Load(query); ok {
		return cached.(querySummary)
	}

	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)
	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		qs.logger.Printf("InitDB: failed to summarize query: %v", err)
		return querySummary{}
	}

	summary := querySummary{commands: meta.Commands, tables: meta.Tables}
	qs.cache.Store(query, summary)
	return summary
}

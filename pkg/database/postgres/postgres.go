package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres error codes the repositories care about.
const (
	codeRaiseException     = "P0001"
	codeInvalidTextRepr    = "22P02"
	codeUniqueViolation    = "23505"
	codeForeignKeyViolated = "23503"
	codeCheckViolation     = "23514"
)

type Config struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func NewPostgres(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Migrate executes every *.sql file of fsys in lexical order. Scripts must be
// idempotent since there is no version table.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return nil, fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return names, nil
}

func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsInvalidInput reports a value Postgres could not parse, e.g. a malformed uuid.
func IsInvalidInput(err error) bool {
	return hasCode(err, codeInvalidTextRepr)
}

// IsRaised reports an exception raised by a stored procedure.
func IsRaised(err error) bool {
	return hasCode(err, codeRaiseException)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolated)
}

func IsCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

// NamedGet runs a named query expected to return at most one row into dest.
// It reports false when no row matched, including ids Postgres cannot parse.
func NamedGet(ctx context.Context, db *sqlx.DB, dest interface{}, query string, arg interface{}) (bool, error) {
	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, dest, arg); err != nil {
		if IsNoRows(err) || IsInvalidInput(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

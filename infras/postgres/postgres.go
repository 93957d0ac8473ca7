package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"parkdz/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	if config.DB.Postgres.ConnectionString == "" {
		log.Fatal().Msg("DB_CONNECTION_STRING environment variable is not set")
	}

	db := CreatePostgresConnection(
		config.DB.Postgres.ConnectionString,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)

	// A single connection string configures the gateway; reads and writes
	// share the pool.
	return &Connection{
		Read:  db,
		Write: db,
	}
}

// CreatePostgresConnection creates a database connection, retrying on failure.
func CreatePostgresConnection(descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Int("attempts", maxRetry).Msg("Could not establish database connection")

	return nil
}

// WithinTx runs fn inside a transaction on the write pool. The transaction
// is rolled back on error or panic and committed otherwise, so callers never
// pair Begin/Commit/Rollback by hand.
func (c *Connection) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction after panic")
			}

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction")
			}

			return
		}

		if cmErr := tx.Commit(); cmErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cmErr)
		}
	}()

	err = fn(tx)

	return err
}

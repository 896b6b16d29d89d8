package postgres

//nolint:revive
import (
	"agenda/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds separate pools so reads can be pointed at a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	conn := &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}

	if conn.Read == nil || conn.Write == nil {
		log.Fatal().Msg("Could not connect to database, giving up")
	}

	return conn
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DSN builds the lib/pq connection URL for the write database.
func DSN(config config.Config) string {
	return descriptor(
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		DSN(config),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		descriptor(
			config.DB.Postgres.Read.Username,
			config.DB.Postgres.Read.Password,
			config.DB.Postgres.Read.Host,
			config.DB.Postgres.Read.Port,
			getDBName(config, config.DB.Postgres.Read.Name),
			config.DB.Postgres.Read.SSLMode,
		),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

func descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection connects with retries and returns nil once maxRetry attempts fail.
func CreatePostgresConnection(name, dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}

package sqlite

//nolint:revive
import (
	"fmt"
	"todoapi/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLite allows a single writer; one pooled connection keeps writes serialized
// at the driver level and leaves isolation to the engine.
const (
	sqliteMaxIdleConnection = 1
	sqliteMaxOpenConnection = 1
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
    todo_id INTEGER PRIMARY KEY AUTOINCREMENT,
    content TEXT NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT 0
)`

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreateSQLiteConn(config.DB.SQLite.Path),
	}
}

// CreateSQLiteConn opens the file-backed database, creating the file and the
// todos table if absent. The schema statement is idempotent and runs on every
// process start.
func CreateSQLiteConn(path string) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		path,
	)

	sqlDB, err := sqlx.Connect("sqlite", descriptor)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed connecting to database")

		return nil
	}

	sqlDB.SetMaxIdleConns(sqliteMaxIdleConnection)
	sqlDB.SetMaxOpenConns(sqliteMaxOpenConnection)

	if _, err := sqlDB.Exec(schema); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed ensuring database schema")

		return nil
	}

	log.Info().Str("path", path).Msg("Connected to database")

	return sqlDB
}

package infra_pg_init

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/travisksimons/vibe-check-movies/internal/config"
)

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	return db
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	status     TEXT NOT NULL,
	host_name  TEXT NOT NULL,
	results    TEXT,
	created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
	id         UUID PRIMARY KEY,
	session_id TEXT NOT NULL REFERENCES sessions (id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	answers    TEXT,
	completed  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_participants_session_id ON participants (session_id);
`

// MustInitSchema makes a fresh database usable without a separate migration
// step. Every statement is idempotent, so rerunning on boot is safe.
func MustInitSchema(db *sqlx.DB) {
	if _, err := db.Exec(schema); err != nil {
		log.Fatal(err)
	}
}

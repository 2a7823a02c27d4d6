package store

import (
	"database/sql"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/migrations"
)

// Tx aliases the database transaction handle so repository interfaces do not
// leak the driver package to their consumers.
type Tx = *sql.Tx

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

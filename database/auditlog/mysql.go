package auditlog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLRepository appends to the agent_logs table. Each write opens a fresh
// connection and closes it immediately after, so no connection state is
// shared across requests.
type MySQLRepository struct {
	dsn string
}

func NewMySQLRepository(uri, host, user, password, dbName string) (*MySQLRepository, error) {
	dsn, err := BuildDSN(uri, host, user, password, dbName)
	if err != nil {
		return nil, err
	}
	return &MySQLRepository{dsn: dsn}, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, entry *Entry) error {
	db, err := sql.Open("mysql", r.dsn)
	if err != nil {
		return fmt.Errorf("failed to open audit database: %w", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		"INSERT INTO agent_logs (request_id, nlu_query, booking_json, preferences_json, response_json) VALUES (?, ?, ?, ?, ?)",
		entry.RequestID,
		entry.NLUQuery,
		string(entry.Booking),
		string(entry.Preferences),
		string(entry.Response),
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit row: %w", err)
	}
	return nil
}

// Package sqlarchive keeps a durable archive of transaction summaries in
// SQLite or MySQL. It is a feed notifier, a lookup cache tier and the source
// used to seed the feed at startup.
package sqlarchive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txlookup"
	"github.com/gabapcia/photonscan/internal/txsummary"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const queryTimeout = 5 * time.Second

var ErrUnsupportedDriver = errors.New("unsupported archive driver")

type Driver string

const (
	DriverSQLite Driver = "sqlite"
	DriverMySQL  Driver = "mysql"
)

type dialect struct {
	schema []string
	insert string
}

var dialects = map[Driver]dialect{
	DriverSQLite: {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS tx_summaries (
				hash TEXT PRIMARY KEY,
				height INTEGER NOT NULL,
				tx_index INTEGER NOT NULL,
				success INTEGER NOT NULL,
				summary TEXT NOT NULL,
				archived_at INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS tx_summaries_order_idx ON tx_summaries (height DESC, tx_index DESC)`,
		},
		insert: `INSERT INTO tx_summaries (hash, height, tx_index, success, summary, archived_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(hash) DO NOTHING`,
	},
	DriverMySQL: {
		schema: []string{
			`CREATE TABLE IF NOT EXISTS tx_summaries (
				hash CHAR(64) NOT NULL,
				height BIGINT NOT NULL,
				tx_index INT NOT NULL,
				success TINYINT(1) NOT NULL,
				summary MEDIUMTEXT NOT NULL,
				archived_at BIGINT NOT NULL,
				PRIMARY KEY (hash),
				KEY tx_summaries_order_idx (height, tx_index)
			)`,
		},
		insert: `INSERT IGNORE INTO tx_summaries (hash, height, tx_index, success, summary, archived_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
	},
}

type archive struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
}

var (
	_ txfeed.TransactionNotifier = (*archive)(nil)
	_ txlookup.Cache             = (*archive)(nil)
)

// New opens the archive and creates its schema. For SQLite, dsn is a file
// path or ":memory:".
func New(ctx context.Context, driver Driver, dsn string) (*archive, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if dsn == "" {
		return nil, errors.New("archive dsn is required")
	}

	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// every sqlite connection to ":memory:" is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	for _, stmt := range d.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create archive schema: %w", err)
		}
	}

	return &archive{db: db, dialect: d, now: time.Now}, nil
}

func (a *archive) Close() error {
	return a.db.Close()
}

// NotifyTransactions archives the complete summaries in one transaction.
// Summaries already archived are left untouched.
func (a *archive) NotifyTransactions(ctx context.Context, summaries []txsummary.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, a.dialect.insert)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	archivedAt := a.now().Unix()
	for _, summary := range summaries {
		if summary.Partial {
			continue
		}

		data, err := json.Marshal(summary)
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		if _, err := stmt.ExecContext(ctx, summary.Hash, summary.Height, summary.Index, summary.Success, string(data), archivedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (a *archive) PutSummary(ctx context.Context, summary txsummary.Summary) error {
	return a.NotifyTransactions(ctx, []txsummary.Summary{summary})
}

// GetSummary returns the archived summary of hash, or txlookup.ErrCacheMiss.
func (a *archive) GetSummary(ctx context.Context, hash string) (txsummary.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var data string
	err := a.db.QueryRowContext(ctx, `SELECT summary FROM tx_summaries WHERE hash = ?`, hash).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = txlookup.ErrCacheMiss
		}
		return txsummary.Summary{}, err
	}

	return decode(data)
}

// Recent returns up to limit archived summaries, newest first.
func (a *archive) Recent(ctx context.Context, limit int) ([]txsummary.Summary, error) {
	if limit <= 0 {
		return []txsummary.Summary{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := a.db.QueryContext(ctx, `SELECT summary FROM tx_summaries ORDER BY height DESC, tx_index DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]txsummary.Summary, 0, limit)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		summary, err := decode(data)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func decode(data string) (txsummary.Summary, error) {
	var summary txsummary.Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return txsummary.Summary{}, fmt.Errorf("decode archived summary: %w", err)
	}
	return summary, nil
}

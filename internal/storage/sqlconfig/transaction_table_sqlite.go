package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*SQLiteTransactionsTable)(nil)

// SQLiteTransactionsTable provides access to the transactions table on sqlite.
type SQLiteTransactionsTable struct {
	exec bob.Executor
}

func NewSQLiteTransactionsTable(db *sql.DB) *SQLiteTransactionsTable {
	return &SQLiteTransactionsTable{exec: bob.NewDB(db)}
}

func (t *SQLiteTransactionsTable) Insert(ctx context.Context, create *TransactionCreate) error {
	query := sqlite.Insert(
		im.Into(transactionsTable, columnID, columnTitle, columnAmount, columnSessionID),
		im.Values(sqlite.Arg(create.ID, create.Title, create.Amount, create.SessionID)),
	)
	_, err := query.Exec(ctx, t.exec)
	return err
}

func (t *SQLiteTransactionsTable) SelectBySession(ctx context.Context, sessionID string) ([]*Transaction, error) {
	query := sqlite.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(sqlite.Quote(columnSessionID).EQ(sqlite.Arg(sessionID))),
		sm.OrderBy(sqlite.Quote(columnCreatedAt)).Asc(),
		// rowid keeps insertion order for rows created within the same millisecond.
		sm.OrderBy("rowid").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*Transaction{}
	}
	return rows, nil
}

func (t *SQLiteTransactionsTable) SelectOne(ctx context.Context, id uuid.UUID, sessionID string) (*Transaction, error) {
	query := sqlite.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(sqlite.Quote(columnID).EQ(sqlite.Arg(id))),
		sm.Where(sqlite.Quote(columnSessionID).EQ(sqlite.Arg(sessionID))),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (t *SQLiteTransactionsTable) SumAmount(ctx context.Context, sessionID string) (decimal.NullDecimal, error) {
	query := sqlite.Select(
		sm.Columns(sqlite.F("SUM", sqlite.Quote(columnAmount))),
		sm.From(transactionsTable),
		sm.Where(sqlite.Quote(columnSessionID).EQ(sqlite.Arg(sessionID))),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.NullDecimal])
}

package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*PostgresTransactionsTable)(nil)

// PostgresTransactionsTable provides access to the transactions table on postgres.
type PostgresTransactionsTable struct {
	exec bob.Executor
}

func NewPostgresTransactionsTable(db *sql.DB) *PostgresTransactionsTable {
	return &PostgresTransactionsTable{exec: bob.NewDB(db)}
}

// Insert writes a single transaction row. created_at is set by the database.
func (t *PostgresTransactionsTable) Insert(ctx context.Context, create *TransactionCreate) error {
	query := psql.Insert(
		im.Into(transactionsTable, columnID, columnTitle, columnAmount, columnSessionID),
		im.Values(psql.Arg(create.ID, create.Title, create.Amount, create.SessionID)),
	)
	_, err := query.Exec(ctx, t.exec)
	return err
}

// SelectBySession returns every transaction of the session in insertion order.
func (t *PostgresTransactionsTable) SelectBySession(ctx context.Context, sessionID string) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote(columnSessionID).EQ(psql.Arg(sessionID))),
		sm.OrderBy(psql.Quote(columnCreatedAt)).Asc(),
		// seq keeps insertion order for rows sharing a created_at.
		sm.OrderBy(psql.Quote(columnSeq)).Asc(),
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

func (t *PostgresTransactionsTable) SelectOne(ctx context.Context, id uuid.UUID, sessionID string) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote(columnID).EQ(psql.Arg(id))),
		sm.Where(psql.Quote(columnSessionID).EQ(psql.Arg(sessionID))),
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

func (t *PostgresTransactionsTable) SumAmount(ctx context.Context, sessionID string) (decimal.NullDecimal, error) {
	query := psql.Select(
		sm.Columns(psql.F("SUM", psql.Quote(columnAmount))),
		sm.From(transactionsTable),
		sm.Where(psql.Quote(columnSessionID).EQ(psql.Arg(sessionID))),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.NullDecimal])
}

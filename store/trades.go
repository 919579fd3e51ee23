package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rustyeddy/refdata/record"
)

const tradeColumns = `id, account, type, buy_quantity, buy_price, sell_quantity, sell_price,
	trade_date, creation_date, revision_date, side, status, trader, benchmark, book,
	security, creation_name, revision_name, deal_name, deal_type, source_list_id`

// InsertTrade stores a prepared trade and returns it with its new ID.
func (s *Store) InsertTrade(ctx context.Context, t record.TradeRecord) (record.TradeRecord, error) {
	t.ID = newID()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Account, t.Type,
		decToDB(t.BuyQuantity), decToDB(t.BuyPrice),
		decToDB(t.SellQuantity), decToDB(t.SellPrice),
		timeToDB(t.TradeDate), timeToDB(t.CreationDate), timeToDB(t.RevisionDate),
		t.Side, t.Status, t.Trader, t.Benchmark, t.Book, t.Security,
		t.CreationName, t.RevisionName, t.DealName, t.DealType, t.SourceListID,
	)
	if err != nil {
		return record.TradeRecord{}, fmt.Errorf("insert trade: %w", err)
	}
	return t, nil
}

// UpdateTrade rewrites a stored trade in place.
func (s *Store) UpdateTrade(ctx context.Context, t record.TradeRecord) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE trades SET account = ?, type = ?,
			buy_quantity = ?, buy_price = ?, sell_quantity = ?, sell_price = ?,
			trade_date = ?, creation_date = ?, revision_date = ?,
			side = ?, status = ?, trader = ?, benchmark = ?, book = ?, security = ?,
			creation_name = ?, revision_name = ?, deal_name = ?, deal_type = ?, source_list_id = ?
		WHERE id = ?`,
		t.Account, t.Type,
		decToDB(t.BuyQuantity), decToDB(t.BuyPrice),
		decToDB(t.SellQuantity), decToDB(t.SellPrice),
		timeToDB(t.TradeDate), timeToDB(t.CreationDate), timeToDB(t.RevisionDate),
		t.Side, t.Status, t.Trader, t.Benchmark, t.Book, t.Security,
		t.CreationName, t.RevisionName, t.DealName, t.DealType, t.SourceListID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	return requireRow(res)
}

// GetTrade loads one trade by ID.
func (s *Store) GetTrade(ctx context.Context, id string) (record.TradeRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return record.TradeRecord{}, ErrNotFound
	}
	if err != nil {
		return record.TradeRecord{}, fmt.Errorf("get trade: %w", err)
	}
	return t, nil
}

// ListTrades returns all trades ordered by ID (creation order, since IDs are
// ULIDs).
func (s *Store) ListTrades(ctx context.Context) ([]record.TradeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tradeColumns+` FROM trades ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var out []record.TradeRecord
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteTrade removes a trade by ID.
func (s *Store) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return requireRow(res)
}

// TradeExists reports whether a trade with the ID is stored.
func (s *Store) TradeExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM trades WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("trade exists: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (record.TradeRecord, error) {
	var (
		t                  record.TradeRecord
		bq, bp, sq, sp     sql.NullString
		tradeD, credD, rev sql.NullTime
	)
	err := row.Scan(
		&t.ID, &t.Account, &t.Type, &bq, &bp, &sq, &sp,
		&tradeD, &credD, &rev,
		&t.Side, &t.Status, &t.Trader, &t.Benchmark, &t.Book, &t.Security,
		&t.CreationName, &t.RevisionName, &t.DealName, &t.DealType, &t.SourceListID,
	)
	if err != nil {
		return record.TradeRecord{}, err
	}
	if t.BuyQuantity, err = decFromDB(bq); err != nil {
		return record.TradeRecord{}, err
	}
	if t.BuyPrice, err = decFromDB(bp); err != nil {
		return record.TradeRecord{}, err
	}
	if t.SellQuantity, err = decFromDB(sq); err != nil {
		return record.TradeRecord{}, err
	}
	if t.SellPrice, err = decFromDB(sp); err != nil {
		return record.TradeRecord{}, err
	}
	t.TradeDate = timeFromDB(tradeD)
	t.CreationDate = timeFromDB(credD)
	t.RevisionDate = timeFromDB(rev)
	return t, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rustyeddy/refdata/record"
)

const ratingColumns = `id, moodys_rating, sandp_rating, fitch_rating, order_number`

// InsertRating stores a prepared rating and returns it with its new ID.
func (s *Store) InsertRating(ctx context.Context, r record.RatingRecord) (record.RatingRecord, error) {
	r.ID = newID()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ratings (`+ratingColumns+`) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.MoodysRating, r.SandPRating, r.FitchRating, r.OrderNumber,
	)
	if err != nil {
		return record.RatingRecord{}, fmt.Errorf("insert rating: %w", err)
	}
	return r, nil
}

// UpdateRating rewrites a stored rating in place.
func (s *Store) UpdateRating(ctx context.Context, r record.RatingRecord) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE ratings SET moodys_rating = ?, sandp_rating = ?, fitch_rating = ?, order_number = ?
		WHERE id = ?`,
		r.MoodysRating, r.SandPRating, r.FitchRating, r.OrderNumber, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	return requireRow(res)
}

// GetRating loads one rating by ID.
func (s *Store) GetRating(ctx context.Context, id string) (record.RatingRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE id = ?`, id)
	r, err := scanRating(row)
	if err == sql.ErrNoRows {
		return record.RatingRecord{}, ErrNotFound
	}
	if err != nil {
		return record.RatingRecord{}, fmt.Errorf("get rating: %w", err)
	}
	return r, nil
}

// ListRatings returns all ratings ranked best to worst by order number.
func (s *Store) ListRatings(ctx context.Context) ([]record.RatingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+ratingColumns+` FROM ratings ORDER BY order_number`)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var out []record.RatingRecord
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRating removes a rating by ID.
func (s *Store) DeleteRating(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	return requireRow(res)
}

// RatingExists reports whether a rating with the ID is stored.
func (s *Store) RatingExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM ratings WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("rating exists: %w", err)
	}
	return n > 0, nil
}

// FindRatingByOrderNumber returns the rating holding the ordinal, or nil
// when it is unused. This backs the engine's uniqueness check.
func (s *Store) FindRatingByOrderNumber(ctx context.Context, n int) (*record.RatingRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE order_number = ?`, n)
	r, err := scanRating(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find rating by order number: %w", err)
	}
	return &r, nil
}

// MaxOrderNumber returns the highest assigned ordinal, 0 when the table is
// empty. The engine assigns max+1 to new ratings that omit one.
func (s *Store) MaxOrderNumber(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(order_number) FROM ratings`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max order number: %w", err)
	}
	return int(max.Int64), nil
}

func scanRating(row rowScanner) (record.RatingRecord, error) {
	var r record.RatingRecord
	err := row.Scan(&r.ID, &r.MoodysRating, &r.SandPRating, &r.FitchRating, &r.OrderNumber)
	return r, err
}

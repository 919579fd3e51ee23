package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rustyeddy/refdata/record"
)

const ruleColumns = `id, name, description, json, template, sql_str, sql_part`

// InsertRule stores a prepared rule and returns it with its new ID.
func (s *Store) InsertRule(ctx context.Context, r record.RuleRecord) (record.RuleRecord, error) {
	r.ID = newID()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rules (`+ruleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Description, r.JSON, r.Template, r.SQLStr, r.SQLPart,
	)
	if err != nil {
		return record.RuleRecord{}, fmt.Errorf("insert rule: %w", err)
	}
	return r, nil
}

// UpdateRule rewrites a stored rule in place.
func (s *Store) UpdateRule(ctx context.Context, r record.RuleRecord) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE rules SET name = ?, description = ?, json = ?, template = ?, sql_str = ?, sql_part = ?
		WHERE id = ?`,
		r.Name, r.Description, r.JSON, r.Template, r.SQLStr, r.SQLPart, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	return requireRow(res)
}

// GetRule loads one rule by ID.
func (s *Store) GetRule(ctx context.Context, id string) (record.RuleRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ruleColumns+` FROM rules WHERE id = ?`, id)
	r, err := scanRule(row)
	if err == sql.ErrNoRows {
		return record.RuleRecord{}, ErrNotFound
	}
	if err != nil {
		return record.RuleRecord{}, fmt.Errorf("get rule: %w", err)
	}
	return r, nil
}

// ListRules returns all rules ordered by name.
func (s *Store) ListRules(ctx context.Context) ([]record.RuleRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+ruleColumns+` FROM rules ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()

	var out []record.RuleRecord
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRule removes a rule by ID.
func (s *Store) DeleteRule(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return requireRow(res)
}

// RuleExists reports whether a rule with the ID is stored.
func (s *Store) RuleExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM rules WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("rule exists: %w", err)
	}
	return n > 0, nil
}

// FindRuleByName returns the rule carrying the natural key, or nil when the
// name is unused. This backs the engine's uniqueness check.
func (s *Store) FindRuleByName(ctx context.Context, name string) (*record.RuleRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ruleColumns+` FROM rules WHERE name = ?`, name)
	r, err := scanRule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find rule by name: %w", err)
	}
	return &r, nil
}

func scanRule(row rowScanner) (record.RuleRecord, error) {
	var r record.RuleRecord
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.JSON, &r.Template, &r.SQLStr, &r.SQLPart)
	return r, err
}

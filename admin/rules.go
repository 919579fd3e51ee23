package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
	"github.com/rustyeddy/refdata/store"
)

// SaveRule runs the pipeline on a candidate rule and persists the result.
func (s *Service) SaveRule(ctx context.Context, r record.RuleRecord) (record.RuleRecord, error) {
	if r.ID != "" {
		ok, err := s.store.RuleExists(ctx, r.ID)
		if err != nil {
			return record.RuleRecord{}, err
		}
		if !ok {
			return record.RuleRecord{}, ErrNotFound
		}
	}

	prepared, err := s.pipe.PrepareRule(ctx, r.ID, r)
	if err != nil {
		return record.RuleRecord{}, err
	}

	if prepared.ID == "" {
		saved, err := s.store.InsertRule(ctx, prepared)
		if err != nil {
			return record.RuleRecord{}, err
		}
		s.log.Info("rule created", zap.String("id", saved.ID), zap.String("name", saved.Name))
		return saved, nil
	}
	if err := s.store.UpdateRule(ctx, prepared); err != nil {
		return record.RuleRecord{}, err
	}
	s.log.Info("rule updated", zap.String("id", prepared.ID), zap.String("name", prepared.Name))
	return prepared, nil
}

// GetRule loads a rule by ID.
func (s *Service) GetRule(ctx context.Context, id string) (record.RuleRecord, error) {
	r, err := s.store.GetRule(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return record.RuleRecord{}, ErrNotFound
	}
	return r, err
}

// ListRules returns every stored rule.
func (s *Service) ListRules(ctx context.Context) ([]record.RuleRecord, error) {
	return s.store.ListRules(ctx)
}

// DeleteRule removes a rule after an existence check.
func (s *Service) DeleteRule(ctx context.Context, id string) error {
	ok, err := s.store.RuleExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.store.DeleteRule(ctx, id); err != nil {
		return err
	}
	s.log.Info("rule deleted", zap.String("id", id))
	return nil
}

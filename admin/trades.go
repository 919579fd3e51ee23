package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
	"github.com/rustyeddy/refdata/store"
)

// SaveTrade runs the pipeline on a candidate trade and persists the result.
// An empty candidate ID means create; otherwise the stored record is
// updated in place.
func (s *Service) SaveTrade(ctx context.Context, t record.TradeRecord) (record.TradeRecord, error) {
	if t.ID != "" {
		ok, err := s.store.TradeExists(ctx, t.ID)
		if err != nil {
			return record.TradeRecord{}, err
		}
		if !ok {
			return record.TradeRecord{}, ErrNotFound
		}
	}

	prepared, err := s.pipe.PrepareTrade(ctx, t.ID, t)
	if err != nil {
		return record.TradeRecord{}, err
	}

	if prepared.ID == "" {
		saved, err := s.store.InsertTrade(ctx, prepared)
		if err != nil {
			return record.TradeRecord{}, err
		}
		s.log.Info("trade created", zap.String("id", saved.ID), zap.String("account", saved.Account))
		return saved, nil
	}
	if err := s.store.UpdateTrade(ctx, prepared); err != nil {
		return record.TradeRecord{}, err
	}
	s.log.Info("trade updated", zap.String("id", prepared.ID))
	return prepared, nil
}

// GetTrade loads a trade by ID.
func (s *Service) GetTrade(ctx context.Context, id string) (record.TradeRecord, error) {
	t, err := s.store.GetTrade(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return record.TradeRecord{}, ErrNotFound
	}
	return t, err
}

// ListTrades returns every stored trade.
func (s *Service) ListTrades(ctx context.Context) ([]record.TradeRecord, error) {
	return s.store.ListTrades(ctx)
}

// DeleteTrade removes a trade after an existence check. No validation logic
// applies on delete.
func (s *Service) DeleteTrade(ctx context.Context, id string) error {
	ok, err := s.store.TradeExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.store.DeleteTrade(ctx, id); err != nil {
		return err
	}
	s.log.Info("trade deleted", zap.String("id", id))
	return nil
}

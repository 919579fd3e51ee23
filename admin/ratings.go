package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
	"github.com/rustyeddy/refdata/store"
)

// SaveRating runs the pipeline on a candidate rating and persists the
// result. The pipeline assigns the next order number when the candidate
// omits one.
func (s *Service) SaveRating(ctx context.Context, r record.RatingRecord) (record.RatingRecord, error) {
	if r.ID != "" {
		ok, err := s.store.RatingExists(ctx, r.ID)
		if err != nil {
			return record.RatingRecord{}, err
		}
		if !ok {
			return record.RatingRecord{}, ErrNotFound
		}
	}

	prepared, err := s.pipe.PrepareRating(ctx, r.ID, r)
	if err != nil {
		return record.RatingRecord{}, err
	}

	if prepared.ID == "" {
		saved, err := s.store.InsertRating(ctx, prepared)
		if err != nil {
			return record.RatingRecord{}, err
		}
		s.log.Info("rating created", zap.String("id", saved.ID), zap.Int("orderNumber", saved.OrderNumber))
		return saved, nil
	}
	if err := s.store.UpdateRating(ctx, prepared); err != nil {
		return record.RatingRecord{}, err
	}
	s.log.Info("rating updated", zap.String("id", prepared.ID))
	return prepared, nil
}

// GetRating loads a rating by ID.
func (s *Service) GetRating(ctx context.Context, id string) (record.RatingRecord, error) {
	r, err := s.store.GetRating(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return record.RatingRecord{}, ErrNotFound
	}
	return r, err
}

// ListRatings returns all ratings ranked by order number.
func (s *Service) ListRatings(ctx context.Context) ([]record.RatingRecord, error) {
	return s.store.ListRatings(ctx)
}

// DeleteRating removes a rating after an existence check.
func (s *Service) DeleteRating(ctx context.Context, id string) error {
	ok, err := s.store.RatingExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.store.DeleteRating(ctx, id); err != nil {
		return err
	}
	s.log.Info("rating deleted", zap.String("id", id))
	return nil
}

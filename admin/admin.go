// Package admin wires the validation pipeline to the repository: it is the
// save/delete surface the CLI (and any future transport) calls. Validation
// failures from the pipeline pass through unchanged so the caller can show
// them verbatim.
package admin

import (
	"errors"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/store"
	"github.com/rustyeddy/refdata/validate"
)

// ErrNotFound is returned when an update or delete targets an unknown ID.
var ErrNotFound = errors.New("record not found")

type Service struct {
	store *store.Store
	pipe  *validate.Pipeline
	log   *zap.Logger
}

// New builds the admin service. A nil logger falls back to zap.NewNop.
func New(st *store.Store, pipe *validate.Pipeline, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, pipe: pipe, log: log}
}

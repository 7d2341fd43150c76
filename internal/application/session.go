package application

import (
	"sync/atomic"

	"github.com/bnema/mlops-panel/internal/domain"
)

// Session is the state of one control-panel session: the last collected
// batch and the activity log. It is created when the session starts and
// dropped when it ends.
type Session struct {
	batch atomic.Pointer[domain.Batch]
	log   *domain.ActivityLog
}

func NewSession(log *domain.ActivityLog) *Session {
	if log == nil {
		log = domain.NewActivityLog(nil, nil)
	}

	return &Session{log: log}
}

// Batch returns the last collected batch, if any. The returned batch is
// immutable, so readers never see a partial update.
func (s *Session) Batch() (*domain.Batch, bool) {
	batch := s.batch.Load()
	return batch, batch != nil
}

// ReplaceBatch swaps the whole batch in one step. An empty record set
// leaves the session without a batch.
func (s *Session) ReplaceBatch(records []domain.DataRecord) {
	batch, ok := domain.NewBatch(records)
	if !ok {
		s.batch.Store(nil)
		return
	}
	s.batch.Store(batch)
}

func (s *Session) Log() *domain.ActivityLog {
	return s.log
}

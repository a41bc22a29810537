// internal/app/store/document/store.go
package document

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dalemusser/wandernext/internal/domain/models"
	"go.uber.org/zap"
)

// Store owns the persisted Document. Every mutation is a full
// load-mutate-save cycle performed under the store mutex, so each action
// is one atomic document replacement and no partial state is ever visible.
type Store struct {
	mu   sync.Mutex
	slot Slot
	log  *zap.Logger
}

// New creates a Store over the given slot.
func New(slot Slot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{slot: slot, log: logger}
}

// Load returns the current document. An absent or unparsable payload is
// treated identically: the default document is returned and the condition
// is never surfaced to the caller.
func (s *Store) Load(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the whole document.
func (s *Store) Save(ctx context.Context, doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, doc)
}

// Update runs one load-mutate-save cycle. If mutate returns an error the
// document is not written and the error is returned unchanged, so failed
// validations leave no state change behind.
func (s *Store) Update(ctx context.Context, mutate func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := mutate(&doc); err != nil {
		return err
	}
	return s.save(ctx, doc)
}

func (s *Store) load(ctx context.Context) (models.Document, error) {
	raw, err := s.slot.Load(ctx)
	if err != nil {
		return models.Document{}, err
	}
	if len(raw) == 0 {
		return models.DefaultDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Corrupt payload is discarded and replaced by defaults. Data loss
		// here is accepted by contract; there is no migration path.
		s.log.Warn("stored document unparsable, falling back to defaults", zap.Error(err))
		return models.DefaultDocument(), nil
	}
	doc.Normalize()
	return doc, nil
}

func (s *Store) save(ctx context.Context, doc models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.slot.Save(ctx, raw)
}

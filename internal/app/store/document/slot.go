// internal/app/store/document/slot.go
package document

import "context"

// Slot is the persisted storage medium: a single string-keyed slot holding
// the serialized Document.
//
// Load returns (nil, nil) when the slot has never been written. Save
// overwrites the whole payload. There are no partial updates at this layer.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

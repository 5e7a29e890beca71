package documentstore

import "context"

// DocumentStore is the generic create/read surface over the document
// database, addressed by collection name and opaque identifier. Implementations
// distinguish three failure kinds: store never connected, malformed
// identifier, and plain database errors. Zero matches is not an error: reads
// report it through the found/matched booleans.
type DocumentStore interface {
	// Create inserts a document and returns the store-assigned identifier.
	Create(ctx context.Context, collection string, document interface{}) (string, error)
	// List decodes up to limit documents into out (a pointer to a slice),
	// most-recently-inserted first.
	List(ctx context.Context, collection string, limit int, out interface{}) error
	// FindByID decodes the matching document into out. found is false when
	// nothing matched.
	FindByID(ctx context.Context, collection, id string, out interface{}) (found bool, err error)
	// UpdateFields sets the given fields on the matching document. matched
	// is false when nothing matched.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) (matched bool, err error)
}

package storage

import "context"

// Store persists whole JSON documents by name. Every read goes back to the
// underlying storage; nothing is cached between calls.
//
// Load fills target from the named document. A document that is missing or
// holds invalid JSON is not an error: target is left at its zero value and
// the caller's default applies. Save overwrites the whole document.
type Store interface {
	Load(ctx context.Context, name string, target any) error
	Save(ctx context.Context, name string, value any) error
	// SeedIfAbsent writes value only when the named document does not exist
	// yet. Used once at startup to lay down default documents.
	SeedIfAbsent(ctx context.Context, name string, value any) error
}

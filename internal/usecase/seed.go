package usecase

import (
	"context"

	"interview-hub/internal/domain/interview"
	"interview-hub/internal/domain/job"
	"interview-hub/internal/domain/prompt"
	"interview-hub/internal/storage"
)

// Document names. Each maps to one JSON file in the data directory.
const (
	docJobs   = "jobs"
	docPrompt = "system-prompt"
	docUsers  = "users"
	docStats  = "stats"
)

// SeedDefaults lays down an empty default for every document that does not
// exist yet. The stats document is seeded for compatibility with the original
// file layout but is never read back; /api/stats recomputes its numbers.
func SeedDefaults(ctx context.Context, store storage.Store) error {
	if err := store.SeedIfAbsent(ctx, docJobs, []job.Job{}); err != nil {
		return err
	}
	if err := store.SeedIfAbsent(ctx, docPrompt, prompt.Document{}); err != nil {
		return err
	}
	if err := store.SeedIfAbsent(ctx, docUsers, map[string]interview.UserState{}); err != nil {
		return err
	}
	return store.SeedIfAbsent(ctx, docStats, Stats{})
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"interview-hub/internal/domain/job"
	"interview-hub/internal/storage"
)

var ErrInvalidInput = errors.New("invalid input")

// FallbackDescription is returned when no job is active.
const FallbackDescription = "No job description configured yet."

type CreateJobInput struct {
	Title       string
	Company     string
	Description string
}

// JobUsecase owns the jobs document. The mutex serializes every
// read-modify-write cycle so concurrent requests cannot clobber each other's
// writes; reads outside a mutation go straight to the store.
type JobUsecase struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

func NewJobUsecase(store storage.Store) *JobUsecase {
	return &JobUsecase{store: store, now: time.Now}
}

// List returns the full collection, unfiltered.
func (u *JobUsecase) List(ctx context.Context) ([]job.Job, error) {
	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	return jobs, nil
}

// Create validates the posting, assigns it an id derived from the current
// time in milliseconds and appends it inactive. Two creations inside the same
// millisecond would collide; callers tolerate that.
func (u *JobUsecase) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Company == "" || in.Description == "" {
		return job.Job{}, ErrInvalidInput
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return job.Job{}, err
	}

	now := u.now()
	j := job.Job{
		ID:          now.UnixMilli(),
		Title:       in.Title,
		Company:     in.Company,
		Description: in.Description,
		CreatedAt:   now,
		IsActive:    false,
	}
	jobs = append(jobs, j)

	if err := u.store.Save(ctx, docJobs, jobs); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

// Activate deactivates every job, then activates the one matching id. When
// no job matches, the deactivation still persists and the collection ends up
// with no active job at all.
func (u *JobUsecase) Activate(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return err
	}
	if jobs == nil {
		jobs = []job.Job{}
	}

	for i := range jobs {
		jobs[i].IsActive = jobs[i].ID == id
	}

	return u.store.Save(ctx, docJobs, jobs)
}

// Delete removes the job matching id. Deleting an unknown id is a no-op that
// still reports success.
func (u *JobUsecase) Delete(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return err
	}

	kept := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}

	return u.store.Save(ctx, docJobs, kept)
}

// ActiveDescription returns the description of the active job, or
// FallbackDescription when nothing is active.
func (u *JobUsecase) ActiveDescription(ctx context.Context) (string, error) {
	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return "", err
	}

	for _, j := range jobs {
		if j.IsActive {
			return j.Description, nil
		}
	}
	return FallbackDescription, nil
}

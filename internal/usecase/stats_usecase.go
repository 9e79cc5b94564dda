package usecase

import (
	"context"

	"interview-hub/internal/domain/interview"
	"interview-hub/internal/domain/job"
	"interview-hub/internal/storage"
)

// Stats are derived counters. They are recomputed from the jobs and users
// documents on every call, never read from the seeded stats document.
type Stats struct {
	TotalJobs       int `json:"totalJobs"`
	TotalUsers      int `json:"totalUsers"`
	TotalInterviews int `json:"totalInterviews"`
}

type StatsUsecase struct {
	store storage.Store
}

func NewStatsUsecase(store storage.Store) *StatsUsecase {
	return &StatsUsecase{store: store}
}

func (u *StatsUsecase) Totals(ctx context.Context) (Stats, error) {
	var jobs []job.Job
	if err := u.store.Load(ctx, docJobs, &jobs); err != nil {
		return Stats{}, err
	}

	var users map[string]interview.UserState
	if err := u.store.Load(ctx, docUsers, &users); err != nil {
		return Stats{}, err
	}

	s := Stats{TotalJobs: len(jobs), TotalUsers: len(users)}
	for _, st := range users {
		s.TotalInterviews += st.CompletedInterviews
	}
	return s, nil
}

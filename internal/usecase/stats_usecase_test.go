package usecase

import (
	"context"
	"testing"

	"interview-hub/internal/storage"
)

func TestStatsUsecase_EmptyStore(t *testing.T) {
	uc := NewStatsUsecase(storage.NewMemory())

	s, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if s != (Stats{}) {
		t.Fatalf("expected all-zero stats, got %+v", s)
	}
}

func TestStatsUsecase_Totals(t *testing.T) {
	mem := storage.NewMemory()
	ctx := context.Background()

	jobsUC := NewJobUsecase(mem)
	jobsUC.now = testClock()
	interviewsUC := NewInterviewUsecase(mem)
	interviewsUC.now = testClock()

	for _, title := range []string{"X", "Y"} {
		if _, err := jobsUC.Create(ctx, CreateJobInput{Title: title, Company: "Acme", Description: "d"}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	for _, uid := range []string{"u1", "u2"} {
		if _, err := interviewsUC.Start(ctx, uid, ""); err != nil {
			t.Fatalf("start %s: %v", uid, err)
		}
		if _, err := interviewsUC.Complete(ctx, uid); err != nil {
			t.Fatalf("complete %s: %v", uid, err)
		}
	}

	s, err := NewStatsUsecase(mem).Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := Stats{TotalJobs: 2, TotalUsers: 2, TotalInterviews: 2}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}

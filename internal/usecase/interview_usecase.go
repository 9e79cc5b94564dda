package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"interview-hub/internal/domain/interview"
	"interview-hub/internal/storage"
)

// InterviewUsecase owns the users document: one UserState per opaque userId.
// Mutating operations upsert: the record is created on first touch and never
// deleted. Every mutating operation requires a non-empty userId, including
// Complete, whose id arrives via the request path.
type InterviewUsecase struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
}

func NewInterviewUsecase(store storage.Store) *InterviewUsecase {
	return &InterviewUsecase{store: store, now: time.Now}
}

// State returns the stored record, or a default inactive one for an unknown
// userId. Read-only.
func (u *InterviewUsecase) State(ctx context.Context, userID string) (interview.UserState, error) {
	users, err := u.loadUsers(ctx)
	if err != nil {
		return interview.UserState{}, err
	}
	if st, ok := users[userID]; ok {
		return st, nil
	}
	return interview.UserState{InterviewActive: false}, nil
}

// Start marks an interview as running and stamps its start time. Repeated
// calls just re-stamp. userName is stored when provided.
func (u *InterviewUsecase) Start(ctx context.Context, userID, userName string) (interview.UserState, error) {
	return u.mutate(ctx, userID, func(st *interview.UserState) {
		if userName != "" {
			st.UserName = userName
		}
		st.InterviewActive = true
		t := u.now()
		st.InterviewStartTime = &t
	})
}

// Stop marks the interview as no longer running and stamps its end time.
func (u *InterviewUsecase) Stop(ctx context.Context, userID string) (interview.UserState, error) {
	return u.mutate(ctx, userID, func(st *interview.UserState) {
		st.InterviewActive = false
		t := u.now()
		st.InterviewEndTime = &t
	})
}

// Complete is Stop plus a bump of the completion counter. It is the only
// operation that mutates completedInterviews.
func (u *InterviewUsecase) Complete(ctx context.Context, userID string) (interview.UserState, error) {
	return u.mutate(ctx, userID, func(st *interview.UserState) {
		st.InterviewActive = false
		t := u.now()
		st.InterviewEndTime = &t
		st.CompletedInterviews++
	})
}

// mutate runs one upsert cycle under the document mutex and returns the
// resulting record.
func (u *InterviewUsecase) mutate(ctx context.Context, userID string, fn func(*interview.UserState)) (interview.UserState, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return interview.UserState{}, ErrInvalidInput
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	users, err := u.loadUsers(ctx)
	if err != nil {
		return interview.UserState{}, err
	}

	st := users[userID]
	fn(&st)
	users[userID] = st

	if err := u.store.Save(ctx, docUsers, users); err != nil {
		return interview.UserState{}, err
	}
	return st, nil
}

func (u *InterviewUsecase) loadUsers(ctx context.Context) (map[string]interview.UserState, error) {
	var users map[string]interview.UserState
	if err := u.store.Load(ctx, docUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make(map[string]interview.UserState)
	}
	return users, nil
}

package usecase

import (
	"context"
	"strings"
	"sync"

	"interview-hub/internal/domain/prompt"
	"interview-hub/internal/storage"
)

// PromptUsecase owns the singleton system-prompt document.
type PromptUsecase struct {
	store storage.Store
	mu    sync.Mutex
}

func NewPromptUsecase(store storage.Store) *PromptUsecase {
	return &PromptUsecase{store: store}
}

// Get returns the stored prompt, or the empty string when none was set yet.
func (u *PromptUsecase) Get(ctx context.Context) (string, error) {
	var doc prompt.Document
	if err := u.store.Load(ctx, docPrompt, &doc); err != nil {
		return "", err
	}
	return doc.SystemPrompt, nil
}

// Set overwrites the prompt whole. An empty prompt is rejected.
func (u *PromptUsecase) Set(ctx context.Context, systemPrompt string) error {
	if strings.TrimSpace(systemPrompt) == "" {
		return ErrInvalidInput
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.store.Save(ctx, docPrompt, prompt.Document{SystemPrompt: systemPrompt})
}

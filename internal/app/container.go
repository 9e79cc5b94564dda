package app

import (
	"context"
	"time"

	"interview-hub/internal/config"
	"interview-hub/internal/storage"
	"interview-hub/internal/usecase"
)

type Container struct {
	Config config.Config
	Store  storage.Store
}

// NewContainer creates the data directory and seeds the default documents.
// A failure here is fatal to startup.
func NewContainer(cfg config.Config) (*Container, error) {
	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := usecase.SeedDefaults(ctx, store); err != nil {
		return nil, err
	}

	return &Container{Config: cfg, Store: store}, nil
}

func (c *Container) Close() error {
	// Nothing to release: the file store holds no open handles between calls.
	return nil
}

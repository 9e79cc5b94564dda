package app

import (
	"fmt"
	"log"
	"strings"

	"interview-hub/internal/config"
	"interview-hub/internal/delivery/http/middleware"
	"interview-hub/internal/delivery/http/routes"
	"interview-hub/internal/storage"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// New builds the fiber app around a document store. Split from Bootstrap so
// tests can run the full HTTP surface against an in-memory store.
func New(store storage.Store) *fiber.App {
	f := fiber.New(fiber.Config{AppName: "interview-hub"})

	registerGlobalMiddleware(f)
	routes.NewRegistry(store).Register(f)

	return f
}

// Bootstrap wires the file-backed store, seeds default documents and returns
// the app plus a cleanup func.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ctr, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return &App{Fiber: New(ctr.Store)}, ctr.Close, nil
}

func registerGlobalMiddleware(f *fiber.App) {
	if f == nil {
		return
	}

	// Access log first so it sees the status the error middleware settles on.
	f.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

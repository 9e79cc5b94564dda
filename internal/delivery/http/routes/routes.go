package routes

import (
	"interview-hub/internal/delivery/http/handler"
	"interview-hub/internal/storage"
	"interview-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Registry builds the usecases around one document store and wires their
// handlers onto the app.
type Registry struct {
	meta       *handler.MetaHandler
	prompt     *handler.PromptHandler
	jobs       *handler.JobHandler
	interviews *handler.InterviewHandler
	stats      *handler.StatsHandler
}

func NewRegistry(store storage.Store) *Registry {
	return &Registry{
		meta:       handler.NewMetaHandler(),
		prompt:     handler.NewPromptHandler(usecase.NewPromptUsecase(store)),
		jobs:       handler.NewJobHandler(usecase.NewJobUsecase(store)),
		interviews: handler.NewInterviewHandler(usecase.NewInterviewUsecase(store)),
		stats:      handler.NewStatsHandler(usecase.NewStatsUsecase(store)),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.meta.RegisterRoutes(app)

	api := app.Group("/api")
	webhook := app.Group("/webhook")

	r.prompt.RegisterRoutes(api)
	r.jobs.RegisterRoutes(api)
	r.interviews.RegisterRoutes(api, webhook)
	r.stats.RegisterRoutes(api)
}

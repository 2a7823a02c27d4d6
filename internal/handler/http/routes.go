package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/stories", func(r chi.Router) {
		r.Get("/", h.getAllStories)
		r.Get("/version", h.getContentVersion)
		r.Post("/delta", h.deltaSync)
		r.Get("/{storyID}", h.getStory)
		r.Put("/{storyID}", h.saveStory)
		r.Delete("/{storyID}", h.deleteStory)
	})

	router.Route("/api/assets", func(r chi.Router) {
		r.Get("/version", h.getAssetVersion)
		r.Post("/batch-urls", h.batchAssetURLs)
		r.Get("/url", h.getAssetURL)
		r.Get("/download", h.downloadAsset)
		r.Put("/upload", h.uploadAsset)
		r.Delete("/delete", h.deleteAsset)
	})

	return router
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

func (h *Handler) getAllStories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var (
		stories []models.Story
		err     error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		stories, err = h.services.StoryService.GetStoriesByCategory(ctx, category)
	} else {
		stories, err = h.services.StoryService.GetAllStories(ctx)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllStories").Msg("error getting stories")
		writeServiceError(w, r, err, "error getting stories")
		return
	}

	if stories == nil {
		stories = []models.Story{}
	}
	utils.WriteJSON(w, stories, http.StatusOK)
}

func (h *Handler) getStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	storyID := chi.URLParam(r, "storyID")
	if storyID == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "story id is required")
		return
	}

	story, err := h.services.StoryService.GetStory(ctx, storyID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStory").Str("story_id", storyID).Msg("error getting story")
		writeServiceError(w, r, err, "error getting story")
		return
	}

	utils.WriteJSON(w, story, http.StatusOK)
}

func (h *Handler) saveStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	storyID := chi.URLParam(r, "storyID")

	var story models.Story
	if err := utils.ReadJSON(r, &story); err != nil {
		log.Err(err).Str("func", "*Handler.saveStory").Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.ErrCodeInvalidRequest, "invalid JSON was passed")
		return
	}

	// The path parameter is authoritative; a mismatched body id is rejected
	// rather than silently overwritten.
	if story.ID == "" {
		story.ID = storyID
	} else if story.ID != storyID {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeInvalidParameter, "story id in body does not match url")
		return
	}

	if err := h.services.StoryService.SaveStory(ctx, &story); err != nil {
		log.Err(err).Str("func", "*Handler.saveStory").Str("story_id", story.ID).Msg("error saving story")
		writeServiceError(w, r, err, "error saving story")
		return
	}

	utils.WriteJSON(w, story, http.StatusOK)
}

func (h *Handler) deleteStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	storyID := chi.URLParam(r, "storyID")

	if err := h.services.StoryService.DeleteStory(ctx, storyID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteStory").Str("story_id", storyID).Msg("error deleting story")
		writeServiceError(w, r, err, "error deleting story")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

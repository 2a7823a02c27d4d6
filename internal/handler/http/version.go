package http

import (
	"net/http"
	"strconv"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// getContentVersion answers the cheap version probe clients make before
// deciding whether to run a full delta sync.
func (h *Handler) getContentVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	content, err := h.services.StoryService.GetContentVersion(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContentVersion").Msg("error getting content version")
		writeServiceError(w, r, err, "error getting content version")
		return
	}

	asset, err := h.services.AssetService.GetAssetVersion(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getContentVersion").Msg("error getting asset version")
		writeServiceError(w, r, err, "error getting asset version")
		return
	}

	if clientVersionParam := r.URL.Query().Get("clientVersion"); clientVersionParam != "" {
		if clientVersion, parseErr := strconv.ParseInt(clientVersionParam, 10, 64); parseErr == nil && clientVersion >= content.Version {
			log.Debug().
				Int64("client_version", clientVersion).
				Int64("server_version", content.Version).
				Msg("client content is up to date")
		}
	}

	utils.WriteJSON(w, models.ContentVersionResponse{
		ID:             content.ID,
		Version:        content.Version,
		AssetVersion:   asset.Version,
		LastUpdated:    content.LastUpdated.UnixMilli(),
		StoryChecksums: content.StoryChecksums,
		TotalStories:   content.TotalStories,
	}, http.StatusOK)
}

func (h *Handler) getAssetVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	version, err := h.services.AssetService.GetAssetVersion(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAssetVersion").Msg("error getting asset version")
		writeServiceError(w, r, err, "error getting asset version")
		return
	}

	utils.WriteJSON(w, version, http.StatusOK)
}

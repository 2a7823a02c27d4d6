package http

import (
	"io"
	"net/http"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

func (h *Handler) batchAssetURLs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.BatchURLsRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.batchAssetURLs").Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.ErrCodeInvalidRequest, "invalid JSON was passed")
		return
	}
	if req.Paths == nil {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required field: paths")
		return
	}

	resp, err := h.services.AssetService.BatchURLs(ctx, req.Paths)
	if err != nil {
		log.Err(err).Str("func", "*Handler.batchAssetURLs").Int("paths", len(req.Paths)).Msg("error resolving batch asset urls")
		writeServiceError(w, r, err, "error resolving batch asset urls")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// getAssetURL is the single-path convenience variant of batchAssetURLs.
func (h *Handler) getAssetURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required parameter: path")
		return
	}

	entry, err := h.services.AssetService.SignedURL(ctx, path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAssetURL").Str("path", path).Msg("error resolving asset url")
		writeServiceError(w, r, err, "error resolving asset url")
		return
	}

	utils.WriteJSON(w, models.SignedURLResponse{
		Path:      entry.Path,
		SignedURL: entry.SignedURL,
	}, http.StatusOK)
}

// downloadAsset streams the object behind a previously issued signed URL.
func (h *Handler) downloadAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required parameter: path")
		return
	}
	token := r.URL.Query().Get("token")

	object, err := h.services.AssetService.OpenAsset(ctx, path, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAsset").Str("path", path).Msg("error opening asset")
		writeServiceError(w, r, err, "error opening asset")
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, object); err != nil {
		// Headers are gone at this point; just log the broken transfer.
		log.Err(err).Str("func", "*Handler.downloadAsset").Str("path", path).Msg("error streaming asset")
	}
}

func (h *Handler) uploadAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required parameter: path")
		return
	}
	defer r.Body.Close()

	stat, err := h.services.AssetService.PutAsset(ctx, path, r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAsset").Str("path", path).Msg("error storing asset")
		writeServiceError(w, r, err, "error storing asset")
		return
	}

	utils.WriteJSON(w, stat, http.StatusCreated)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required parameter: path")
		return
	}

	if err := h.services.AssetService.DeleteAsset(ctx, path); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAsset").Str("path", path).Msg("error deleting asset")
		writeServiceError(w, r, err, "error deleting asset")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

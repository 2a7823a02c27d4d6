package http

import (
	"net/http"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

// deltaSync handles the delta exchange. All three request fields are
// required; pointer fields distinguish "absent" from a legitimate zero, so a
// request missing any of them gets a MISSING_REQUIRED_FIELD envelope instead
// of being silently defaulted.
func (h *Handler) deltaSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeltaSyncRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.deltaSync").Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, models.ErrCodeInvalidRequest, "invalid JSON was passed")
		return
	}

	if missing := missingDeltaField(req); missing != "" {
		log.Warn().Str("func", "*Handler.deltaSync").Str("field", missing).Msg("delta request is missing a required field")
		writeError(w, r, http.StatusBadRequest, models.ErrCodeMissingRequiredField, "missing required field: "+missing)
		return
	}

	resp, err := h.services.StoryService.DeltaSync(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deltaSync").Msg("error computing story delta")
		writeServiceError(w, r, err, "error computing story delta")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func missingDeltaField(req models.DeltaSyncRequest) string {
	switch {
	case req.ClientVersion == nil:
		return "clientVersion"
	case req.StoryChecksums == nil:
		return "storyChecksums"
	case req.LastSyncTimestamp == nil:
		return "lastSyncTimestamp"
	}
	return ""
}

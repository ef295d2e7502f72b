package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goscrub/domain/cleaning"
	"goscrub/domain/core"
	apperrors "goscrub/internal/errors"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.config.Upload.MaxFileSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid multipart upload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("missing file field"))
		return
	}
	defer file.Close()

	d, err := s.reader.Read(header.Filename, file)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, apperrors.IngestError("could not parse file", err))
		return
	}
	s.service.LoadDataset(d)

	summary, err := s.service.Summary()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, summary)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	summary, err := s.service.Summary()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	report, err := s.service.Profile()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	preview := s.service.Preview()
	if preview == nil {
		s.writeError(w, http.StatusNotFound, core.ErrDatasetNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, preview)
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	filename, content, err := s.service.Export()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content)) //nolint:errcheck
}

func (s *Server) handleApply(w http.ResponseWriter, _ *http.Request) {
	next, err := s.service.Apply()
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id": next.ID.String(),
		"columns":    len(next.Columns),
		"rows":       len(next.Rows),
	})
}

func (s *Server) handleQueueList(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.service.Queue())
}

func (s *Server) handlePropose(w http.ResponseWriter, r *http.Request) {
	var spec cleaning.ActionSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid action payload"))
		return
	}

	proposal, err := s.service.Propose(spec)
	if err != nil {
		status := http.StatusBadRequest
		if core.IsNotFoundError(err) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}
	if !proposal.Accepted {
		// Soft rejection: the recipe is untouched, the reason travels to
		// the user as a notification.
		s.writeJSON(w, http.StatusConflict, map[string]interface{}{
			"accepted": false,
			"reason":   proposal.Reason,
		})
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"accepted": true,
		"queue":    s.service.Queue(),
		"preview":  s.service.Preview(),
	})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseActionID(chi.URLParam(r, "actionID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid action id"))
		return
	}
	if err := s.service.Remove(id); err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"queue":   s.service.Queue(),
		"preview": s.service.Preview(),
	})
}

func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Order []string `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid reorder payload"))
		return
	}
	ids := make([]core.ActionID, len(payload.Order))
	for i, raw := range payload.Order {
		id, err := core.ParseActionID(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid action id in order"))
			return
		}
		ids[i] = id
	}
	if err := s.service.Reorder(ids); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"queue":   s.service.Queue(),
		"preview": s.service.Preview(),
	})
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	s.service.ClearQueue()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"queue":   s.service.Queue(),
		"preview": s.service.Preview(),
	})
}

func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("recipe name is required"))
		return
	}
	recipe, err := s.service.SaveRecipe(r.Context(), payload.Name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleReplayRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("invalid recipe id"))
		return
	}
	proposals, err := s.service.ReplayRecipe(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsNotFoundError(err) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"proposals": proposals,
		"queue":     s.service.Queue(),
		"preview":   s.service.Preview(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("http %d: %v", status, err)
	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}

package sim

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skillsync-ai/simengine/internal/session"
)

const maxUploadBytes = 32 << 20

// RegisterRoutes mounts the document upload and simulation routes.
func RegisterRoutes(r chi.Router, engine *Engine, store *session.Store) {
	r.Post("/upload", handleUpload(engine))
	r.Post("/simulate", handleSimulate(engine))
	r.Get("/transcript", handleTranscript(store))
}

func handleUpload(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, `{"error":"invalid multipart form"}`, http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, `{"error":"file field is required"}`, http.StatusBadRequest)
			return
		}
		defer file.Close()

		// Spool the upload to disk while the form is being read, then load
		// it back for the extraction passes. The temp file is removed on
		// every exit path, including extraction failure.
		tmpPath := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+filepath.Ext(header.Filename))
		out, err := os.Create(tmpPath)
		if err != nil {
			http.Error(w, `{"error":"could not store upload"}`, http.StatusInternalServerError)
			return
		}
		defer os.Remove(tmpPath)

		_, copyErr := io.Copy(out, file)
		if closeErr := out.Close(); copyErr == nil {
			copyErr = closeErr
		}
		if copyErr != nil {
			http.Error(w, `{"error":"could not store upload"}`, http.StatusInternalServerError)
			return
		}

		data, err := os.ReadFile(tmpPath)
		if err != nil {
			http.Error(w, `{"error":"could not read upload"}`, http.StatusInternalServerError)
			return
		}

		charCount := engine.Upload(data, header.Filename)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "success",
			"char_count": charCount,
		})
	}
}

type simulateRequest struct {
	Action   string `json:"action"`
	Language string `json:"language"`
}

func handleSimulate(engine *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Action == "" {
			http.Error(w, `{"error":"action is required"}`, http.StatusBadRequest)
			return
		}
		if req.Language == "" {
			req.Language = "English"
		}

		reply := engine.Step(r.Context(), req.Action, req.Language)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"response": reply})
	}
}

func handleTranscript(store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		turns := store.Transcript()
		if turns == nil {
			turns = []session.Turn{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(turns); err != nil {
			log.Printf("[SIM] writing transcript: %v", err)
		}
	}
}

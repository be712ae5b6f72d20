package imagegen

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillsync-ai/simengine/internal/session"
)

// RegisterRoutes mounts the image generation route. The session store
// supplies the topic the current document was uploaded under.
func RegisterRoutes(r chi.Router, resolver *Resolver, store *session.Store) {
	r.Post("/generate_image", handleGenerateImage(resolver, store))
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

func handleGenerateImage(resolver *Resolver, store *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Prompt == "" {
			http.Error(w, `{"error":"prompt is required"}`, http.StatusBadRequest)
			return
		}

		reference := resolver.Resolve(r.Context(), req.Prompt, store.Topic())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"image": reference})
	}
}

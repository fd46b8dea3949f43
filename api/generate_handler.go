package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/skin-finder/session"
	"github.com/raushankrgupta/skin-finder/utils"
)

// Active is the running session, wired up in main (or in tests via
// Configure) before any route is served.
var Active *session.Session

// Configure installs the session the handlers operate on.
func Configure(s *session.Session) {
	Active = s
}

// GenerateHandler runs one generation cycle for the queried name
func GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Generate API]")

	// A failure anywhere inside the cycle must return the UI to idle, not
	// kill the process
	defer func() {
		if rec := recover(); rec != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Recovered from panic: %v", rec))
			utils.RespondError(w, &logMessageBuilder, "Analysis engine overloaded, please try again", http.StatusInternalServerError)
		}
	}()

	// Support both query params and JSON body
	name := r.URL.Query().Get("name")
	if name == "" {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			name = req.Name
		}
	}

	if strings.TrimSpace(name) == "" {
		// No cycle is started for blank input; the narration log and the
		// previous result stay as they were
		utils.AddToLogMessage(&logMessageBuilder, "Name parameter missing or blank")
		utils.RespondError(w, &logMessageBuilder, "Please provide a 'name' query parameter or JSON body", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generating variants for: %s", name))

	state, err := Active.Run(r.Context(), name)
	if err != nil {
		if errors.Is(err, session.ErrEmptyQuery) {
			utils.RespondError(w, &logMessageBuilder, "Please provide a non-empty name", http.StatusBadRequest)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Cycle failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Generation failed", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Cycle complete with %d variants", len(state.Items)))
	utils.RespondJSON(w, http.StatusOK, state)
}

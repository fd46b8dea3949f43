package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/raushankrgupta/skin-finder/utils"
)

// SelectVariantRequest is the body of POST /variants/select
type SelectVariantRequest struct {
	Index int `json:"index"`
}

// SelectVariantHandler moves the variant cursor and re-renders
func SelectVariantHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SelectVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, nil, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	skin, err := Active.Controller.Select(req.Index)
	if err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Invalid variant: %v", err), http.StatusBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"index":   req.Index,
		"variant": skin,
	})
}

// CurrentVariantHandler returns the variant under the cursor
func CurrentVariantHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	skin, ok := Active.Controller.Current()
	if !ok {
		utils.RespondError(w, nil, "No variants loaded yet", http.StatusNotFound)
		return
	}

	utils.RespondJSON(w, http.StatusOK, skin)
}

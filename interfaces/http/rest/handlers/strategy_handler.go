package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"seograph-backend/pkg/api"
)

// StrategyHandler handles add-to-strategy requests. The operation is a
// pure acknowledgment with no backing persistence.
type StrategyHandler struct {
	explorer Explorer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler(exp Explorer, logger *zap.Logger) *StrategyHandler {
	return &StrategyHandler{
		explorer: exp,
		validate: validator.New(),
		logger:   logger,
	}
}

// AddToStrategy handles POST /strategy
func (h *StrategyHandler) AddToStrategy(w http.ResponseWriter, r *http.Request) {
	var req api.AddToStrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	message := h.explorer.AddToStrategy(r.Context(), req.EntityID, req.Name)
	api.Success(w, http.StatusOK, api.AddToStrategyResponse{
		EntityID: req.EntityID,
		Message:  message,
	})
}

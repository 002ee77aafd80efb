// Package api defines shared API contracts and response helpers.
// It decouples the HTTP surface from the internal domain models.
package api

// Notice mirrors the three user-facing outcomes of a data fetch so the
// dashboard can give each a distinct visual treatment.
type Notice string

const (
	NoticeLoaded Notice = "loaded"
	NoticeEmpty  Notice = "empty"
	NoticeFailed Notice = "failed"
)

// AddToStrategyRequest is the expected body for a POST /strategy request.
type AddToStrategyRequest struct {
	EntityID string `json:"entityId" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// AddToStrategyResponse acknowledges a strategy addition. There is no
// backing persistence; this is a placeholder contract.
type AddToStrategyResponse struct {
	EntityID string `json:"entityId"`
	Message  string `json:"message"`
}

// ErrorResponse is a standardized error message for API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

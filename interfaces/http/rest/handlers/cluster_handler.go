// Package handlers implements the HTTP handlers for the dashboard API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/service/explorer"
	"seograph-backend/pkg/api"
	appErrors "seograph-backend/pkg/errors"
)

// ClusterService is the slice of the cluster data service the handlers
// depend on.
type ClusterService interface {
	ListClusters(ctx context.Context) ([]seo.Entity, error)
	Stats(ctx context.Context, clusterID string) (seo.ClusterStats, error)
	KeywordOpportunities(ctx context.Context, clusterID string) ([]seo.Entity, error)
	ContentGaps(ctx context.Context, clusterID string) ([]seo.Entity, error)
	CompetitorOverlap(ctx context.Context, clusterID string) ([]seo.Entity, error)
}

// Explorer is the expansion-controller contract the expand endpoint
// delegates to.
type Explorer interface {
	Explore(ctx context.Context, entityID, hint string) (seo.Expansion, error)
	AddToStrategy(ctx context.Context, entityID, name string) string
}

// ClusterHandler handles cluster-related HTTP requests
type ClusterHandler struct {
	service  ClusterService
	explorer Explorer
	logger   *zap.Logger
}

// NewClusterHandler creates a new cluster handler
func NewClusterHandler(service ClusterService, exp Explorer, logger *zap.Logger) *ClusterHandler {
	return &ClusterHandler{
		service:  service,
		explorer: exp,
		logger:   logger,
	}
}

// ExpansionResponse wraps an expansion batch with its outcome notice.
type ExpansionResponse struct {
	Inside  []seo.Entity       `json:"inside"`
	Outside []seo.Entity       `json:"outside"`
	Edges   []seo.Relationship `json:"edges"`
	Notice  api.Notice         `json:"notice"`
}

// ListClusters handles GET /clusters
func (h *ClusterHandler) ListClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.service.ListClusters(r.Context())
	if err != nil {
		h.respondError(w, "list clusters", err)
		return
	}
	api.Success(w, http.StatusOK, map[string][]seo.Entity{"clusters": clusters})
}

// Expand handles GET /clusters/{clusterID}/expand
func (h *ClusterHandler) Expand(w http.ResponseWriter, r *http.Request) {
	clusterID := chi.URLParam(r, "clusterID")
	if clusterID == "" {
		api.Error(w, http.StatusBadRequest, "cluster ID is required")
		return
	}
	hint := r.URL.Query().Get("name")

	expansion, err := h.explorer.Explore(r.Context(), clusterID, hint)
	if err != nil {
		if errors.Is(err, explorer.ErrSuperseded) {
			api.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.respondError(w, "expand cluster", err)
		return
	}

	notice := api.NoticeLoaded
	if expansion.IsEmpty() {
		notice = api.NoticeEmpty
	}
	api.Success(w, http.StatusOK, ExpansionResponse{
		Inside:  expansion.Inside,
		Outside: expansion.Outside,
		Edges:   expansion.Edges,
		Notice:  notice,
	})
}

// Stats handles GET /clusters/{clusterID}/stats
func (h *ClusterHandler) Stats(w http.ResponseWriter, r *http.Request) {
	clusterID := chi.URLParam(r, "clusterID")
	if clusterID == "" {
		api.Error(w, http.StatusBadRequest, "cluster ID is required")
		return
	}

	stats, err := h.service.Stats(r.Context(), clusterID)
	if err != nil {
		h.respondError(w, "cluster stats", err)
		return
	}
	api.Success(w, http.StatusOK, stats)
}

// Opportunities handles GET /clusters/{clusterID}/opportunities
func (h *ClusterHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	h.narrowExpansion(w, r, "keyword opportunities", h.service.KeywordOpportunities)
}

// Gaps handles GET /clusters/{clusterID}/gaps
func (h *ClusterHandler) Gaps(w http.ResponseWriter, r *http.Request) {
	h.narrowExpansion(w, r, "content gaps", h.service.ContentGaps)
}

// Competitors handles GET /clusters/{clusterID}/competitors
func (h *ClusterHandler) Competitors(w http.ResponseWriter, r *http.Request) {
	h.narrowExpansion(w, r, "competitor overlap", h.service.CompetitorOverlap)
}

func (h *ClusterHandler) narrowExpansion(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	fetch func(context.Context, string) ([]seo.Entity, error),
) {
	clusterID := chi.URLParam(r, "clusterID")
	if clusterID == "" {
		api.Error(w, http.StatusBadRequest, "cluster ID is required")
		return
	}

	entities, err := fetch(r.Context(), clusterID)
	if err != nil {
		h.respondError(w, operation, err)
		return
	}
	api.Success(w, http.StatusOK, map[string][]seo.Entity{"entities": entities})
}

func (h *ClusterHandler) respondError(w http.ResponseWriter, operation string, err error) {
	switch {
	case appErrors.IsValidation(err):
		api.Error(w, http.StatusBadRequest, err.Error())
	case appErrors.IsNotFound(err):
		api.Error(w, http.StatusNotFound, err.Error())
	case appErrors.IsConnection(err), appErrors.IsUnavailable(err):
		h.logger.Error("backing store unreachable",
			zap.String("operation", operation),
			zap.Error(err),
		)
		api.Error(w, http.StatusServiceUnavailable, "failed to reach the analytical store")
	default:
		h.logger.Error("internal error",
			zap.String("operation", operation),
			zap.Error(err),
		)
		api.Error(w, http.StatusInternalServerError, "an internal error occurred")
	}
}

// Package explorer bridges the graph widget's expand events to the
// cluster data service. It owns the interaction-level concerns the data
// service does not: superseded-request handling, outcome notifications,
// and the placeholder add-to-strategy acknowledgment.
package explorer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"seograph-backend/internal/domain/seo"
	"seograph-backend/internal/observability"
	"seograph-backend/internal/service/cluster"
)

// ErrSuperseded reports that a newer expand request for the same node was
// issued while this one was in flight; its result must be discarded so an
// out-of-order completion never clobbers fresher data.
var ErrSuperseded = errors.New("expansion superseded by a newer request")

// Expander is the slice of the cluster service the controller needs.
type Expander interface {
	Expand(ctx context.Context, clusterID string) (seo.Expansion, error)
}

// Controller handles click-to-expand events from the rendering widget.
// It never mutates previously returned entities; each call yields a fresh
// batch for the widget to merge.
type Controller struct {
	expander Expander
	notifier cluster.Notifier
	logger   *zap.Logger
	metrics  *observability.Collector

	mu          sync.Mutex
	generations map[string]uint64
}

// NewController creates an expansion controller.
func NewController(expander Expander, notifier cluster.Notifier, logger *zap.Logger, metrics *observability.Collector) *Controller {
	return &Controller{
		expander:    expander,
		notifier:    notifier,
		logger:      logger,
		metrics:     metrics,
		generations: make(map[string]uint64),
	}
}

// Explore expands the given entity and returns the newly discovered
// nodes and edges. hint is the widget's display name for the node, used
// only in notifications.
//
// Outcomes are distinguishable: data loaded, no data found, and fetch
// failed each emit their own notification. On failure the error is
// re-raised to the caller so the widget never treats a failed expansion
// as "no neighbors". A completion that lost the race to a newer request
// for the same node returns ErrSuperseded.
func (c *Controller) Explore(ctx context.Context, entityID, hint string) (seo.Expansion, error) {
	generation := c.nextGeneration(entityID)

	c.logger.Debug("exploring node",
		zap.String("entityID", entityID),
		zap.String("name", hint),
		zap.Uint64("generation", generation),
	)

	expansion, err := c.expander.Expand(ctx, entityID)

	if c.isStale(entityID, generation) {
		c.logger.Debug("discarding stale expansion",
			zap.String("entityID", entityID),
			zap.Uint64("generation", generation),
		)
		return seo.Expansion{}, ErrSuperseded
	}

	if err != nil {
		c.metrics.CountExpansion(string(cluster.OutcomeFailed))
		c.notifier.Notify(ctx, cluster.Event{
			Outcome:   cluster.OutcomeFailed,
			Operation: "expand_cluster",
			EntityID:  entityID,
			Err:       err,
		})
		return seo.Expansion{}, err
	}

	outcome := cluster.OutcomeLoaded
	if expansion.IsEmpty() {
		outcome = cluster.OutcomeEmpty
	}
	c.metrics.CountExpansion(string(outcome))
	c.notifier.Notify(ctx, cluster.Event{
		Outcome:   outcome,
		Operation: "expand_cluster",
		EntityID:  entityID,
		Count:     len(expansion.Inside) + len(expansion.Outside),
	})

	return expansion, nil
}

// AddToStrategy acknowledges adding an entity to the SEO strategy. There
// is no backing persistence; this is a client-side placeholder contract.
func (c *Controller) AddToStrategy(ctx context.Context, entityID, name string) string {
	c.logger.Info("added entity to strategy",
		zap.String("entityID", entityID),
		zap.String("name", name),
	)
	return "Added \"" + name + "\" to SEO strategy"
}

// nextGeneration records a new in-flight request for the node and returns
// its generation.
func (c *Controller) nextGeneration(entityID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[entityID]++
	return c.generations[entityID]
}

// isStale reports whether a newer request for the node has been issued
// since the given generation.
func (c *Controller) isStale(entityID string, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[entityID] != generation
}

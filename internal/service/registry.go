package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/approx/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/types"
	"go.uber.org/zap"
)

// Registry manages tool providers and dispatches executions to them
type Registry struct {
	services sync.Map
	log      *logging.Logger
	metrics  *monitoring.Metrics
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry. Either argument may be nil.
func NewRegistry(log *logging.Logger, metrics *monitoring.Metrics) *Registry {
	if log == nil {
		log = logging.NewNop()
	}
	return &Registry{log: log.Named("registry"), metrics: metrics}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	r.log.Info("service registered", zap.String("service", def.ID), zap.Int("tools", len(def.Tools)))
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services sorted by ID, optionally filtered by
// category
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Tools returns every tool of every service, sorted by ID
func (r *Registry) Tools() []types.Tool {
	var tools []types.Tool
	for _, def := range r.List(nil) {
		tools = append(tools, def.Tools...)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].ID < tools[j].ID })
	return tools
}

// Execute runs a service tool. The service is the part of toolID before
// the first dot.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	timer := monitoring.NewTimer(r.metrics, toolID)
	log := r.log.With(zap.String("tool", toolID))
	if appCtx != nil && appCtx.RequestID != "" {
		log = log.With(zap.String("request_id", appCtx.RequestID))
	}

	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		timer.Stop("invalid")
		return &types.Result{
			Success: false,
			Error:   stringPtr("invalid tool ID format"),
		}, fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		timer.Stop("not_found")
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
		}, fmt.Errorf("service not found: %s", serviceID)
	}

	if err := ctx.Err(); err != nil {
		timer.Stop("canceled")
		return nil, err
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)
	switch {
	case err != nil:
		timer.Stop("error")
		r.recordError(toolID, "execution")
		log.Error("tool execution failed", zap.Error(err))
		return nil, fmt.Errorf("execute %s: %w", toolID, err)
	case result == nil:
		timer.Stop("error")
		r.recordError(toolID, "execution")
		return nil, fmt.Errorf("execute %s: provider returned no result", toolID)
	case !result.Success:
		timer.Stop("failure")
		r.recordError(toolID, "invalid_argument")
		log.Debug("tool rejected input", zap.Stringp("error", result.Error))
	default:
		timer.Stop("success")
		log.Debug("tool executed")
	}
	return result, nil
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) recordError(toolID, kind string) {
	if r.metrics != nil {
		r.metrics.RecordToolError(toolID, kind)
	}
}

func stringPtr(s string) *string {
	return &s
}

package http

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/GriffinCanCode/approx/internal/logging"
	"github.com/GriffinCanCode/approx/internal/service"
	"github.com/GriffinCanCode/approx/internal/shared/id"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDHeader carries the id assigned to each tool execution.
const RequestIDHeader = "X-Request-ID"

const maxToolIDLength = 128

var toolIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*\.[a-z][a-z0-9_.]*$`)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	log      *logging.Logger
	version  string
	started  time.Time
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, log *logging.Logger, version string) *Handlers {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		log:      log.Named("http"),
		version:  version,
		started:  time.Now(),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "approx tool service",
		"version": h.version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"uptime_seconds":   int64(time.Since(h.started).Seconds()),
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		if cat != types.CategoryMath && cat != types.CategoryCalculus {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category: %s", categoryStr)})
			return
		}
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	requestID := id.NewRequestID()
	c.Header(RequestIDHeader, requestID.String())
	appCtx := &types.Context{AppID: req.AppID, RequestID: requestID.String()}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		h.log.Warn("execute failed",
			zap.String("tool", req.ToolID),
			zap.String("request_id", requestID.String()),
			zap.Error(err))
		status := http.StatusInternalServerError
		if result != nil {
			// The registry answers with a result for routing errors.
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func validateToolID(toolID string) error {
	switch {
	case toolID == "":
		return fmt.Errorf("tool_id is required")
	case len(toolID) > maxToolIDLength:
		return fmt.Errorf("tool_id exceeds %d characters", maxToolIDLength)
	case !toolIDPattern.MatchString(toolID):
		return fmt.Errorf("tool_id must look like service.tool: %q", toolID)
	}
	return nil
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huanchong-99/Go-Home/hubs"
	"github.com/huanchong-99/Go-Home/planner"
)

// RoutePlanner is the slice of the planning engine the handlers need.
type RoutePlanner interface {
	Plan(ctx context.Context, req planner.Request) (*planner.Result, error)
}

// ProviderStatus reports gateway liveness for the health endpoint.
type ProviderStatus interface {
	FlightRunning() bool
	TrainRunning() bool
}

type searchRequest struct {
	Origin          string `json:"origin" binding:"required"`
	Destination     string `json:"destination" binding:"required"`
	Date            string `json:"date"`
	TransportFilter string `json:"transport_filter"`
	MaxHubs         int    `json:"max_hubs"`
	UseIntlHubs     bool   `json:"use_intl_hubs"`
	TopN            int    `json:"top_n"`

	IncludeDirect               *bool  `json:"include_direct"`
	MinTransferPolicies         []int  `json:"min_transfer_policies"`
	AccommodationEnabled        *bool  `json:"accommodation_enabled"`
	AccommodationThresholdHours int    `json:"accommodation_threshold_hours"`
	PriorityPreference          string `json:"priority_preference"`
	DurationPreference          string `json:"duration_preference"`
}

type searchResponse struct {
	RunID string `json:"run_id"`
	*planner.Result
}

type progressEvent struct {
	RunID     string `json:"run_id"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Message   string `json:"message"`
}

type logEvent struct {
	RunID   string `json:"run_id"`
	Message string `json:"message"`
}

// searchRoutes runs one planning request. Progress and log lines are
// broadcast over SSE while the request is in flight; the final plans
// and report come back in the response body.
func searchRoutes(engine RoutePlanner, hub *sseHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		runID := uuid.NewString()
		result, err := engine.Plan(c.Request.Context(), planner.Request{
			Origin:                      req.Origin,
			Destination:                 req.Destination,
			Date:                        req.Date,
			TransportFilter:             req.TransportFilter,
			MaxHubs:                     req.MaxHubs,
			UseIntlHubs:                 req.UseIntlHubs,
			TopN:                        req.TopN,
			IncludeDirect:               req.IncludeDirect,
			MinTransferPolicies:         req.MinTransferPolicies,
			AccommodationEnabled:        req.AccommodationEnabled,
			AccommodationThresholdHours: req.AccommodationThresholdHours,
			PriorityPreference:          req.PriorityPreference,
			DurationPreference:          req.DurationPreference,
			OnProgress: func(completed, total int, message string) {
				broadcastJSON(hub, "progress", progressEvent{
					RunID: runID, Completed: completed, Total: total, Message: message,
				})
			},
			OnLog: func(message string) {
				broadcastJSON(hub, "log", logEvent{RunID: runID, Message: message})
			},
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "run_id": runID})
			return
		}

		broadcastJSON(hub, "done", gin.H{"run_id": runID, "plans": len(result.Plans)})
		c.JSON(http.StatusOK, searchResponse{RunID: runID, Result: result})
	}
}

// routeInfo classifies a city pair without running any queries.
func routeInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Query("origin")
		destination := c.Query("destination")
		if origin == "" || destination == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
			return
		}
		maxHubs := 0
		if v := c.Query("max_hubs"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_hubs must be an integer"})
				return
			}
			maxHubs = n
		}
		if maxHubs <= 0 {
			maxHubs = hubs.DefaultMaxHubs
		}
		filter := c.DefaultQuery("transport_filter", "all")
		useIntl := c.Query("use_intl_hubs") == "true"

		c.JSON(http.StatusOK, hubs.RouteInfoFor(origin, destination, maxHubs, filter, useIntl))
	}
}

func healthCheck(providers ProviderStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"status": "ok"}
		if providers != nil {
			resp["flight_provider"] = providers.FlightRunning()
			resp["train_provider"] = providers.TrainRunning()
		}
		c.JSON(http.StatusOK, resp)
	}
}

func broadcastJSON(hub *sseHub, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	select {
	case hub.broadcast <- sseMessage{event: event, data: data}:
	default:
	}
}

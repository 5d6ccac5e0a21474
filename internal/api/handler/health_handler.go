package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// FixtureCounts reports how many records of each kind were loaded.
type FixtureCounts func() (users, brands, products int)

// ReadinessHandler handles GET /health/ready, the readiness probe.
// The service is ready once users were loaded. When fixtures come from
// MongoDB the connection is pinged as well; mongo may be nil otherwise.
type ReadinessHandler struct {
	counts FixtureCounts
	mongo  *mongo.Database
}

func NewReadinessHandler(counts FixtureCounts, db *mongo.Database) *ReadinessHandler {
	return &ReadinessHandler{counts: counts, mongo: db}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
	Fixtures     map[string]int              `json:"fixtures"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	users, brands, products := h.counts()
	if users == 0 {
		deps["fixtures"] = dependencyStatus{Status: "unhealthy", Error: "no users loaded"}
		healthy = false
	} else {
		deps["fixtures"] = dependencyStatus{Status: "ok"}
	}

	if h.mongo != nil {
		if err := h.mongo.Client().Ping(ctx, nil); err != nil {
			deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["mongodb"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
		Fixtures: map[string]int{
			"users":    users,
			"brands":   brands,
			"products": products,
		},
	})
}

// Package health serves liveness endpoints.
package health

import (
	"net/http"
	"time"

	"github.com/drivedrop/service/internal/response"
)

// Handler holds the liveness handlers.
type Handler struct {
	// boot is read once with its monotonic reading; timestamps are boot plus
	// monotonic elapsed time so they never go backwards when the wall clock does.
	boot time.Time
	now  func() time.Time
}

// NewHandler creates a Handler anchored at the current time.
func NewHandler() *Handler {
	return &Handler{boot: time.Now(), now: time.Now}
}

type testResponse struct {
	Status  string `json:"status"  example:"ok"`
	Message string `json:"message" example:"API is working"`
}

type healthResponse struct {
	Status    string  `json:"status"    example:"healthy"`
	Timestamp float64 `json:"timestamp" example:"1700000000.123456"`
}

// Test godoc
//
//	@Summary	Smoke test
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	testResponse
//	@Router		/test [get]
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	response.OK(w, testResponse{Status: "ok", Message: "API is working"})
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports liveness with the current Unix time in seconds.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, healthResponse{Status: "healthy", Timestamp: h.timestamp()})
}

func (h *Handler) timestamp() float64 {
	t := h.boot.Add(h.now().Sub(h.boot))
	return float64(t.UnixNano()) / float64(time.Second)
}

package controller

import (
	"net/http"

	"github.com/vknowable/namada-ping-middleware/app/gateway/monitor"
)

type healthResponse struct {
	Status string          `json:"status"`
	Chain  *monitor.Status `json:"chain,omitempty"`
	Redis  string          `json:"redis"`
}

// HandleHealth reports the last scheduled chain probe and the cache state.
// It never queries the chain itself.
func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Redis: "disabled"}
	code := http.StatusOK

	if c.App.Monitor != nil {
		if st, ok := c.App.Monitor.Last(); ok {
			resp.Chain = &st
			if !st.Healthy {
				resp.Status = "errored"
				code = http.StatusServiceUnavailable
			}
		} else {
			resp.Status = "starting"
			code = http.StatusServiceUnavailable
		}
	}

	if c.App.Cache != nil {
		resp.Redis = "ok"
		if err := c.App.Cache.Health(r.Context()); err != nil {
			// The cache is optional; a broken one degrades but does not fail health.
			resp.Redis = "errored: " + err.Error()
		}
	}

	writeJSON(w, code, resp)
}

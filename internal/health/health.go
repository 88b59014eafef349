package health

import (
	"context"
	"net/http"
	"time"

	"frontdesk-backend/internal/cache"
)

// Checker reports whether the service's dependencies are reachable: the
// remote sheet API and the optional Redis cache.
type Checker struct {
	sheetURL string
	http     *http.Client
}

type Status struct {
	Status string `json:"status"`
	Sheets string `json:"sheets"`
	Cache  string `json:"cache"`
}

func NewChecker(sheetURL string) *Checker {
	return &Checker{
		sheetURL: sheetURL,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Check pings the dependencies. The cache being down degrades the service
// but does not make it unhealthy.
func (c *Checker) Check(ctx context.Context) Status {
	st := Status{Status: "ok", Sheets: "ok", Cache: "ok"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sheetURL, nil)
	if err == nil {
		resp, err := c.http.Do(req)
		if err != nil {
			st.Sheets = "unreachable"
			st.Status = "degraded"
		} else {
			resp.Body.Close()
		}
	}

	if !cache.IsHealthy() {
		st.Cache = "down"
	}

	return st
}

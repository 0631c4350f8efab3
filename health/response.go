package health

import "time"

// Response is the JSON body returned by the health endpoints.
type Response struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Uptime    int64                    `json:"uptime"`
	Checks    map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the serializable view of a single check result.
type CheckResponse struct {
	Status    string         `json:"status"`
	Message   string         `json:"message,omitempty"`
	LatencyMs int64          `json:"latency_ms,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Response assembles a health response from an overall status and a set of
// check results. The timestamp is the current UTC time and uptime is whole
// seconds since the registry was created. Per-check results are included
// only when the registry is configured with IncludeDetails and the result
// set is non-empty.
func (r *Registry) Response(status Status, results map[string]Result) Response {
	resp := Response{
		Status:    status.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   r.config.Version,
		Uptime:    int64(r.Uptime().Seconds()),
	}

	if r.config.IncludeDetails && len(results) > 0 {
		resp.Checks = make(map[string]CheckResponse, len(results))
		for name, result := range results {
			resp.Checks[name] = newCheckResponse(result)
		}
	}

	return resp
}

func newCheckResponse(result Result) CheckResponse {
	return CheckResponse{
		Status:    result.Status.String(),
		Message:   result.Message,
		LatencyMs: result.Latency.Milliseconds(),
		Details:   result.Details,
	}
}

package handlers

import "net/http"

type infoResp struct {
	Hostname         string  `json:"hostname"`
	Platform         string  `json:"platform"`
	PlatformRelease  string  `json:"platform_release"`
	Architecture     string  `json:"architecture"`
	GoVersion        string  `json:"go_version"`
	GoImplementation string  `json:"go_implementation"`
	Uptime           float64 `json:"uptime"`
	Environment      string  `json:"environment"`
	Port             int     `json:"port"`
	DemoValue        string  `json:"demo_value"`
}

// Info reports the host and runtime. Uptime is the current instant in
// seconds since the Unix epoch; port is the value the process started with.
func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	snap, err := h.system.Collect(r.Context())
	if err != nil {
		InternalError(w, r, err)
		return
	}

	now := h.clock.Now()
	writeJSON(w, http.StatusOK, infoResp{
		Hostname:         snap.Hostname,
		Platform:         snap.Platform,
		PlatformRelease:  snap.PlatformRelease,
		Architecture:     snap.Architecture,
		GoVersion:        snap.GoVersion,
		GoImplementation: snap.GoImplementation,
		Uptime:           float64(now.UnixNano()) / 1e9,
		Environment:      h.environment(),
		Port:             h.settings.Port,
		DemoValue:        h.demoValue(),
	})
}

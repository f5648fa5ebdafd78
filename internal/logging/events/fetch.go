package events

import "github.com/PoignardAzur/marquee/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Start(name string) {
	logging.Trace("fetch.start", map[string]interface{}{"name": name})
}

func (FetchTracer) Done(name string, items int) {
	logging.Trace("fetch.done", map[string]interface{}{"name": name, "items": items})
}

func (FetchTracer) Failed(name string, err error) {
	payload := map[string]interface{}{"name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("fetch.failed", payload)
}

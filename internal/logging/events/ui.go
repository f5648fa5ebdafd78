package events

import "github.com/PoignardAzur/marquee/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

var (
	UI     = UITracer{}
	Search = SearchTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Selection(row, col int) {
	logging.Trace("ui.selection", map[string]interface{}{"row": row, "col": col})
}

func (UITracer) Splice(node string, children int) {
	logging.Trace("ui.splice", map[string]interface{}{"node": node, "children": children})
}

func (UITracer) Focus(nodeID uint64) {
	logging.Trace("ui.focus", map[string]interface{}{"node": nodeID})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Jump(row int, title string) {
	logging.Trace("search.jump", map[string]interface{}{"row": row, "title": title})
}

func (SearchTracer) Dismiss() {
	logging.Trace("search.dismiss", nil)
}

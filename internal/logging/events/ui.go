package events

import "github.com/atomicstack/dialogue-browser/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type NavTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Nav    = NavTracer{}
)

func (UITracer) Focus(picker string) {
	logging.Trace("ui.focus", map[string]interface{}{"picker": picker})
}

func (UITracer) PickerCursor(picker string, cursor int) {
	logging.Trace("ui.picker.cursor", map[string]interface{}{"picker": picker, "cursor": cursor})
}

func (UITracer) Scroll(offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"offset": offset})
}

func (UITracer) Details(shown bool) {
	logging.Trace("ui.details", map[string]interface{}{"shown": shown})
}

func (FilterTracer) Applied(selection string, total, cursor int) {
	logging.Trace("filter.apply", map[string]interface{}{
		"selection": selection,
		"total":     total,
		"cursor":    cursor,
	})
}

func (FilterTracer) Query(picker, query string) {
	logging.Trace("filter.query", map[string]interface{}{"picker": picker, "query": query})
}

func (FilterTracer) Cleared(picker string) {
	logging.Trace("filter.query.clear", map[string]interface{}{"picker": picker})
}

func (NavTracer) Step(direction string, cursor, total int) {
	logging.Trace("nav.step", map[string]interface{}{"direction": direction, "cursor": cursor, "total": total})
}

func (NavTracer) Clamp(cursor, total int) {
	logging.Trace("nav.clamp", map[string]interface{}{"cursor": cursor, "total": total})
}

func (UITracer) Copy(cursor int, err error) {
	payload := map[string]interface{}{"cursor": cursor}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("ui.copy", payload)
}

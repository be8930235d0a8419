package events

import "github.com/atomicstack/dialogue-browser/internal/logging"

type DatasetTracer struct{}

var Dataset = DatasetTracer{}

func (DatasetTracer) Loaded(source string, records int) {
	logging.Trace("dataset.load", map[string]interface{}{"source": source, "records": records})
}

func (DatasetTracer) Reloaded(source string, records int) {
	logging.Trace("dataset.reload", map[string]interface{}{"source": source, "records": records})
}

func (DatasetTracer) Failed(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("dataset.error", map[string]interface{}{"source": source, "error": err.Error()})
}

package binding

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Event names emitted to the frontend.
const (
	EventRecordSaved = "scouting:record-saved"
	EventAlert       = "scouting:alert"
)

// EventEmitter abstracts event publication so tests can capture events
// without a Wails runtime context.
type EventEmitter interface {
	Emit(eventName string, data map[string]any)
}

// WailsEventEmitter publishes through the Wails runtime.
type WailsEventEmitter struct {
	ctx context.Context
}

func (we *WailsEventEmitter) Emit(eventName string, data map[string]any) {
	if we.ctx != nil {
		runtime.EventsEmit(we.ctx, eventName, data)
	}
}

// alert pushes a plain-text message to the frontend notification
// surface. Fire-and-forget.
func alert(emitter EventEmitter, message string) {
	if emitter != nil {
		emitter.Emit(EventAlert, map[string]any{"message": message})
	}
}

package push

// Event identifies a per-file stage reported to the progress sink.
type Event string

const (
	EventAnalyzing      Event = "analyzing"
	EventBinaryDetected Event = "binary-detected"
	EventUploading      Event = "uploading"
	EventSuccess        Event = "success"
	EventFailure        Event = "failure"
)

// Sink receives progress events from a push. Implementations must not
// block for long; the pipeline calls them inline between uploads. A nil
// sink is valid and disables reporting.
type Sink interface {
	// FileEvent reports a stage change for one file. Detail carries the
	// failure reason for EventFailure and is empty otherwise.
	FileEvent(path string, event Event, detail string)
	// Progress reports overall completion in [0, 1].
	Progress(fraction float64)
}

func (p *Pusher) fileEvent(path string, event Event, detail string) {
	if p.sink != nil {
		p.sink.FileEvent(path, event, detail)
	}
}

func (p *Pusher) progress(processed, total int) {
	if p.sink != nil && total > 0 {
		p.sink.Progress(float64(processed) / float64(total))
	}
}

package media

import "context"

// Stage is a step of the video job lifecycle.
type Stage string

const (
	StageSubmitted   Stage = "submitted"
	StagePolling     Stage = "polling"
	StageDownloading Stage = "downloading"
	StageDone        Stage = "done"
)

// Progress describes one transition of a video job. Attempt is set while
// polling and counts from 1.
type Progress struct {
	Stage   Stage `json:"stage"`
	Attempt int   `json:"attempt,omitempty"`
}

type progressKey struct{}

// WithProgress returns a context whose video jobs report their transitions to
// fn. fn is called synchronously from the goroutine running the job.
func WithProgress(ctx context.Context, fn func(Progress)) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

func report(ctx context.Context, p Progress) {
	if fn, ok := ctx.Value(progressKey{}).(func(Progress)); ok && fn != nil {
		fn(p)
	}
}

package upload

// Stage is a step of the upload pipeline.
type Stage int

const (
	Idle Stage = iota
	Validating
	Uploading
	WritingMetadata
	Done
	Failed
)

func (s Stage) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Uploading:
		return "uploading"
	case WritingMetadata:
		return "writing-metadata"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Reason classifies a failed run.
type Reason string

const (
	ReasonSizeExceeded Reason = "size-exceeded"
	ReasonUploadError  Reason = "upload-error"
	ReasonDBError      Reason = "db-error"
)

// Failure is returned by Run when the pipeline ends in Failed. Its message is
// the underlying error's message.
type Failure struct {
	Reason Reason
	Err    error
}

func (f *Failure) Error() string { return f.Err.Error() }

func (f *Failure) Unwrap() error { return f.Err }

// Event is delivered to observers on every stage transition. Failure is set
// only when Stage is Failed.
type Event struct {
	Stage   Stage
	Key     string
	Failure *Failure
}

// Observer receives pipeline events on the goroutine calling Run.
type Observer func(Event)

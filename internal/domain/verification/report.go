package verification

// Step identifies a stage of the pipeline.
type Step string

// Pipeline steps in execution order.
const (
	StepLoadConfig   Step = "load-config"
	StepLocateRoot   Step = "locate-root"
	StepExtract      Step = "extract-version"
	StepFindTemplate Step = "find-template"
	StepSubstitute   Step = "substitute"
	StepWrite        Step = "write-output"
	StepPlaceholders Step = "check-placeholders"
	StepParse        Step = "parse-document"
	StepField        Step = "check-field"
	StepCleanup      Step = "cleanup"
)

// Status is the outcome of a step.
type Status string

// Step outcomes.
const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Event is one recorded step outcome.
type Event struct {
	// Step is the pipeline stage the event belongs to.
	Step Step
	// Status tells whether the stage passed.
	Status Status
	// Message is the human-readable progress line.
	Message string
	// Subject is the file or field the step worked on, if any.
	Subject string
}

// Report is the ordered trace of one run.
type Report struct {
	// RunID correlates the report with its log lines.
	RunID string
	// Root is the resolved repository root.
	Root string
	// Version is the version string substituted into the template.
	Version string
	// Events are the step outcomes in execution order.
	Events []Event
	// Err is the first failure, nil for a successful run.
	Err error
}

// NewReport creates an empty report for runID.
func NewReport(runID string) *Report {
	return &Report{RunID: runID}
}

// Add appends a passed step.
func (r *Report) Add(step Step, subject, message string) {
	r.Events = append(r.Events, Event{
		Step:    step,
		Status:  StatusOK,
		Message: message,
		Subject: subject,
	})
}

// Fail appends a failed step and keeps err if it is the first failure.
// It returns err unchanged so callers can `return report.Fail(...)`.
func (r *Report) Fail(step Step, subject string, err error) error {
	r.Events = append(r.Events, Event{
		Step:    step,
		Status:  StatusFailed,
		Message: err.Error(),
		Subject: subject,
	})

	if r.Err == nil {
		r.Err = err
	}

	return err
}

// Succeeded reports whether the run completed without failures.
func (r *Report) Succeeded() bool {
	return r.Err == nil
}

// Steps returns the steps recorded so far in order.
func (r *Report) Steps() []Step {
	steps := make([]Step, 0, len(r.Events))
	for _, event := range r.Events {
		steps = append(steps, event.Step)
	}

	return steps
}

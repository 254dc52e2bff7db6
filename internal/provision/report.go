package provision

// Outcome of a single provisioning step.
type Outcome string

const (
	OutcomeCreated          Outcome = "created"           // The artifact was created by this run.
	OutcomeAlreadySatisfied Outcome = "already-satisfied" // The artifact existed and was correct.
	OutcomeSkipped          Outcome = "skipped"           // The step was not attempted.
	OutcomeFailed           Outcome = "failed"            // The step's check or apply failed.
	OutcomePending          Outcome = "pending"           // Dry run: the artifact would be created.
)

// Records what a single step did.
type StepResult struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
}

// Summarizes a provisioning run so the caller can determine exactly what
// changed. The report is always produced, even when the run aborts partway.
type Report struct {
	Steps    []StepResult `json:"steps"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Appends a step result.
func (r *Report) record(name string, outcome Outcome, message string) {
	r.Steps = append(r.Steps, StepResult{Name: name, Outcome: outcome, Message: message})
}

// Appends an operator-facing warning.
func (r *Report) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Whether every step reported [OutcomeAlreadySatisfied]. A second run on a
// correctly provisioned host must satisfy this.
func (r *Report) AllSatisfied() bool {
	for _, s := range r.Steps {
		if s.Outcome != OutcomeAlreadySatisfied {
			return false
		}
	}
	return len(r.Steps) > 0
}

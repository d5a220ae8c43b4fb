package events

// ActionPhase identifies the lifecycle phase an event belongs to.
type ActionPhase string

const (
	PhasePreparation      ActionPhase = "PREPARATION"
	PhaseUserConfirmation ActionPhase = "USER_CONFIRMATION"
	PhaseBroadcasting     ActionPhase = "BROADCASTING"
	PhaseActionComplete   ActionPhase = "ACTION_COMPLETE"
	PhaseActionError      ActionPhase = "ACTION_ERROR"
)

// ActionStatus qualifies an event as in-flight, terminal success, or terminal
// failure.
type ActionStatus string

const (
	StatusProgress ActionStatus = "PROGRESS"
	StatusSuccess  ActionStatus = "SUCCESS"
	StatusError    ActionStatus = "ERROR"
)

// Step numbering matches what existing event consumers key off. The values
// are carried as constants rather than a protocol contract; error events
// always use step 0 regardless of where in the flow the failure happened.
const (
	StepError            = 0
	StepPreparation      = 1
	StepUserConfirmation = 2
	StepSigningComplete  = 8
	StepBroadcasting     = 8
	StepRelayComplete    = 9
)

// ActionSSEEvent is an immutable progress notification for a single signing
// or relay operation. Within one operation, Step is monotonically
// non-decreasing except for the reserved step-0 error event.
type ActionSSEEvent struct {
	Step    int            `json:"step"`
	Phase   ActionPhase    `json:"phase"`
	Status  ActionStatus   `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

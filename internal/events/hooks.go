package events

// ConfirmationConfig controls how the signer surfaces its interactive
// confirmation prompt. Opaque to the orchestration flow; it is handed to the
// signer unmodified.
type ConfirmationConfig struct {
	UIMode   string `json:"uiMode,omitempty"`
	Behavior string `json:"behavior,omitempty"`
}

// Hooks is the caller-supplied set of lifecycle callbacks. Every field is
// optional; a nil *Hooks is valid everywhere one is accepted. Callbacks run
// synchronously so they complete before the enclosing operation returns to
// the caller.
type Hooks struct {
	OnEvent      func(ActionSSEEvent)
	OnError      func(error)
	AfterCall    func(success bool, result any)
	Confirmation *ConfirmationConfig
}

// Emit forwards an event to OnEvent when present. All event emission funnels
// through here so the per-phase ordering guarantee is enforced at call sites
// in exactly one way.
func (h *Hooks) Emit(ev ActionSSEEvent) {
	if h == nil || h.OnEvent == nil {
		return
	}
	h.OnEvent(ev)
}

// EmitProgress emits an in-flight event for the given step and phase.
func (h *Hooks) EmitProgress(step int, phase ActionPhase, message string, data map[string]any) {
	h.Emit(ActionSSEEvent{
		Step:    step,
		Phase:   phase,
		Status:  StatusProgress,
		Message: message,
		Data:    data,
	})
}

// EmitSuccess emits the terminal success event for an operation.
func (h *Hooks) EmitSuccess(step int, message string, data map[string]any) {
	h.Emit(ActionSSEEvent{
		Step:    step,
		Phase:   PhaseActionComplete,
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// EmitFailure emits the terminal error event. Error events always carry
// step 0.
func (h *Hooks) EmitFailure(err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.Emit(ActionSSEEvent{
		Step:    StepError,
		Phase:   PhaseActionError,
		Status:  StatusError,
		Message: msg,
		Error:   msg,
	})
}

// FireError invokes OnError when present.
func (h *Hooks) FireError(err error) {
	if h == nil || h.OnError == nil {
		return
	}
	h.OnError(err)
}

// FireAfterCall invokes AfterCall when present. Callers invoke this at most
// once per terminal condition.
func (h *Hooks) FireAfterCall(success bool, result any) {
	if h == nil || h.AfterCall == nil {
		return
	}
	h.AfterCall(success, result)
}

// ConfirmationConfigOrNil returns the confirmation configuration, tolerating
// a nil hook set.
func (h *Hooks) ConfirmationConfigOrNil() *ConfirmationConfig {
	if h == nil {
		return nil
	}
	return h.Confirmation
}

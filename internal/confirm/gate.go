// Package confirm guards destructive actions behind a single pending
// confirmation dialog.
package confirm

type Severity string

const (
	Danger  Severity = "danger"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Request describes one confirmation prompt. OnConfirm runs only if the user
// accepts; cancellation drops the request without side effects.
type Request struct {
	Title     string
	Message   string
	Severity  Severity
	OnConfirm func()
}

// Gate holds at most one pending request. Asking again before the previous
// request is resolved replaces it, so only the latest prompt can ever fire.
type Gate struct {
	pending *Request
}

func NewGate() *Gate {
	return &Gate{}
}

// Ask queues req, replacing any pending request. An unset severity defaults
// to Danger since the gate mostly fronts deletions.
func (g *Gate) Ask(req Request) {
	if req.Severity == "" {
		req.Severity = Danger
	}
	g.pending = &req
}

// Pending returns the queued request, or nil.
func (g *Gate) Pending() *Request {
	return g.pending
}

// Confirm runs the pending callback. The slot is cleared before the callback
// runs so the callback itself may ask for a follow-up confirmation.
func (g *Gate) Confirm() {
	req := g.pending
	g.pending = nil
	if req != nil && req.OnConfirm != nil {
		req.OnConfirm()
	}
}

// Cancel discards the pending request.
func (g *Gate) Cancel() {
	g.pending = nil
}

package engine

// Artifacts holds the rendered outputs of one successful generation call
// plus the engine-assigned incident identifier. A new generation fully
// replaces any previously held artifacts; no history is kept.
type Artifacts struct {
	IncidentID string `json:"incident_id"`
	Markdown   string `json:"markdown"`
	JSON       string `json:"json"`
}

// NetworkError means an exchange with the engine could not complete: the
// endpoint was unreachable or returned a body that is not a valid envelope.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "report engine unreachable: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// ApplicationError means the engine was reached and reported a failure. The
// message is the server-supplied error text and is surfaced verbatim.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string { return e.Message }

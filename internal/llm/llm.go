package llm

import "context"

// OutcomeKind is the terminal state of a single generation call.
type OutcomeKind string

const (
	OutcomeSuccess           OutcomeKind = "success"
	OutcomeBlockedSafety     OutcomeKind = "blocked_safety"
	OutcomeBlockedRecitation OutcomeKind = "blocked_recitation"
	OutcomeTruncated         OutcomeKind = "truncated"
	OutcomeEmpty             OutcomeKind = "empty"
	OutcomeMalformed         OutcomeKind = "malformed"
	OutcomeTransportError    OutcomeKind = "transport_error"
)

// TransportErrorKind categorizes transport-level failures. The category
// is inferred at the client edge, where the external API only gives
// unstructured error text.
type TransportErrorKind string

const (
	TransportInvalidArgument  TransportErrorKind = "invalid_argument"
	TransportPermissionDenied TransportErrorKind = "permission_denied"
	TransportQuotaExceeded    TransportErrorKind = "quota_exceeded"
	TransportTimeout          TransportErrorKind = "timeout"
	TransportUnknown          TransportErrorKind = "unknown"
)

// Outcome is the interpreted result of one generation call. Exactly one
// call produces exactly one outcome; there is no internal retry.
type Outcome struct {
	Kind OutcomeKind

	// Text holds the generated report for OutcomeSuccess.
	Text string

	// FinishReason carries the raw finish indicator for OutcomeMalformed.
	FinishReason string

	// TransportKind and Err are set for OutcomeTransportError.
	TransportKind TransportErrorKind
	Err           error
}

// Client abstracts the multimodal report generator.
// Implementations must be safe for concurrent use.
type Client interface {
	// Analyze submits a prompt plus a JPEG-encoded image and interprets
	// the provider response into an Outcome. It never panics and never
	// returns a Go error: every failure mode is an Outcome.
	Analyze(ctx context.Context, prompt string, imageJPEG []byte) Outcome

	// TestConnection performs a lightweight text-only round trip. The
	// result is advisory: callers must never let a failed check block
	// the main analysis path.
	TestConnection(ctx context.Context) (bool, string)

	// Enabled reports whether the client has a usable credential.
	Enabled() bool

	// SourceName returns a short provider label for logs.
	SourceName() string
}

package sources

import "errors"

// Error kinds an adapter can report. Callers classify with errors.Is.
var (
	// ErrNetwork covers connection and timeout failures as well as
	// non-2xx upstream responses. Transient, eligible for retry.
	ErrNetwork = errors.New("source network error")

	// ErrShape means the response decoded but is missing expected
	// fields or failed its status check. Stable mismatch, not retried.
	ErrShape = errors.New("source response shape mismatch")

	// ErrDrift means a rendered page no longer matches the extraction
	// patterns and yielded zero usable blocks. Stable, not retried.
	ErrDrift = errors.New("source page extraction drift")
)

func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }
func IsShape(err error) bool   { return errors.Is(err, ErrShape) }
func IsDrift(err error) bool   { return errors.Is(err, ErrDrift) }

// Kind names the error category for structured logs and metric labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsNetwork(err):
		return "network"
	case IsShape(err):
		return "shape"
	case IsDrift(err):
		return "drift"
	default:
		return "other"
	}
}

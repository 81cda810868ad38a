package form

import (
	"errors"
	"fmt"

	"github.com/julietavg/carfind/internal/api"
)

// Feedback is the outcome of a failed save, split the way the form renders
// it: per-field messages under their inputs, or a single banner.
type Feedback struct {
	FieldErrors map[string]string
	Banner      string
}

// MapServerError classifies a failed create/update call into form feedback.
// Field errors arrive keyed by UI names (the API client already translated
// the wire spelling). The session is never cleared here; a 401 is the
// caller's concern.
func MapServerError(err error) Feedback {
	if err == nil {
		return Feedback{}
	}

	if fields := api.FieldErrors(err); len(fields) > 0 {
		merged := make(map[string]string, len(fields))
		for field, msg := range fields {
			merged[field] = msg
		}
		return Feedback{FieldErrors: merged}
	}

	if api.IsConflict(err) {
		banner := api.ErrorMessage(err)
		if banner == "" {
			banner = "Cannot add car with same VIN."
		}
		return Feedback{Banner: banner}
	}

	if api.IsNoResponse(err) {
		return Feedback{Banner: "Cannot reach the server. Please try again."}
	}

	if msg := api.ErrorMessage(err); msg != "" {
		return Feedback{Banner: msg}
	}

	var se *api.StatusError
	if errors.As(err, &se) {
		return Feedback{Banner: fmt.Sprintf("Save failed (HTTP %d).", se.StatusCode)}
	}
	return Feedback{Banner: "Save failed."}
}

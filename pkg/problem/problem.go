package problem

import (
	"encoding/json"
	"net/http"
)

const (
	ContentType = "application/problem+json"
	BaseURI     = "http://localhost:8080/problems"
)

// Problem types, appended to BaseURI.
const (
	TypeBadRequest          = "bad-request"
	TypeNotFound            = "not-found"
	TypeValidation          = "validation-error"
	TypeConflict            = "conflict"
	TypeRateLimited         = "rate-limited"
	TypeInternal            = "internal-error"
	TypeStepDataUnavailable = "step-data-unavailable"
	TypeAdviceUnavailable   = "advice-unavailable"
	TypeAdviceUpstream      = "advice-upstream-error"
)

// Problem is an RFC 9457 problem+json body. Instance carries the request path
// the problem occurred on, e.g. /v1/users/{id}/steps/summary.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError points at one invalid request field, using the JSON path of
// the field (records[2].day, daily_goal).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(status int, problemType, title, detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// WriteFor writes the problem with Instance set to the request path.
func (p *Problem) WriteFor(w http.ResponseWriter, r *http.Request) {
	p.Instance = r.URL.Path
	p.Write(w)
}

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, TypeNotFound, "Not Found", detail)
}

func BadRequest(detail string) *Problem {
	return New(http.StatusBadRequest, TypeBadRequest, "Bad Request", detail)
}

// ValidationError is a 422 listing every rejected field of a step batch,
// goal update or query.
func ValidationError(detail string, errors []FieldError) *Problem {
	return New(http.StatusUnprocessableEntity, TypeValidation, "Validation Error", detail).WithErrors(errors)
}

func Conflict(detail string) *Problem {
	return New(http.StatusConflict, TypeConflict, "Conflict", detail)
}

func TooManyRequests(detail string) *Problem {
	return New(http.StatusTooManyRequests, TypeRateLimited, "Too Many Requests", detail)
}

func InternalError(detail string) *Problem {
	return New(http.StatusInternalServerError, TypeInternal, "Internal Server Error", detail)
}

// StepDataUnavailable reports that the daily step counts could not be read,
// so no summary or streak was computed.
func StepDataUnavailable(detail string) *Problem {
	return New(http.StatusServiceUnavailable, TypeStepDataUnavailable, "Step Data Unavailable", detail)
}

// AdviceUnavailable reports that no advice model is configured.
func AdviceUnavailable(detail string) *Problem {
	return New(http.StatusServiceUnavailable, TypeAdviceUnavailable, "Advice Unavailable", detail)
}

// AdviceUpstream reports a failed or unusable reply from the advice model.
func AdviceUpstream(detail string) *Problem {
	return New(http.StatusBadGateway, TypeAdviceUpstream, "Advice Upstream Error", detail)
}

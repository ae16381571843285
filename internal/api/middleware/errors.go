package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
)

var (
	ErrInvalidBody     = errors.New("invalid request body")
	ErrMissingCategory = errors.New("either category or constraints is required")
)

// ErrorResponse is the JSON error envelope. Gateway routes only fill Error.
type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code,omitempty" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error: err.Error(),
		Code:  status,
	})
}

// WriteError writes the bare {"error": message} envelope.
func WriteError(resp *restful.Response, status int, message string) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{Error: message})
}

// WriteRawError writes body as JSON without content negotiation. Router
// errors are raised before a route is selected, so the response carries no
// produced MIME types to negotiate against.
func WriteRawError(w http.ResponseWriter, status int, body ErrorResponse) error {
	w.Header().Set("Content-Type", restful.MIME_JSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

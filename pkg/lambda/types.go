package lambda

import (
	"encoding/json"
	"net/http"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// NewJSONResponse builds a response carrying the headers every outcome must
// include: the JSON content type and the wildcard CORS origin.
func NewJSONResponse(statusCode int, body interface{}) *Response {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    StandardHeaders(),
			Body:       []byte(`{"message": "Internal Server Error"}`),
		}
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    StandardHeaders(),
		Body:       payload,
	}
}

// StandardHeaders returns the headers attached to every response path,
// success and failure alike.
func StandardHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

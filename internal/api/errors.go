package api

import (
	"encoding/json"
	"fmt"

	"resty.dev/v3"
)

// Error carries the status code and server-supplied message of a non-2xx
// response. The message falls back to a generic one when the body has none.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Message)
}

// Backends in the wild disagree on the error body key.
type errorBody struct {
	Message string `json:"message"`
	Reason  string `json:"error"`
}

const genericErrorMessage = "the server could not process the request"

func newError(response *resty.Response) *Error {
	message := genericErrorMessage

	var body errorBody
	if err := json.Unmarshal([]byte(response.String()), &body); err == nil {
		switch {
		case body.Message != "":
			message = body.Message
		case body.Reason != "":
			message = body.Reason
		}
	}

	return &Error{
		StatusCode: response.StatusCode(),
		Message:    message,
	}
}

package transport

import "fmt"

// TransportError is returned when a request could not be sent or its response
// could not be read
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error sending %s request to LINE Pay %s: [%v]", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when LINE Pay answers with a non-2xx status or with a
// return code other than success
type APIError struct {
	StatusCode    int
	ReturnCode    string
	ReturnMessage string
	Body          string
}

func (e *APIError) Error() string {
	if e.ReturnCode == "" {
		return fmt.Sprintf("LINE Pay responded with status %d: [%s]", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("LINE Pay responded with return code %s: [%s]", e.ReturnCode, e.ReturnMessage)
}

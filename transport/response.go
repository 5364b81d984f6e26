package transport

import (
	"encoding/json"
	"fmt"
)

// SuccessCode is the return code LINE Pay uses for a successful call
const SuccessCode = "0000"

// Response is the envelope wrapping every LINE Pay response
type Response struct {
	StatusCode    int             `json:"-"`
	ReturnCode    string          `json:"returnCode"`
	ReturnMessage string          `json:"returnMessage"`
	Info          json.RawMessage `json:"info,omitempty"`
}

// Succeeded reports whether the return code is SuccessCode
func (r *Response) Succeeded() bool {
	return r.ReturnCode == SuccessCode
}

// Err returns an *APIError unless the call succeeded
func (r *Response) Err() error {
	if r.Succeeded() {
		return nil
	}
	return &APIError{
		StatusCode:    r.StatusCode,
		ReturnCode:    r.ReturnCode,
		ReturnMessage: r.ReturnMessage,
	}
}

// DecodeInfo unmarshals the info section of the response into out
func (r *Response) DecodeInfo(out interface{}) error {
	if len(r.Info) == 0 {
		return fmt.Errorf("response with return code %s has no info", r.ReturnCode)
	}
	if err := json.Unmarshal(r.Info, out); err != nil {
		return fmt.Errorf("error decoding response info: [%w]", err)
	}
	return nil
}

package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/kbukum/blogkit/httpclient"
)

const (
	// SuccessCode is the only envelope code that denotes success.
	SuccessCode = 200
	// CodeMalformed marks a 2xx body that is not a valid envelope.
	CodeMalformed = -1
	// FallbackMessage is used when a failed envelope carries no message.
	FallbackMessage = "request failed"
)

// Envelope is the wrapper every backend response uses.
type Envelope[T any] struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Data    T      `json:"data" yaml:"data"`
}

// OK reports whether the envelope denotes success.
func (e *Envelope[T]) OK() bool {
	return e.Code == SuccessCode
}

// Error is a business-level failure: the HTTP exchange succeeded but the
// envelope code was not 200, or the body was not an envelope at all.
type Error struct {
	// Code is the envelope code, or CodeMalformed.
	Code int
	// Message is the backend message, or FallbackMessage.
	Message string
	// StatusCode is the HTTP status of the response (always 2xx).
	StatusCode int
	// Method and URL identify the request.
	Method string
	URL    string
	// RequestID is the X-Request-ID sent with the request, if any.
	RequestID string
	// Body is the raw response body.
	Body []byte
	// Err is the decode error for malformed bodies.
	Err error
}

// Error returns the user-presentable message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the decode error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Malformed reports whether the body could not be read as an envelope.
func (e *Error) Malformed() bool {
	return e.Code == CodeMalformed
}

// AsBusiness returns the business error in err's chain, if any.
func AsBusiness(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsBusiness reports whether err is a business-level failure.
func IsBusiness(err error) bool {
	_, ok := AsBusiness(err)
	return ok
}

// header is the part of an envelope needed to judge success.
type header struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

// code returns the envelope code and whether one was present. Whole-number
// floats such as 200.0 are accepted; strings and fractions are not.
func (h header) code() (int, bool, error) {
	raw := bytes.TrimSpace(h.Code)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false, fmt.Errorf("code %s is not an integer", raw)
	}
	return int(f), true, nil
}

// Check validates the envelope header of a 2xx response. It returns nil
// when the code is 200 and an *Error otherwise.
func Check(resp *httpclient.Response) error {
	if e := check(resp); e != nil {
		return e
	}
	return nil
}

func check(resp *httpclient.Response) *Error {
	_, e := checkHeader(resp)
	return e
}

// checkHeader returns the message of a successful envelope.
func checkHeader(resp *httpclient.Response) (string, *Error) {
	var h header
	if err := decodeStrict(resp.Body, &h); err != nil {
		return "", malformed(resp, err)
	}
	code, present, err := h.code()
	if err != nil {
		return "", malformed(resp, err)
	}
	if present && code == SuccessCode {
		return h.Message, nil
	}
	return "", newError(resp, code, h.Message, nil)
}

// Decode parses a 2xx response body into an envelope carrying T. A body
// whose data does not fit T yields a CodeMalformed error.
func Decode[T any](resp *httpclient.Response) (*Envelope[T], error) {
	message, berr := checkHeader(resp)
	if berr != nil {
		return nil, berr
	}
	var body struct {
		Data T `json:"data"`
	}
	if err := decodeStrict(resp.Body, &body); err != nil {
		return nil, malformed(resp, err)
	}
	return &Envelope[T]{Code: SuccessCode, Message: message, Data: body.Data}, nil
}

func decodeStrict(body []byte, v any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return errors.New("empty body")
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("body is not a JSON object")
	}
	return json.Unmarshal(trimmed, v)
}

func malformed(resp *httpclient.Response, err error) *Error {
	return newError(resp, CodeMalformed, "", fmt.Errorf("envelope: decode: %w", err))
}

func newError(resp *httpclient.Response, code int, message string, err error) *Error {
	if message == "" {
		message = FallbackMessage
	}
	e := &Error{Code: code, Message: message, Err: err}
	if resp != nil {
		e.StatusCode = resp.StatusCode
		e.Method = resp.Method
		e.URL = resp.URL
		e.RequestID = resp.RequestID
		e.Body = resp.Body
	}
	return e
}

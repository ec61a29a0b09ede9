package core

// Code classifies a rejected request on the wire.
type Code string

const (
	CodeBusy     Code = "BUSY"
	CodeOffline  Code = "OFFLINE"
	CodeInvalid  Code = "INVALID"
	CodeRejected Code = "REJECTED"
)

// RequestError is the tagged outcome of a failed request event. A nil
// *RequestError means the request was acknowledged ok.
type RequestError struct {
	Code   Code
	Reason string
}

func (e *RequestError) Error() string {
	if e.Reason == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Reason
}

func Invalid(reason string) *RequestError {
	return &RequestError{Code: CodeInvalid, Reason: reason}
}

func Busy(reason string) *RequestError {
	return &RequestError{Code: CodeBusy, Reason: reason}
}

func Offline(reason string) *RequestError {
	return &RequestError{Code: CodeOffline, Reason: reason}
}

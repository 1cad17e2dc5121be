package pkg

// AppError is the error shape carried from usecases up to the HTTP layer.
//
// Code is a stable machine-readable identifier; Message is what the client
// sees. Err keeps the underlying cause for logging without ever exposing it
// in a response body.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// ToHTTPError renders the error as the response envelope body.
func (e *AppError) ToHTTPError() Envelope {
	return Envelope{Success: false, Error: e.Message, Code: e.Code}
}

package api

// General errors
var (
	ErrNil        = NewBusinessError(0, "Success", nil)
	ErrValidation = NewBusinessError(1, "Invalid parameter", nil)
	ErrInternal   = NewBusinessError(2, "Internal server error", nil)
)

// BusinessError is the JSON envelope of every API response, successful or not.
type BusinessError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewBusinessError(code int, message string, data interface{}) *BusinessError {
	return &BusinessError{code, message, data}
}

func (err *BusinessError) Error() string {
	return err.Message
}

// WithData returns a copy of the error carrying `data`.
func (err *BusinessError) WithData(data interface{}) *BusinessError {
	return NewBusinessError(err.Code, err.Message, data)
}

// Is matches business errors by code, so that errors carrying different data still compare equal.
func (err *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	return ok && t.Code == err.Code
}

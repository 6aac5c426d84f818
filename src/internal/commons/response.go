package commons

// Response is the envelope every endpoint answers with. Code mirrors the
// HTTP status written by the controller.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  *T     `json:"result,omitempty"`
}

func SuccessResponse[T any](message string, result T) Response[T] {
	return Response[T]{
		Message: message,
		Result:  &result,
	}
}

func ErrorResponse[T any](message string) Response[T] {
	return Response[T]{
		Message: message,
	}
}

// ErrorResponseWithResult echoes a result alongside an error message.
func ErrorResponseWithResult[T any](message string, result T) Response[T] {
	return Response[T]{
		Message: message,
		Result:  &result,
	}
}

func (r Response[T]) WithCode(code int) Response[T] {
	r.Code = code
	return r
}

// MessageResponse is an envelope with no result.
func MessageResponse(message string) Response[struct{}] {
	return Response[struct{}]{
		Message: message,
	}
}

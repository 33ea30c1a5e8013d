package serverutils

type ApiResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Message: message,
		Data:    data,
	}
}

type ApiError struct {
	Error string `json:"error"`
}

func ErrorResponse(message string) ApiError {
	return ApiError{Error: message}
}

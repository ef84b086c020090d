package havenly

// MsgNoToken is returned when an authenticated call is attempted with no
// token in the store. The exact wording is load-bearing: existing clients
// match on it.
const MsgNoToken = "Invalid api call, No token provided!"

// Result is the single normalised shape every API call resolves to. Failure
// is a value, not an error: transport failures, 4xx/5xx responses and missing
// tokens all land here with Success false and a human-readable Message.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// fail builds a failed Result with the zero value for the payload.
func fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Message: message}
}

// ok builds a successful Result.
func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

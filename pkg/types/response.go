package types

// DataEnvelope wraps public read responses.
type DataEnvelope struct {
	Data any `json:"data"`
}

// PageEnvelope wraps paginated catalog responses.
type PageEnvelope struct {
	Data       any `json:"data"`
	Pagination any `json:"pagination"`
}

// ActionEnvelope wraps authenticated mutations such as wishlist changes.
type ActionEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

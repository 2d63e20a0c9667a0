package utils

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Error    string `json:"error,omitempty"`
}

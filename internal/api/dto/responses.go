package dto

// StatusResponse counts extrinsics by outcome
type StatusResponse struct {
	Pending   int64 `json:"pending"`
	Finalized int64 `json:"finalized"`
	Dropped   int64 `json:"dropped"`
}

// DataResponse wraps a single payload
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// PaginationResponse wraps one page of results. Total is the number of pages.
type PaginationResponse[Q any, D any] struct {
	Query *Q    `json:"query,omitempty"`
	Size  int   `json:"size"`
	Page  int   `json:"page"`
	Total int64 `json:"total"`
	Data  []D   `json:"data"`
}

// Error codes
const (
	ErrorConflict       = "conflict"
	ErrorInvalidRequest = "invalid_request"
	ErrorNotFound       = "not_found"
	ErrorServerError    = "server_error"
	ErrorImpossible     = "impossible"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error            string  `json:"error"`
	ErrorDescription *string `json:"error_description,omitempty"`
	State            *string `json:"state,omitempty"`
}

// NewError builds an error body with an optional description
func NewError(code string, description string) ErrorResponse {
	resp := ErrorResponse{Error: code}
	if description != "" {
		resp.ErrorDescription = &description
	}
	return resp
}

package response

import "inventory-management/pkg/paginator"

// Resp is the JSON envelope for read responses and errors.
type Resp struct {
	Message    string                `json:"message,omitempty"`
	Data       any                   `json:"data,omitempty"`
	Pagination *paginator.Pagination `json:"pagination,omitempty"`
	Errors     any                   `json:"errors,omitempty"`
}

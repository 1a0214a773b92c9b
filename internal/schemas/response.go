package schemas

import "math"

// Response is the uniform envelope wrapped around every API response body.
// Data is non-nil exactly when Success is true.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse builds a success envelope carrying the given payload.
func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse builds a failure envelope with a nil payload.
func ErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
		Data:    nil,
	}
}

// Paginated wraps one page of a listing. It is placed as the Data field of a
// success envelope. Data is always the item list, possibly empty, never null.
type Paginated struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"total_pages"`
}

// NewPaginated computes total_pages as ceil(total/limit) from the same limit
// used for the page fetch.
func NewPaginated(items interface{}, page, limit int, total int64) Paginated {
	return Paginated{
		Data:       items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int64(math.Ceil(float64(total) / float64(limit))),
	}
}

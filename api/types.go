package api

// apiResponse is the uniform success envelope: list responses carry a
// results count and the collection under its plural key, single-record
// responses carry the record under its singular key, and contact carries a
// message.
type apiResponse struct {
	Status  string         `json:"status"`
	Results *int           `json:"results,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

func listResponse(key string, count int, items any) apiResponse {
	return apiResponse{
		Status:  "success",
		Results: &count,
		Data:    map[string]any{key: items},
	}
}

func dataResponse(key string, record any) apiResponse {
	return apiResponse{
		Status: "success",
		Data:   map[string]any{key: record},
	}
}

func messageResponse(message string) apiResponse {
	return apiResponse{
		Status:  "success",
		Message: message,
	}
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
	Field string `json:"field,omitempty" example:"title"`
}

package pkg

// Envelope is the uniform response body for every endpoint:
// {success, data|error, meta?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta carries pagination info for list endpoints.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKPaged(data any, total, page, limit int) Envelope {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Envelope{Success: true, Data: data, Meta: &Meta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}}
}

package domain

type Message struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// ProcessRequest keeps Data as a pointer so a missing field can be told apart
// from an empty one.
type ProcessRequest struct {
	Data *string `json:"data"`
}

type ProcessResponse struct {
	Echo string `json:"echo"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

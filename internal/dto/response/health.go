package response

type MessageResponse struct {
	Message string `json:"message"`
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

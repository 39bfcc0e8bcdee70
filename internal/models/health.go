package models

// HealthResponse represents the response from the liveness endpoint
type HealthResponse struct {
	Status    string  `json:"status" example:"healthy"`
	Timestamp string  `json:"timestamp" example:"2024-03-20T13:00:00.000Z"`
	Uptime    float64 `json:"uptime" example:"42.315"`
}

// HealthStatusHealthy is the only status reported by the liveness endpoint
const HealthStatusHealthy = "healthy"

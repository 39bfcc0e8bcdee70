package models

// ServiceName identifies this service in the info endpoint
const ServiceName = "k8s-azure-app"

// InfoResponse describes the process serving the request
type InfoResponse struct {
	Service  string `json:"service" example:"k8s-azure-app"`
	Hostname string `json:"hostname" example:"k8s-azure-app-7d9f8c-x2kqp"`
	Platform string `json:"platform" example:"linux"`
	// RuntimeVersion keeps the nodeVersion key existing dashboards read
	RuntimeVersion string `json:"nodeVersion" example:"go1.23.3"`
	Timestamp      string `json:"timestamp" example:"2024-03-20T13:00:00.000Z"`
}

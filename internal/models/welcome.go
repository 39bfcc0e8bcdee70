package models

const (
	// WelcomeMessage is returned by the root endpoint
	WelcomeMessage = "Welcome to Kubernetes Azure Infrastructure Demo!"
	// AppVersion is the released version of the service
	AppVersion = "1.0.0"
)

// WelcomeResponse represents the response from the root endpoint
type WelcomeResponse struct {
	Message     string `json:"message" example:"Welcome to Kubernetes Azure Infrastructure Demo!"`
	Version     string `json:"version" example:"1.0.0"`
	Environment string `json:"environment" example:"development"`
}

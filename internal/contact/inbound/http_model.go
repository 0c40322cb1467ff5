package inbound

type SubmitResponse struct {
	Success   bool   `json:"success" example:"true"`
	MessageID string `json:"messageId" example:"0106019a-example-message-id"`
}

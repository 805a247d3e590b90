package request

// LoginRequest may be empty when the key is sent in the X-API-Key header instead.
type LoginRequest struct {
	APIKey string `json:"apiKey"`
}

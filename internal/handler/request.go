package handler

// SendMessageRequest carries one notification. Exactly one of Devices or
// Recipients must be set; Devices addresses raw push tokens while Recipients
// addresses registered users whose tokens are looked up server side.
type SendMessageRequest struct {
	Content    string   `json:"content" binding:"required"`
	Devices    []string `json:"devices"`
	Recipients []string `json:"recipients"`
}

// RegisterDeviceRequest binds a push token to a recipient within an
// application.
type RegisterDeviceRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Token     string `json:"token" binding:"required"`
}

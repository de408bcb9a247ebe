package pushwoosh

type createMessageRequest struct {
	Request requestPayload `json:"request"`
}

type requestPayload struct {
	Application   string         `json:"application"`
	Auth          string         `json:"auth"`
	Notifications []notification `json:"notifications"`
}

type notification struct {
	SendDate           string   `json:"send_date"`
	IgnoreUserTimezone bool     `json:"ignore_user_timezone"`
	Content            string   `json:"content"`
	Devices            []string `json:"devices"`
}

// Response is the decoded JSON answer of the Pushwoosh API, handed back to
// the caller without interpretation. Remote application-level failures are
// data in here, not errors.
type Response map[string]any

func newCreateMessageRequest(session *Session, content string, devices []string) createMessageRequest {
	return createMessageRequest{
		Request: requestPayload{
			Application: session.Application(),
			Auth:        session.AccessToken(),
			Notifications: []notification{
				{
					SendDate:           "now",
					IgnoreUserTimezone: true,
					Content:            content,
					Devices:            devices,
				},
			},
		},
	}
}

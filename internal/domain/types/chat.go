package types

// Turn is one utterance in an assistant conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is the ordered conversation attached to a session.
type Transcript struct {
	Session SessionName `json:"session"`
	Turns   []Turn      `json:"turns"`
}

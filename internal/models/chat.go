package models

// Sender tags one side of the assistant conversation.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

// Attachment is an inline media payload on a chat turn.
type Attachment struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// ChatMessage is one turn in the assistant transcript. Messages are
// append-only and never edited after creation. A turn carries at most one
// image and at most one audio payload.
type ChatMessage struct {
	Sender Sender      `json:"sender"`
	Text   string      `json:"text"`
	Image  *Attachment `json:"image,omitempty"`
	Audio  *Attachment `json:"audio,omitempty"`
}

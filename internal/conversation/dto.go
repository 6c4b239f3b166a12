package conversation

// SendMessageRequest carries one outgoing message body.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type ConversationListResponse struct {
	Count         int            `json:"count"`
	Conversations []Conversation `json:"conversations"`
}

type MessageListResponse struct {
	Count    int       `json:"count"`
	Messages []Message `json:"messages"`
}

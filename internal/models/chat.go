package models

// ChatRole distinguishes the two speakers in a conversation.

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one prior exchange supplied by the caller. Sessions are
// not persisted server-side: every chat call carries its full history.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

package entities

import "time"

// SupportConversationKey groups messages addressed at management
// (ToEmployeeID empty) on the employee side of the chat.
const SupportConversationKey = "support"

// ChatMessage is one entry of the internal employee chat. An empty
// ToEmployeeID means the message is directed at management rather than at a
// specific employee.
type ChatMessage struct {
	ID             string    `json:"id"`
	FromEmployeeID string    `json:"fromEmployeeId"`
	ToEmployeeID   string    `json:"toEmployeeId,omitempty"`
	Content        string    `json:"content"`
	Image          string    `json:"image,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (m ChatMessage) EntityID() string { return m.ID }

func (m ChatMessage) WithEntityID(id string) ChatMessage {
	m.ID = id
	return m
}

// ConversationKey returns the id the message is grouped under when viewed by
// the employee with viewerID.
func (m ChatMessage) ConversationKey(viewerID string) string {
	if m.ToEmployeeID == "" {
		if m.FromEmployeeID == viewerID {
			return SupportConversationKey
		}
		return m.FromEmployeeID
	}
	if m.FromEmployeeID == viewerID {
		return m.ToEmployeeID
	}
	return m.FromEmployeeID
}

// Conversation is a derived view: all messages exchanged with one
// counterpart, ordered by CreatedAt ascending.
type Conversation struct {
	Key         string        `json:"key"`
	Messages    []ChatMessage `json:"messages"`
	UnreadCount int           `json:"unreadCount"`
	LastAt      time.Time     `json:"lastAt"`
}

type ChatAction string

const (
	ChatActionMessageSent     ChatAction = "message_sent"
	ChatActionMessageReceived ChatAction = "message_received"
	ChatActionChatDeleted     ChatAction = "chat_deleted"
	ChatActionChatAttended    ChatAction = "chat_attended"
)

// ChatActionLog is one entry of the capped action log (live ring buffer of
// 1000 entries, overflow archived into ChatBackupBatch).
type ChatActionLog struct {
	ID         string     `json:"id"`
	Action     ChatAction `json:"action"`
	EmployeeID string     `json:"employeeId,omitempty"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (l ChatActionLog) EntityID() string { return l.ID }

func (l ChatActionLog) WithEntityID(id string) ChatActionLog {
	l.ID = id
	return l
}

// ChatBackupBatch is a timestamped bundle of overflowed log entries. Batches
// older than the retention window are pruned wholesale.
type ChatBackupBatch struct {
	ID         string          `json:"id"`
	ArchivedAt time.Time       `json:"archivedAt"`
	Entries    []ChatActionLog `json:"entries"`
}

func (b ChatBackupBatch) EntityID() string { return b.ID }

func (b ChatBackupBatch) WithEntityID(id string) ChatBackupBatch {
	b.ID = id
	return b
}

package usecase

import (
	"context"
	"errors"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var ErrEmptyMessage = errors.New("empty message content")

// ChatUseCase is the internal employee chat. Messages with no recipient are
// directed at management and grouped under the fixed "support" key on the
// sender's side; management sees them grouped by the sending employee.
type ChatUseCase struct {
	messages *Collection[entities.ChatMessage]
	logs     *ChatLogUseCase
}

func NewChatUseCase(store interfaces.Store, logs *ChatLogUseCase) *ChatUseCase {
	return &ChatUseCase{
		messages: NewCollection(store, entities.CollectionChatMessages,
			TimestampID[entities.ChatMessage]("MSG"),
		),
		logs: logs,
	}
}

func (u *ChatUseCase) Send(ctx context.Context, msg entities.ChatMessage) (entities.ChatMessage, error) {
	if msg.Content == "" && msg.Image == "" {
		return entities.ChatMessage{}, ErrEmptyMessage
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	msg.Read = false

	sent, err := u.messages.Create(ctx, msg)
	if err != nil {
		return entities.ChatMessage{}, err
	}
	if _, err := u.logs.Append(ctx, entities.ChatActionLog{
		Action:     entities.ChatActionMessageSent,
		EmployeeID: sent.FromEmployeeID,
		Detail:     sent.ID,
	}); err != nil {
		return entities.ChatMessage{}, err
	}
	return sent, nil
}

// Conversations groups every message visible to viewerID by counterpart and
// orders each conversation by CreatedAt ascending. Conversations themselves
// come back newest-activity-first.
func (u *ChatUseCase) Conversations(ctx context.Context, viewerID string, management bool) []entities.Conversation {
	visible := u.messages.FindAll(ctx, func(m entities.ChatMessage) bool {
		if management {
			// Management attends every support-directed thread plus its own.
			return m.ToEmployeeID == "" || m.ToEmployeeID == viewerID || m.FromEmployeeID == viewerID
		}
		return m.FromEmployeeID == viewerID || m.ToEmployeeID == viewerID
	})

	groups := make(map[string][]entities.ChatMessage)
	for _, m := range visible {
		key := m.ConversationKey(viewerID)
		groups[key] = append(groups[key], m)
	}

	conversations := make([]entities.Conversation, 0, len(groups))
	for key, msgs := range groups {
		msgs = SortByDateAsc(msgs, func(m entities.ChatMessage) time.Time { return m.CreatedAt })
		unread := 0
		for _, m := range msgs {
			if !m.Read && m.FromEmployeeID != viewerID {
				unread++
			}
		}
		conversations = append(conversations, entities.Conversation{
			Key:         key,
			Messages:    msgs,
			UnreadCount: unread,
			LastAt:      msgs[len(msgs)-1].CreatedAt,
		})
	}
	return SortByDateDesc(conversations, func(c entities.Conversation) time.Time { return c.LastAt })
}

// MarkConversationRead flags every message the viewer received in the
// conversation and logs the attendance.
func (u *ChatUseCase) MarkConversationRead(ctx context.Context, viewerID, key string) error {
	msgs := u.messages.Load(ctx)
	changed := false
	for i, m := range msgs {
		if m.ConversationKey(viewerID) != key || m.FromEmployeeID == viewerID || m.Read {
			continue
		}
		msgs[i].Read = true
		changed = true
	}
	if !changed {
		return nil
	}
	if err := u.messages.Replace(ctx, msgs); err != nil {
		return err
	}
	_, err := u.logs.Append(ctx, entities.ChatActionLog{
		Action:     entities.ChatActionChatAttended,
		EmployeeID: viewerID,
		Detail:     key,
	})
	return err
}

// DeleteConversation removes every message in the conversation as seen by
// viewerID.
func (u *ChatUseCase) DeleteConversation(ctx context.Context, viewerID, key string) error {
	msgs := u.messages.Load(ctx)
	kept := make([]entities.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.ConversationKey(viewerID) == key {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == len(msgs) {
		return ErrNotFound
	}
	if err := u.messages.Replace(ctx, kept); err != nil {
		return err
	}
	_, err := u.logs.Append(ctx, entities.ChatActionLog{
		Action:     entities.ChatActionChatDeleted,
		EmployeeID: viewerID,
		Detail:     key,
	})
	return err
}

// UnreadCount feeds the chat badge.
func (u *ChatUseCase) UnreadCount(ctx context.Context, viewerID string, management bool) int {
	total := 0
	for _, c := range u.Conversations(ctx, viewerID, management) {
		total += c.UnreadCount
	}
	return total
}

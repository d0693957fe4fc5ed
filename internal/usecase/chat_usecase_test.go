package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
)

func newChatFixture() (*ChatUseCase, *ChatLogUseCase, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	logs := NewChatLogUseCase(store)
	return NewChatUseCase(store, logs), logs, store
}

func TestChatUseCase_Send(t *testing.T) {
	ctx := context.Background()
	chat, logs, _ := newChatFixture()

	t.Run("empty message", func(t *testing.T) {
		_, err := chat.Send(ctx, entities.ChatMessage{FromEmployeeID: "E001"})
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("stamps and logs", func(t *testing.T) {
		sent, err := chat.Send(ctx, entities.ChatMessage{FromEmployeeID: "E001", Content: "preciso de ajuda", Read: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent.ID == "" || sent.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and stamp: %+v", sent)
		}
		if sent.Read {
			t.Fatalf("a new message is never born read")
		}

		view := logs.MergedView(ctx)
		if len(view) != 1 || view[0].Action != entities.ChatActionMessageSent {
			t.Fatalf("expected one message_sent log, got %+v", view)
		}
		if view[0].EmployeeID != "E001" || view[0].Detail != sent.ID {
			t.Fatalf("log not linked to the message: %+v", view[0])
		}
	})
}

func TestChatUseCase_ConversationGrouping(t *testing.T) {
	ctx := context.Background()
	chat, _, _ := newChatFixture()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	seed := []entities.ChatMessage{
		// E001 writes to support twice, management (E900) answers once.
		{FromEmployeeID: "E001", Content: "oi", CreatedAt: base},
		{FromEmployeeID: "E900", ToEmployeeID: "E001", Content: "pois nao", CreatedAt: base.Add(time.Minute)},
		{FromEmployeeID: "E001", Content: "resolvido", CreatedAt: base.Add(2 * time.Minute)},
		// Unrelated pair between two other employees.
		{FromEmployeeID: "E002", ToEmployeeID: "E003", Content: "almoco?", CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, m := range seed {
		if _, err := chat.Send(ctx, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("employee support thread", func(t *testing.T) {
		convs := chat.Conversations(ctx, "E001", false)
		// E001 sees its support thread plus the direct reply from E900.
		if len(convs) != 2 {
			t.Fatalf("expected 2 conversations, got %d", len(convs))
		}
		var support *entities.Conversation
		for i := range convs {
			if convs[i].Key == entities.SupportConversationKey {
				support = &convs[i]
			}
		}
		if support == nil {
			t.Fatalf("expected a support conversation, got %+v", convs)
		}
		if len(support.Messages) != 2 {
			t.Fatalf("expected 2 support messages, got %d", len(support.Messages))
		}
		for i := 1; i < len(support.Messages); i++ {
			if support.Messages[i].CreatedAt.Before(support.Messages[i-1].CreatedAt) {
				t.Fatalf("messages not ascending: %+v", support.Messages)
			}
		}
	})

	t.Run("management groups support by sender", func(t *testing.T) {
		convs := chat.Conversations(ctx, "E900", true)
		if len(convs) != 1 {
			t.Fatalf("expected 1 conversation for management, got %d", len(convs))
		}
		if convs[0].Key != "E001" {
			t.Fatalf("expected support thread keyed by sender E001, got %q", convs[0].Key)
		}
		if len(convs[0].Messages) != 3 {
			t.Fatalf("expected 3 messages in the thread, got %d", len(convs[0].Messages))
		}
		// Two unread from E001; the reply E900 sent does not count.
		if convs[0].UnreadCount != 2 {
			t.Fatalf("expected 2 unread, got %d", convs[0].UnreadCount)
		}
	})

	t.Run("direct conversation invisible to outsiders", func(t *testing.T) {
		convs := chat.Conversations(ctx, "E002", false)
		if len(convs) != 1 || convs[0].Key != "E003" {
			t.Fatalf("unexpected conversations for E002: %+v", convs)
		}
	})
}

func TestChatUseCase_MarkConversationRead(t *testing.T) {
	ctx := context.Background()
	chat, logs, _ := newChatFixture()

	if _, err := chat.Send(ctx, entities.ChatMessage{FromEmployeeID: "E001", ToEmployeeID: "E002", Content: "oi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := chat.MarkConversationRead(ctx, "E002", "E001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := chat.UnreadCount(ctx, "E002", false); got != 0 {
		t.Fatalf("expected 0 unread after attend, got %d", got)
	}

	attended := 0
	for _, l := range logs.MergedView(ctx) {
		if l.Action == entities.ChatActionChatAttended {
			attended++
		}
	}
	if attended != 1 {
		t.Fatalf("expected one chat_attended log, got %d", attended)
	}

	// A second attend is a no-op and logs nothing new.
	if err := chat.MarkConversationRead(ctx, "E002", "E001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attended = 0
	for _, l := range logs.MergedView(ctx) {
		if l.Action == entities.ChatActionChatAttended {
			attended++
		}
	}
	if attended != 1 {
		t.Fatalf("expected still one chat_attended log, got %d", attended)
	}
}

func TestChatUseCase_DeleteConversation(t *testing.T) {
	ctx := context.Background()
	chat, logs, _ := newChatFixture()

	if _, err := chat.Send(ctx, entities.ChatMessage{FromEmployeeID: "E001", ToEmployeeID: "E002", Content: "oi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := chat.Send(ctx, entities.ChatMessage{FromEmployeeID: "E003", ToEmployeeID: "E002", Content: "tudo bem?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := chat.DeleteConversation(ctx, "E002", "E001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	convs := chat.Conversations(ctx, "E002", false)
	if len(convs) != 1 || convs[0].Key != "E003" {
		t.Fatalf("expected only the E003 thread to remain, got %+v", convs)
	}

	deleted := false
	for _, l := range logs.MergedView(ctx) {
		if l.Action == entities.ChatActionChatDeleted && l.Detail == "E001" {
			deleted = true
		}
	}
	if !deleted {
		t.Fatalf("expected a chat_deleted log for E001")
	}

	if err := chat.DeleteConversation(ctx, "E002", "E404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown conversation, got %v", err)
	}
}

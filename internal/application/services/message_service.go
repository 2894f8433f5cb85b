package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
	"github.com/avatarctic/hr-gateway/internal/infrastructure/apicache"
)

type MessageService struct {
	api    ports.MessageAPI
	cache  ports.ResponseCache
	ttl    TTLPolicy
	logger *logrus.Logger
}

func NewMessageService(api ports.MessageAPI, cache ports.ResponseCache, ttl TTLPolicy, logger *logrus.Logger) *MessageService {
	return &MessageService{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *MessageService) Conversations(ctx context.Context, employeeID uuid.UUID, forceRefresh bool) ([]message.Conversation, error) {
	key := employeeKey(employeeID, SectionMessage, "conversations")
	convs, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Short, s.api.ListConversations, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

func (s *MessageService) Thread(ctx context.Context, employeeID uuid.UUID, conversationID string, forceRefresh bool) (*message.Thread, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, fmt.Errorf("%w: missing conversation id", ErrInvalidInput)
	}
	key := employeeKey(employeeID, SectionMessage, "thread", conversationID)
	thread, err := apicache.GetOrCompute(ctx, s.cache, key, s.ttl.Short, func(ctx context.Context) (*message.Thread, error) {
		return s.api.GetThread(ctx, conversationID)
	}, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %s: %w", conversationID, err)
	}
	return thread, nil
}

func (s *MessageService) Send(ctx context.Context, employeeID uuid.UUID, conversationID string, req *message.SendRequest) (*message.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, fmt.Errorf("%w: missing conversation id", ErrInvalidInput)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: missing message", ErrInvalidInput)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	sent, err := s.api.SendMessage(ctx, conversationID, req)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "conversation_id": conversationID}).WithError(err).Error("failed to send message")
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	s.cache.Invalidate(employeeKey(employeeID, SectionMessage, "thread", conversationID))
	s.cache.Invalidate(employeeKey(employeeID, SectionMessage, "conversations"))
	return sent, nil
}

// HandleEvent drops cached message data of everyone an upstream event concerns.
// Unknown event types are ignored.
func (s *MessageService) HandleEvent(ctx context.Context, evt *message.Event) error {
	if evt == nil {
		return nil
	}

	affected := make(map[uuid.UUID]struct{}, len(evt.RecipientIDs)+1)
	for _, id := range evt.RecipientIDs {
		affected[id] = struct{}{}
	}
	if evt.Message != nil && evt.Message.SenderID != uuid.Nil {
		affected[evt.Message.SenderID] = struct{}{}
	}

	switch evt.Type {
	case message.EventMessageCreated:
		for id := range affected {
			s.cache.InvalidateByPrefix(sectionPrefix(id, SectionMessage))
		}
	case message.EventConversationRead:
		// only unread counts change
		for id := range affected {
			s.cache.Invalidate(employeeKey(id, SectionMessage, "conversations"))
		}
	default:
		if s.logger != nil {
			s.logger.WithField("type", evt.Type).Debug("ignoring hr event")
		}
		return nil
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"type":            evt.Type,
			"conversation_id": evt.ConversationID,
			"employees":       len(affected),
		}).Debug("message cache invalidated by event")
	}
	return nil
}

var _ ports.MessageService = (*MessageService)(nil)

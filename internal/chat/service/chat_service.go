package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatbridge/gemini-chat-backend/internal/chat/domain"
	"github.com/chatbridge/gemini-chat-backend/internal/chat/gemini"
)

// ChatService forwards a single chat message to Gemini and reduces the
// envelope to a plain reply or a typed error. It holds no per-request state,
// so concurrent calls are independent.
type ChatService struct {
	client *gemini.Client
}

// NewChatService creates a new chat service
func NewChatService(client *gemini.Client) *ChatService {
	return &ChatService{client: client}
}

// Chat sends the message upstream and returns the reply text. Every failure
// comes back as a *domain.Error carrying the status to surface to the caller.
func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	logger := NewLogger(ctx)

	if !s.client.Configured() {
		err := domain.NewConfigError()
		logger.LogError("chat", err)
		return "", err
	}

	start := time.Now()
	raw, err := s.client.GenerateContent(ctx, message)
	recordUpstreamCall(time.Since(start), err)
	if err != nil {
		var se *gemini.StatusError
		if errors.As(err, &se) {
			logger.LogErrorf("chat", "upstream status=%d detail=%s", se.StatusCode, se.Detail)
			return "", domain.NewUpstreamHTTPError(se.StatusCode, se.Detail)
		}
		logger.LogError("chat", err)
		return "", domain.NewInternalError(err)
	}

	out := gemini.Classify(raw)
	switch out.Kind {
	case gemini.TextReply:
		if out.FinishReason == gemini.FinishReasonSafety {
			logger.LogWarnf("chat", "partial response, finish_reason=SAFETY safety_ratings=%v", out.SafetyRatings)
		}
		return out.Text, nil

	case gemini.FunctionCallReply:
		logger.LogWarn("chat", "received a function call, not text")
		return FunctionCallPrefix + string(out.FunctionCall), nil

	case gemini.EmptyReply:
		logger.LogWarn("chat", "no text content in response")
		return ReplyNoTextContent, nil

	case gemini.SafetyBlockedReply:
		// Ratings are logged for the operator, never returned to the caller.
		logger.LogWarnf("chat", "response blocked, safety_ratings=%v", out.SafetyRatings)
		return ReplySafetyBlocked, nil

	case gemini.PromptBlocked:
		detail := fmt.Sprintf("Prompt blocked due to %s.", out.BlockReason)
		if len(out.SafetyRatings) > 0 {
			detail += fmt.Sprintf(" Safety ratings: %v", out.SafetyRatings)
		}
		blockErr := domain.NewPromptBlockedError(detail)
		logger.LogError("chat", blockErr)
		return "", blockErr

	default:
		shapeErr := domain.NewBadEnvelopeError(fmt.Sprintf("%s: %s", out.Detail, out.Raw))
		logger.LogError("chat", shapeErr)
		return "", shapeErr
	}
}

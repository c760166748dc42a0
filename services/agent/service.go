package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trimly/models"
	"trimly/services/booking"
	"trimly/services/conversation"
	"trimly/services/intent"
	"trimly/store"

	"go.uber.org/zap"
)

// Service orchestrates a chat turn: greeting short-circuit, intent
// extraction, reservation, and the assistant reply. One instance serves all
// sessions; per-session state lives in the conversation log.
type Service struct {
	Extractor *intent.Extractor
	Bookings  *booking.Service
	Sessions  *conversation.Log
	Logger    *zap.Logger
}

func NewService(extractor *intent.Extractor, bookings *booking.Service, sessions *conversation.Log, logger *zap.Logger) *Service {
	return &Service{Extractor: extractor, Bookings: bookings, Sessions: sessions, Logger: logger}
}

const greetingReply = "Hi! Welcome to the barbershop. Tell me what service you'd like, your name, and a date and time, and I'll book it for you."

var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "hiya": {}, "good morning": {}, "good afternoon": {},
}

// HandleMessage processes one chat turn and always returns a response;
// upstream failures degrade inside the extractor and never escape as
// errors.
func (s *Service) HandleMessage(ctx context.Context, sessionID, message string) *models.ChatResponse {
	if isGreeting(message) {
		// Greetings short-circuit before extraction and mutate nothing but
		// the conversation log.
		s.Sessions.Append(sessionID, models.RoleUser, message)
		s.Sessions.Append(sessionID, models.RoleAssistant, greetingReply)
		return &models.ChatResponse{Status: models.ChatStatusGreeting, Reply: greetingReply}
	}

	history := s.Sessions.Turns(sessionID)
	s.Sessions.Append(sessionID, models.RoleUser, message)

	result := s.Extractor.Extract(ctx, message, history)
	resp := s.respond(result)

	s.Sessions.Append(sessionID, models.RoleAssistant, resp.Reply)
	return resp
}

func (s *Service) respond(result intent.Result) *models.ChatResponse {
	switch {
	case result.Intent != nil:
		return s.reserve(*result.Intent)
	case result.Question != "":
		return &models.ChatResponse{Status: models.ChatStatusIncomplete, Reply: result.Question}
	default:
		return &models.ChatResponse{Status: models.ChatStatusChat, Reply: result.Reply}
	}
}

func (s *Service) reserve(in models.BookingIntent) *models.ChatResponse {
	b, err := s.Bookings.Create(in)
	if err != nil {
		var unavailable *store.SlotUnavailableError
		if errors.As(err, &unavailable) {
			reply := fmt.Sprintf("Sorry, %s at %s is already taken.", in.Date, in.Time)
			if len(unavailable.Available) > 0 {
				reply += " Free times that day: " + strings.Join(unavailable.Available, ", ") + "."
			} else {
				reply += " There are no free times left that day."
			}
			return &models.ChatResponse{
				Status:       models.ChatStatusUnavailable,
				Reply:        reply,
				Alternatives: unavailable.Available,
			}
		}
		s.Logger.Error("booking creation failed", zap.Error(err))
		return &models.ChatResponse{
			Status: models.ChatStatusError,
			Reply:  "Something went wrong while reserving your slot. Please try again.",
		}
	}

	reply := fmt.Sprintf("All set, %s! Your %s is reserved for %s at %s. You can pay with Klarna to confirm it.",
		b.CustomerName, strings.ToLower(b.Service), b.Date, b.Time)
	return &models.ChatResponse{
		Status:    models.ChatStatusReserved,
		Reply:     reply,
		BookingID: b.ID,
		Booking:   b,
	}
}

func isGreeting(message string) bool {
	normalized := strings.ToLower(strings.TrimSpace(message))
	normalized = strings.TrimRight(normalized, "!.? ")
	_, ok := greetings[normalized]
	return ok
}

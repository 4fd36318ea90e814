package handler

import (
	"context"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// ListMessages handles GET /chat/messages.
func (s *Server) ListMessages(ctx context.Context, _ gen.ListMessagesRequestObject) (gen.ListMessagesResponseObject, error) {
	msgs := s.chat.Messages(ctx)
	data := make([]gen.Message, len(msgs))
	for i, m := range msgs {
		data[i] = messageToResponse(m)
	}
	return gen.ListMessages200JSONResponse{Data: data}, nil
}

// SendMessage handles POST /chat/messages. The user message is stored
// immediately; the reply arrives later and is visible through ListMessages,
// hence 202.
func (s *Server) SendMessage(ctx context.Context, req gen.SendMessageRequestObject) (gen.SendMessageResponseObject, error) {
	if req.Body == nil {
		return gen.SendMessage422JSONResponse(requestBody("request body is required")), nil
	}

	msg, ok := s.chat.Send(ctx, req.Body.Text)
	if !ok {
		return gen.SendMessage422JSONResponse(requestBody("text is required")), nil
	}
	return gen.SendMessage202JSONResponse(messageToResponse(msg)), nil
}

func messageToResponse(m domain.Message) gen.Message {
	return gen.Message{
		Id:        m.ID,
		Sender:    gen.MessageSender(m.Sender),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rosalinebakery/store_service/internal/dto"
)

// MailHandler consumes PIN email events from the broker and dispatches by
// message key.
type MailHandler struct {
	svc *MailService
}

func NewMailHandler(svc *MailService) *MailHandler {
	return &MailHandler{svc: svc}
}

func (h *MailHandler) HandleMessage(_ context.Context, key, value []byte) error {
	var event dto.PinEmailEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("decode pin email event: %w", err)
	}

	data := PinMail{
		Nombre:    event.Nombre,
		Pin:       event.Pin,
		ExpiraMin: event.ExpiraMin,
	}

	switch string(key) {
	case dto.EventConfirmEmail:
		return h.svc.SendConfirmEmail(event.Correo, data)
	case dto.EventResetPassword:
		return h.svc.SendResetEmail(event.Correo, data)
	default:
		return fmt.Errorf("unknown event key %q", string(key))
	}
}

package notifier

import (
	"context"

	"guidely/internal/domain/notification"
	"guidely/internal/domain/user"
	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// ContactSource resolves a recipient id to an address.
type ContactSource interface {
	FindContact(ctx context.Context, userID uuid.UUID) (user.Contact, error)
}

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSink struct {
	dialer   mailDialer
	from     string
	contacts ContactSource
}

func NewSMTPSink(cfg config.NotifierConfig, contacts ContactSource) *SMTPSink {
	return &SMTPSink{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:     cfg.SMTPFrom,
		contacts: contacts,
	}
}

func (s *SMTPSink) Send(ctx context.Context, ev notification.Event) error {
	to, err := s.contacts.FindContact(ctx, ev.RecipientID)
	if err != nil {
		return errs.Wrapf(err, "resolve recipient %s", ev.RecipientID)
	}
	if to.Email == "" {
		return errs.Newf("recipient %s has no email", ev.RecipientID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", to.Email, to.DisplayName())
	m.SetHeader("Subject", ev.Subject())
	m.SetHeader("X-Guidely-Event", string(ev.Kind))
	m.SetBody("text/plain", "Hi "+to.DisplayName()+",\n\n"+ev.Body())

	if err := s.dialer.DialAndSend(m); err != nil {
		return errs.Wrapf(err, "send %s to %s", ev.Kind, to.Email)
	}
	return nil
}

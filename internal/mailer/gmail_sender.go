package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587
)

const (
	senderEmailName    = "DentCare Clinic"
	senderEmailAddress = "dentcareclinicvn@gmail.com"
)

// EmailSender sends transactional clinic email.
type EmailSender interface {
	SendAppointmentConfirmation(ctx context.Context, payload AppointmentConfirmationPayload) error
}

// AppointmentConfirmationPayload carries everything the confirmation email
// template needs.
type AppointmentConfirmationPayload struct {
	To              string
	PatientName     string
	AppointmentCode string
	Treatment       string
	Slot            string // e.g. "09:30 24/12/2026"
	DentistName     string
}

type GmailSender struct {
	client *mail.Client
}

func NewGmailSender(username, password string) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client: client,
	}, nil
}

func (sender *GmailSender) SendAppointmentConfirmation(ctx context.Context, payload AppointmentConfirmationPayload) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderEmailName, senderEmailAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Xác nhận lịch hẹn %s", payload.AppointmentCode))

	if err := msg.To(payload.To); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	body := fmt.Sprintf(`<p>Xin chào %s,</p>
<p>Lịch hẹn <strong>%s</strong> của bạn đã được xác nhận.</p>
<ul>
	<li>Dịch vụ: %s</li>
	<li>Thời gian: %s</li>
	<li>Bác sĩ: %s</li>
</ul>
<p>Vui lòng đến trước giờ hẹn 10 phút. Hẹn gặp bạn tại phòng khám!</p>`,
		payload.PatientName, payload.AppointmentCode, payload.Treatment, payload.Slot, payload.DentistName)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := sender.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// Package mailer sends order confirmation and payment failure emails
// over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"shoestore/internal/config"
	"shoestore/internal/model"

	"github.com/rs/zerolog"
)

// Mailer dispatches a status-dependent email for a persisted order.
type Mailer interface {
	// SendOrderEmail renders the confirmation or failure message for
	// the order and sends it to the customer's email address. One
	// attempt only; a failure never affects the stored order.
	SendOrderEmail(ctx context.Context, order *model.Order) error
}

// sendFunc matches smtp.SendMail and is swapped out in tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpMailer implements Mailer on top of net/smtp with PLAIN auth.
type smtpMailer struct {
	cfg     config.SMTPConfig
	baseURL string
	logger  zerolog.Logger
	send    sendFunc
}

// New creates an SMTP-backed mailer. Credentials are checked per send,
// not here, so the storefront can boot without them.
func New(cfg config.SMTPConfig, store config.StoreConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg:     cfg,
		baseURL: store.BaseURL,
		logger:  logger.With().Str("component", "mailer").Logger(),
		send:    smtp.SendMail,
	}
}

// SendOrderEmail sends the order email to the customer.
func (m *smtpMailer) SendOrderEmail(ctx context.Context, order *model.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	if !m.cfg.Configured() {
		m.logger.Error().Msg("SMTP_USER or SMTP_PASS not set, cannot send order email")
		return model.ErrMailerNotConfigured
	}

	subject, body := m.render(order)
	from := fmt.Sprintf("%s <%s>", m.cfg.SenderName, m.cfg.User)
	to := order.Customer.Email

	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)

	if err := m.send(m.cfg.Address(), auth, m.cfg.User, []string{to}, msg); err != nil {
		m.logger.Error().
			Err(err).
			Str("order_number", order.OrderNumber).
			Str("to", to).
			Msg("smtp send failed")
		return fmt.Errorf("%w: %v", model.ErrNotificationFailed, err)
	}

	m.logger.Info().
		Str("order_number", order.OrderNumber).
		Str("to", to).
		Str("payment_status", string(order.Payment.Status)).
		Msg("order email sent")

	return nil
}

// render picks the template for the order's payment status.
func (m *smtpMailer) render(order *model.Order) (subject, body string) {
	if order.Payment.Status == model.PaymentApproved {
		return fmt.Sprintf("Order Confirmed #%s - ShoeStore", order.OrderNumber),
			buildConfirmationHTML(order, m.baseURL)
	}
	return fmt.Sprintf("Payment Failed #%s - ShoeStore", order.OrderNumber),
		buildFailureHTML(order, m.baseURL)
}

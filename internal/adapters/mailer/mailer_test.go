package mailer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type captureSender struct {
	sent []*mail.Msg
	err  error
}

func (c *captureSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, messages...)
	return nil
}

func newTestMailer(sender Sender) *SMTPMailer {
	m := NewWithSender(sender, "noreply@example.com", "Currency Converter")
	m.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return m
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendOTP(t *testing.T) {
	sender := &captureSender{}
	m := newTestMailer(sender)

	err := m.SendOTP(context.Background(), "jane@example.com", "Jane", "482913")

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"Your Currency Converter OTP Code"}, msg.GetGenHeader(mail.HeaderSubject))
	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, rcpts)

	body := render(t, msg)
	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "Hello Jane")
	assert.Contains(t, body, "10 minutes")
}

func TestSendPasswordReset(t *testing.T) {
	sender := &captureSender{}
	m := newTestMailer(sender)

	err := m.SendPasswordReset(context.Background(), "jane@example.com", "", "abc123")

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	body := render(t, sender.sent[0])
	assert.Contains(t, body, "abc123")
	assert.Contains(t, body, "1 hour")
}

func TestSendPropagatesSenderError(t *testing.T) {
	m := newTestMailer(&captureSender{err: assert.AnError})

	err := m.SendOTP(context.Background(), "jane@example.com", "Jane", "111111")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestSendRejectsBadRecipient(t *testing.T) {
	sender := &captureSender{}
	m := newTestMailer(sender)

	err := m.SendOTP(context.Background(), "not an address", "Jane", "111111")

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestLogMailerNeverFails(t *testing.T) {
	l := NewLogMailer(nil)

	assert.NoError(t, l.SendOTP(context.Background(), "a@b.co", "A", "123456"))
	assert.NoError(t, l.SendPasswordReset(context.Background(), "a@b.co", "A", "tok"))
}

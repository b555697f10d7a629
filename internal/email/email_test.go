package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m...)
	return nil
}

func testSMTPConfig() *SMTPConfig {
	return &SMTPConfig{Host: "smtp.test", Port: 587, FromEmail: "noreply@gym.test", FromName: "Gym"}
}

func TestBuildExpiryDigest(t *testing.T) {
	msg, err := BuildExpiryDigest(NewTemplateManager(), ExpiryDigest{
		GymName: "Iron House",
		GymMail: "owner@ironhouse.test",
		Entries: []DigestEntry{
			{MemberName: "Zoe", PlanName: "Monthly", EndDate: "2025-02-10", RenewBy: "2025-02-13"},
			{MemberName: "Adam", PlanName: "Quarterly", EndDate: "2025-02-10", RenewBy: "2025-02-13"},
			{MemberName: "Bea", PlanName: "Monthly", EndDate: "2025-02-09", RenewBy: "2025-02-12"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"owner@ironhouse.test"}, msg.To)
	assert.Equal(t, "Iron House: 3 membership(s) awaiting renewal", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "<td>Adam</td>")

	bea := bytes.Index([]byte(msg.Body), []byte("Bea"))
	adam := bytes.Index([]byte(msg.Body), []byte("Adam"))
	zoe := bytes.Index([]byte(msg.Body), []byte("Zoe"))
	assert.True(t, bea < adam && adam < zoe, "entries ordered by end date then name")
}

func TestBuildExpiryDigest_EscapesNames(t *testing.T) {
	msg, err := BuildExpiryDigest(NewTemplateManager(), ExpiryDigest{
		GymName: "Gym",
		GymMail: "owner@gym.test",
		Entries: []DigestEntry{{MemberName: "<script>", PlanName: "P", EndDate: "2025-01-01", RenewBy: "2025-01-04"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
}

func TestSMTPProvider_Send(t *testing.T) {
	sender := &captureSender{}
	p := NewSMTPProviderWithSender(testSMTPConfig(), sender)

	err := p.Send(context.Background(), &Email{To: []string{"owner@gym.test"}, Subject: "hi", Body: "plain", HTMLBody: "<b>rich</b>"})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	var buf bytes.Buffer
	_, err = sender.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "noreply@gym.test")
	assert.Contains(t, raw, "Subject: hi")
	assert.Contains(t, raw, "multipart/alternative")
}

func TestSMTPProvider_Errors(t *testing.T) {
	t.Run("no recipients", func(t *testing.T) {
		p := NewSMTPProviderWithSender(testSMTPConfig(), &captureSender{})
		assert.Error(t, p.Send(context.Background(), &Email{Subject: "x"}))
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := testSMTPConfig()
		cfg.Host = ""
		p := NewSMTPProviderWithSender(cfg, &captureSender{})
		assert.Error(t, p.Validate())
	})

	t.Run("dial failure is wrapped", func(t *testing.T) {
		dialErr := errors.New("connection refused")
		p := NewSMTPProviderWithSender(testSMTPConfig(), &captureSender{err: dialErr})
		err := p.Send(context.Background(), &Email{To: []string{"a@b.test"}, Body: "x"})
		assert.ErrorIs(t, err, dialErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sender := &captureSender{}
		p := NewSMTPProviderWithSender(testSMTPConfig(), sender)
		assert.ErrorIs(t, p.Send(ctx, &Email{To: []string{"a@b.test"}}), context.Canceled)
		assert.Empty(t, sender.sent)
	})
}

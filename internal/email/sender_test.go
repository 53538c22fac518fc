package email

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niceliubing/real-estate/internal/config"
)

type stubSender struct {
	calls int
	err   error
}

func (s *stubSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	s.calls++
	return s.err
}

func TestNewSMTPSenderFallsBackToLogging(t *testing.T) {
	sender := NewSMTPSender(&config.Config{})
	_, isLogging := sender.(*LoggingSender)
	assert.True(t, isLogging)

	withHost := NewSMTPSender(&config.Config{SmtpHost: "smtp.example.com", SmtpPort: 587})
	_, isSMTP := withHost.(*SMTPSender)
	assert.True(t, isSMTP)
}

func TestFileEmailSenderAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mail", "outbox.log")
	sender, err := NewFileEmailSender(path, &config.Config{})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sender.Send(ctx, []string{"agent@example.com"}, "First", []byte("body one")))
	require.NoError(t, sender.Send(ctx, []string{"agent@example.com"}, "Second", []byte("body two")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Subject: First")
	assert.Contains(t, string(data), "body two")
}

func TestFileEmailSenderRejectsEmptyPath(t *testing.T) {
	_, err := NewFileEmailSender("  ", &config.Config{})
	assert.Error(t, err)
}

func TestCompositeSenderFansOut(t *testing.T) {
	a := &stubSender{}
	b := &stubSender{}
	cs := NewCompositeEmailSender(a)
	cs.AddSender(b)
	cs.AddSender(nil) // ignored

	require.NoError(t, cs.Send(context.Background(), []string{"x@example.com"}, "Hi", []byte("msg")))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestCompositeSenderAggregatesErrors(t *testing.T) {
	ok := &stubSender{}
	bad := &stubSender{err: errors.New("smtp down")}
	cs := NewCompositeEmailSender(ok, bad)

	err := cs.Send(context.Background(), []string{"x@example.com"}, "Hi", []byte("msg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	// Every sender still ran.
	assert.Equal(t, 1, ok.calls)
}

func TestCompositeSenderEmpty(t *testing.T) {
	cs := NewCompositeEmailSender()
	err := cs.Send(context.Background(), []string{"x@example.com"}, "Hi", []byte("msg"))
	assert.Error(t, err)
}

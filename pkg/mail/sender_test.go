package mail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"
)

type fakeDialer struct {
	err  error
	sent []*gomail.Message
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSender_SendMail(t *testing.T) {
	t.Run("sends headers and bodies", func(t *testing.T) {
		dialer := &fakeDialer{}
		s := &sender{email: "monitor@example.com", dialer: dialer}

		err := s.SendMail([]string{"admin@example.com"}, "servers offline", "<b>web1</b>", "web1")
		require.NoError(t, err)
		require.Len(t, dialer.sent, 1)

		m := dialer.sent[0]
		assert.Equal(t, []string{"monitor@example.com"}, m.GetHeader("From"))
		assert.Equal(t, []string{"admin@example.com"}, m.GetHeader("To"))
		assert.Equal(t, []string{"servers offline"}, m.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err = m.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "web1")
	})

	t.Run("propagates dialer error", func(t *testing.T) {
		dialer := &fakeDialer{err: errors.New("smtp down")}
		s := &sender{email: "monitor@example.com", dialer: dialer}

		err := s.SendMail([]string{"admin@example.com"}, "subject", "", "body")
		assert.Error(t, err)
	})
}

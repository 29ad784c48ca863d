package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/library"
	"github.com/AntonStoeckl/library-loans-go/notifier"
	. "github.com/AntonStoeckl/library-loans-go/testutil/helper" //nolint:revive
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func Test_EmailNotifier_WritesOneEmailLine(t *testing.T) {
	// arrange
	var out bytes.Buffer
	n, err := notifier.NewEmailNotifier(&out)
	require.NoError(t, err)

	// act
	n.Send(context.Background(), "Ana", "Welcome to the Library", "You have been registered in our system!")

	// assert
	assert.Equal(t,
		"[EMAIL] To: Ana | Subject: Welcome to the Library | Msg: You have been registered in our system!\n",
		out.String(),
	)
}

func Test_SMSNotifier_WritesOneSMSLineWithoutSubject(t *testing.T) {
	// arrange
	var out bytes.Buffer
	n, err := notifier.NewSMSNotifier(&out)
	require.NoError(t, err)

	// act
	n.Send(context.Background(), "Ana", "Late Return Fine", "You have a late fee of 3")

	// assert
	assert.Equal(t, "[SMS] To: Ana | Msg: You have a late fee of 3\n", out.String())
}

func Test_JSONNotifier_WritesOneJSONObjectPerLine(t *testing.T) {
	// arrange
	var out bytes.Buffer
	clock := NewClockStub(FixedTime())
	n, err := notifier.NewJSONNotifier(&out, notifier.WithClock(clock.Now))
	require.NoError(t, err)

	// act
	n.Send(context.Background(), "Ana", "Loan Confirmed", "You borrowed the book: Dom Casmurro")
	n.Send(context.Background(), "Bruno", "Loan Confirmed", "You borrowed the book: Clean Code")

	// assert
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first notifier.JSONNotification
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, notifier.JSONNotification{
		Channel:   "json",
		Recipient: "Ana",
		Subject:   "Loan Confirmed",
		Message:   "You borrowed the book: Dom Casmurro",
		SentAt:    FixedTime(),
	}, first)

	assert.Equal(t, "Bruno", jsoniter.Get([]byte(lines[1]), "recipient").ToString())
	assert.Equal(t, FixedTime().Format(time.RFC3339Nano), jsoniter.Get([]byte(lines[1]), "sentAt").ToString())
}

func Test_Notifier_WriteFailuresAreLoggedAndSwallowed(t *testing.T) {
	// arrange
	logHandler := NewLogHandlerSpy(false)
	n, err := notifier.NewEmailNotifier(failingWriter{}, notifier.WithLogger(slog.New(logHandler)))
	require.NoError(t, err)

	// act
	assert.NotPanics(t, func() {
		n.Send(context.Background(), "Ana", "Welcome to the Library", "You have been registered in our system!")
	})

	// assert
	assert.True(t, logHandler.HasErrorLogWithMessage("failed to write notification").
		WithAttribute("channel", "email").
		WithAttribute("recipient", "Ana").
		WithAttribute("error", "disk full").
		Assert())
}

func Test_Notifier_WriteFailuresWithoutLoggerAreSwallowed(t *testing.T) {
	n, err := notifier.NewSMSNotifier(failingWriter{})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.Send(context.Background(), "Ana", "", "hi")
	})
}

func Test_WithClock_FailsWithNilClock(t *testing.T) {
	_, err := notifier.NewJSONNotifier(&bytes.Buffer{}, notifier.WithClock(nil))

	assert.ErrorIs(t, err, notifier.ErrNilClock)
}

func Test_FanOutNotifier_ForwardsToAllInOrder(t *testing.T) {
	// arrange
	first := NewNotifierSpy()
	second := NewNotifierSpy()
	var out bytes.Buffer
	email, err := notifier.NewEmailNotifier(&out)
	require.NoError(t, err)
	fanOut := notifier.NewFanOutNotifier(first, nil, email, second)

	// act
	fanOut.Send(context.Background(), "Ana", "Loan Confirmed", "You borrowed the book: Dom Casmurro")

	// assert
	assert.Equal(t, 1, first.GetNotificationCount())
	assert.Equal(t, 1, second.GetNotificationCount())
	assert.Equal(t, "[EMAIL] To: Ana | Subject: Loan Confirmed | Msg: You borrowed the book: Dom Casmurro\n", out.String())
}

func Test_Build(t *testing.T) {
	testCases := []struct {
		channel  string
		expected string
	}{
		{channel: "email", expected: "[EMAIL] To: Ana | Subject: S | Msg: M\n"},
		{channel: "SMS", expected: "[SMS] To: Ana | Msg: M\n"},
		{channel: " email , sms ", expected: "[EMAIL] To: Ana | Subject: S | Msg: M\n[SMS] To: Ana | Msg: M\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.channel, func(t *testing.T) {
			// arrange
			var out bytes.Buffer
			n, err := notifier.Build(tc.channel, &out)
			require.NoError(t, err)

			// act
			n.Send(context.Background(), "Ana", "S", "M")

			// assert
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func Test_Build_JSONChannel(t *testing.T) {
	var out bytes.Buffer
	n, err := notifier.Build("json", &out)
	require.NoError(t, err)

	n.Send(context.Background(), "Ana", "S", "M")

	assert.Equal(t, "json", jsoniter.Get(out.Bytes(), "channel").ToString())
}

func Test_Build_FailsForUnknownChannel(t *testing.T) {
	n, err := notifier.Build("pigeon", &bytes.Buffer{})

	assert.ErrorIs(t, err, notifier.ErrUnknownChannel)
	assert.Nil(t, n)

	_, err = notifier.Build("email,pigeon", &bytes.Buffer{})
	assert.ErrorIs(t, err, notifier.ErrUnknownChannel)
}

func Test_Notifiers_PlugIntoTheService(t *testing.T) {
	// arrange
	var out bytes.Buffer
	n, err := notifier.Build("sms", &out)
	require.NoError(t, err)
	service, err := library.NewService(n)
	require.NoError(t, err)
	ctx := context.Background()

	// act
	service.AddUser(ctx, library.BuildUser("Ana", 1))

	// assert
	assert.Equal(t, "[SMS] To: Ana | Msg: You have been registered in our system!\n", out.String())
}

package helper

import (
	"context"
	"sync"
)

// SpyNotification represents a captured Send call.
type SpyNotification struct {
	Recipient string
	Subject   string
	Message   string
}

// NotifierSpy is a Notifier implementation that captures every notification for testing.
type NotifierSpy struct {
	notifications []SpyNotification
	mu            sync.Mutex
}

// NewNotifierSpy creates a new NotifierSpy.
func NewNotifierSpy() *NotifierSpy {
	return &NotifierSpy{
		notifications: make([]SpyNotification, 0),
	}
}

// Send implements the Notifier interface for testing.
func (s *NotifierSpy) Send(_ context.Context, recipient string, subject string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, SpyNotification{
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
	})
}

// GetNotificationCount returns the number of captured notifications.
func (s *NotifierSpy) GetNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notifications)
}

// GetNotifications returns a copy of all captured notifications.
func (s *NotifierSpy) GetNotifications() []SpyNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]SpyNotification, len(s.notifications))
	copy(notifications, s.notifications)

	return notifications
}

// GetNotificationsWithSubject returns all captured notifications with the given subject.
func (s *NotifierSpy) GetNotificationsWithSubject(subject string) []SpyNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matching []SpyNotification
	for _, notification := range s.notifications {
		if notification.Subject == subject {
			matching = append(matching, notification)
		}
	}

	return matching
}

// LastNotification returns the most recently captured notification and false if there is none.
func (s *NotifierSpy) LastNotification() (SpyNotification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.notifications) == 0 {
		return SpyNotification{}, false
	}

	return s.notifications[len(s.notifications)-1], true
}

// Reset clears all captured notifications.
func (s *NotifierSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = s.notifications[:0]
}

// Package notify delivers outgoing user-facing emails: password recovery,
// new-account notices, and operator test messages.
package notify

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

import "context"

// Notifier sends transactional emails to users.
// Implementations must treat missing delivery configuration as a soft
// failure: log and skip rather than break the calling flow.
type Notifier interface {
	// SendPasswordResetEmail delivers a password recovery message carrying
	// the reset token to the given address.
	SendPasswordResetEmail(ctx context.Context, toEmail, token string) error

	// SendNewAccountEmail notifies a freshly created account of its
	// credentials.
	SendNewAccountEmail(ctx context.Context, toEmail, password string) error

	// SendTestEmail delivers a plain test message, used by the admin
	// test-email endpoint.
	SendTestEmail(ctx context.Context, toEmail string) error
}

// NopNotifier discards all messages. Used in tests and when email delivery
// is not configured.
type NopNotifier struct{}

func (NopNotifier) SendPasswordResetEmail(ctx context.Context, toEmail, token string) error {
	return nil
}

func (NopNotifier) SendNewAccountEmail(ctx context.Context, toEmail, password string) error {
	return nil
}

func (NopNotifier) SendTestEmail(ctx context.Context, toEmail string) error {
	return nil
}

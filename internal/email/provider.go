package email

// Provider sends mail on behalf of the platform. Implementations must be
// safe for concurrent use; the notification service fires them from
// goroutines.
type Provider interface {
	// Send delivers a single HTML message.
	Send(to, subject, htmlBody string) error
}

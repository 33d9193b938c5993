package email

// Message is a single outbound email.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends transactional email. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(msg *Message) error

	// SendWelcome greets a freshly registered user.
	SendWelcome(to string, firstName string) error

	Validate() error
	Close() error
}

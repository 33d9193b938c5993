package app

import "festacconnect_backend/internal/email"

// NoopEmailProvider discards every message. Used when SMTP is not
// configured and by background workers.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) Send(msg *email.Message) error                 { return nil }
func (m *NoopEmailProvider) SendWelcome(to string, firstName string) error { return nil }
func (m *NoopEmailProvider) Validate() error                               { return nil }
func (m *NoopEmailProvider) Close() error                                  { return nil }

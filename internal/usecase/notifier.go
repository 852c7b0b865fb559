package usecase

import "github.com/polkiloo/scentshop/internal/adapter/mail"

// Notifier queues an email for background delivery. Enqueue must not block;
// it reports whether the message was accepted.
type Notifier interface {
	Enqueue(msg mail.Message) bool
}

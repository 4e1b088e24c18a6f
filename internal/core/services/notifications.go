package services

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is the transient message surfaced to the user after a
// save attempt or a blocked validation.
type Notification struct {
	ID      string           `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	At      time.Time        `json:"at"`
}

// Notifier is the presentation layer's side of the contract. A save
// resolving after the user navigated away still notifies; the front end
// is free to drop messages it can no longer show.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

func newNotification(kind NotificationKind, message string) Notification {
	return Notification{
		ID:      uuid.New().String(),
		Kind:    kind,
		Message: message,
		At:      time.Now().UTC(),
	}
}

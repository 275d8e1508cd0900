package transport

import "context"

// Messenger is the outbound chat collaborator. Delivery is asynchronous and
// ordering is only guaranteed per requester identity.
type Messenger interface {
	SendText(ctx context.Context, requesterID int64, text string) error
	SendChoice(ctx context.Context, requesterID int64, text string, options []string) error
	SendPhoto(ctx context.Context, requesterID int64, fileRef string) error
}

// AdminNotifier delivers messages to the single administrator identity.
type AdminNotifier interface {
	NotifyAdmin(ctx context.Context, text string) error
}

type UpdateKind string

const (
	KindMessage   UpdateKind = "message"
	KindSelection UpdateKind = "selection"
	KindContact   UpdateKind = "contact"
)

// Update is the tagged inbound event variant: a free-text message, a
// keyboard selection, or a shared contact.
type Update struct {
	Kind        UpdateKind
	RequesterID int64
	Name        string
	Handle      string
	Text        string // message text or selected option
	Phone       string // contact payload, set for KindContact
}

// UpdateSource yields inbound chat events. The concrete chat client is an
// external collaborator; the core only consumes this interface.
type UpdateSource interface {
	Updates(ctx context.Context) <-chan Update
}

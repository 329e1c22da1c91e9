package domain

// NotificationType is the broadcast type of a thanks notification.
type NotificationType string

const (
	NotificationThanks         NotificationType = "user-interest-thanks"
	NotificationThanksCreation NotificationType = "user-interest-thanks-creation"
	NotificationThanksEdit     NotificationType = "user-interest-thanks-edit"
	NotificationThanksLog      NotificationType = "user-interest-thanks-log"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationThanks, NotificationThanksCreation, NotificationThanksEdit, NotificationThanksLog:
		return true
	}
	return false
}

// NotificationTypeFor picks the broadcast type for a resolved event.
func NotificationTypeFor(e ContributionEvent) NotificationType {
	switch {
	case e.Kind == EventKindAction:
		return NotificationThanksLog
	case e.IsCreation:
		return NotificationThanksCreation
	default:
		return NotificationThanksEdit
	}
}

// NotificationParty is one side of a thanks.
type NotificationParty struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
}

// Notification is the payload handed to the transmission channel.
type Notification struct {
	Type       NotificationType  `json:"type"`
	Agent      NotificationParty `json:"agent"`
	Recipient  NotificationParty `json:"recipient"`
	TargetText string            `json:"targetText"`
	TargetURL  string            `json:"targetUrl"`
	ThanksKey  string            `json:"thanksKey"`
}

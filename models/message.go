package models

import "time"

// SystemSenderID is the reserved sender for automatically generated chat
// entries marking lifecycle events.
const SystemSenderID = "system"

// Message is one chat entry in a booking's thread. Append-only; IsRead is
// the only mutable field and is only ever set to true.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	SenderID  string    `bson:"sender_id" json:"senderId"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
}

// FromSystem reports whether the message was synthesized by the lifecycle
// engine rather than typed by a participant.
func (m Message) FromSystem() bool {
	return m.SenderID == SystemSenderID
}

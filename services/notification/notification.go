package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts to every websocket session on the hub.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type MessageBuilder struct {
	bookingID string
	region    string
	status    string
}

func NewMessageBuilder(bookingID, region, status string) *MessageBuilder {
	return &MessageBuilder{
		bookingID: bookingID,
		region:    region,
		status:    status,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("Booking %s in %s is %s.", b.bookingID, b.region, b.status)
}

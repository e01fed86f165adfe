package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Message is the wire form of an order event on the Kafka topic.
type Message struct {
	ID         string    `json:"id" validate:"required,uuid"`
	Type       string    `json:"type" validate:"required,oneof=insert update delete"`
	OrderID    string    `json:"order_id" validate:"required"`
	OwnerID    string    `json:"owner_id" validate:"required,uuid"`
	Status     string    `json:"status" validate:"required,oneof=pending picked-up in-process washing-complete delivered"`
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
}

func Encode(e entities.OrderEvent) ([]byte, error) {
	return json.Marshal(Message{
		ID:         e.ID.String(),
		Type:       string(e.Type),
		OrderID:    e.OrderID,
		OwnerID:    e.OwnerID.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt,
	})
}

// Decode parses and validates a message from the topic.
func Decode(data []byte) (entities.OrderEvent, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := validate.Struct(m); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("invalid event: %w", err)
	}

	status, err := entities.ParseStatus(m.Status)
	if err != nil {
		return entities.OrderEvent{}, err
	}
	return entities.OrderEvent{
		ID:         uuid.MustParse(m.ID),
		Type:       entities.OrderEventType(m.Type),
		OrderID:    m.OrderID,
		OwnerID:    uuid.MustParse(m.OwnerID),
		Status:     status,
		OccurredAt: m.OccurredAt,
	}, nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/config"
	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// owners is a small pool so student streams actually see some of the events
var owners = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

func randomEvent(now time.Time) entities.OrderEvent {
	statuses := entities.Statuses()
	order := entities.Order{
		ID:      fmt.Sprintf("ORD-%d-%04X", now.UnixMilli(), rand.Intn(0xFFFF)),
		OwnerID: owners[rand.Intn(len(owners))],
		Status:  statuses[rand.Intn(len(statuses))],
	}

	eventType := entities.OrderUpdated
	if order.Status == entities.StatusPending {
		eventType = entities.OrderInserted
	}
	return entities.NewOrderEvent(eventType, order, now)
}

func main() {
	godotenv.Load()
	conf := config.New()

	publisher := feed.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			event := randomEvent(time.Now())
			if err := publisher.Publish(ctx, event); err != nil {
				log.Println("failed to publish event:", err)
				continue
			}
			log.Println("event published", event.Type, event.OrderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}

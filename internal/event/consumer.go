package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"

	"github.com/rabbitmq/amqp091-go"
)

type EventConsumer struct {
	conn        *amqp091.Connection
	channel     *amqp091.Channel
	userRepo    *repository.UserRepository
	brandRepo   *repository.BrandRepository
	metricsRepo *repository.MetricsRepository
	queueName   string
	shutdown    chan struct{}
	wg          sync.WaitGroup
}

func NewEventConsumer(rabbitURI string, userRepo *repository.UserRepository, brandRepo *repository.BrandRepository, metricsRepo *repository.MetricsRepository) (*EventConsumer, error) {
	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := channel.Qos(10, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	// External user events published by the identity service.
	err = channel.ExchangeDeclare("user.events", "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare user.events exchange: %w", err)
	}

	// Our own exchange, consumed for metric bookkeeping on completion.
	err = channel.ExchangeDeclare("marketplace.events", "topic", true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare marketplace.events exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		"marketplace.service.events", // name
		true,                         // durable
		false,                        // delete when unused
		false,                        // exclusive
		false,                        // no-wait
		nil,                          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	bindings := []struct {
		exchange   string
		routingKey string
	}{
		{"user.events", "user.registered"},
		{"user.events", "user.profile.updated"},
		{"marketplace.events", string(models.EventTypeOrderCompleted)},
	}
	for _, b := range bindings {
		if err := channel.QueueBind(queue.Name, b.routingKey, b.exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue to %s with key %s: %w", b.exchange, b.routingKey, err)
		}
	}

	return &EventConsumer{
		conn:        conn,
		channel:     channel,
		userRepo:    userRepo,
		brandRepo:   brandRepo,
		metricsRepo: metricsRepo,
		queueName:   queue.Name,
		shutdown:    make(chan struct{}),
	}, nil
}

func (c *EventConsumer) Start() error {
	msgs, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		log.Printf("Event consumer started on queue: %s", c.queueName)
		for {
			select {
			case <-c.shutdown:
				log.Println("Event consumer shutting down")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Println("Event consumer channel closed")
					return
				}
				if err := c.handleMessage(msg); err != nil {
					log.Printf("Error handling message with routing key %s: %v", msg.RoutingKey, err)
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (c *EventConsumer) handleMessage(msg amqp091.Delivery) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch msg.RoutingKey {
	case "user.registered", "user.profile.updated":
		var event models.UserRegisterEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to unmarshal user event: %w", err)
		}
		if err := c.userRepo.UpsertFromRegistration(ctx, &event); err != nil {
			return fmt.Errorf("failed to upsert user %s: %w", event.UserID, err)
		}
		log.Printf("Synced user from event: %s", event.UserID)
		return nil

	case string(models.EventTypeOrderCompleted):
		var event models.MarketplaceEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to unmarshal order event: %w", err)
		}
		if event.UserID != "" {
			if err := c.brandRepo.IncrementMetric(ctx, event.UserID, "totalCampaigns", 1); err != nil {
				log.Printf("Failed to increment brand campaign count for %s: %v", event.UserID, err)
			}
		}
		creatorID, _ := event.Payload["creatorUserId"].(string)
		amount, _ := event.Payload["amount"].(float64)
		if creatorID != "" {
			if err := c.metricsRepo.RecordCompletedProject(ctx, creatorID, amount); err != nil {
				return fmt.Errorf("failed to record completed project for %s: %w", creatorID, err)
			}
		}
		return nil

	default:
		log.Printf("Ignoring message with unknown routing key: %s", msg.RoutingKey)
		return nil
	}
}

func (c *EventConsumer) Stop() {
	close(c.shutdown)
	c.wg.Wait()

	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	log.Println("Event consumer stopped")
}

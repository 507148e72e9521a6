package notificationqueue

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	// DLQ suffix follows the queue it shadows.
	DeadLetterSuffix = ".dlq"

	EventOrderConfirmed        = "order_confirmed"
	EventRegistrationCompleted = "registration_completed"
)

// notificationMessage is the envelope stored in RabbitMQ.
type notificationMessage struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type queueService struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

var (
	queueServiceInstance contracts.NotificationQueueService
	onceQueueService     sync.Once
	onceQueueServiceErr  error
)

// NewNotificationQueueService declares the durable notification queue plus its
// DLQ and enables publisher confirms.
func NewNotificationQueueService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.NotificationQueueService, error) {
	onceQueueService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			onceQueueServiceErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			onceQueueServiceErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName+DeadLetterSuffix,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			onceQueueServiceErr = err
			return
		}

		if err := ch.Confirm(false); err != nil {
			onceQueueServiceErr = err
			return
		}

		queueServiceInstance = &queueService{
			ch:        ch,
			log:       log,
			queueName: queueName,
			confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		}
	})
	return queueServiceInstance, onceQueueServiceErr
}

func (s *queueService) PublishOrderConfirmed(ctx context.Context, event *contracts.OrderConfirmedEvent) error {
	return s.publish(ctx, EventOrderConfirmed, event)
}

func (s *queueService) PublishRegistrationCompleted(ctx context.Context, event *contracts.RegistrationCompletedEvent) error {
	return s.publish(ctx, EventRegistrationCompleted, event)
}

func (s *queueService) publish(ctx context.Context, eventName string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("notificationQueue.publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String("event", eventName),
	)

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	body, err := json.Marshal(notificationMessage{Event: eventName, Payload: rawPayload})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}

	s.log.Info("notificationQueue.publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
		zap.String("event", eventName),
	)
	return nil
}

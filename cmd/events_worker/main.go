package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"user-directory/config"
	"user-directory/internal/application"
	"user-directory/pkg/helpers"
)

// Consumes user lifecycle events (user.created, user.banned) and writes them
// to the structured log. Stands in for a downstream audit/telemetry pipeline.
func main() {
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-events", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEventsQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var evt application.UserEvent
			if err := json.Unmarshal(msg.Body, &evt); err != nil {
				logger.WithError(err).Warn("bad event message")
				_ = msg.Nack(false, false)
				continue
			}
			logger.WithFields(logrus.Fields{
				"type":        evt.Type,
				"user_id":     evt.UserID,
				"reason":      evt.Reason,
				"occurred_at": evt.OccurredAt,
			}).Info("user event")
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("events worker consuming %s", cfg.RabbitMQEventsQueue)
	<-stop
	logger.Info("shutting down events worker")
	_ = ch.Close()
	<-done
}

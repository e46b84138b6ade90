package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"orderhub/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const kafkaSink = "kafka"

// ErrKafkaDisabled is returned by NewKafkaWriter when no broker is configured.
var ErrKafkaDisabled = errors.New("kafka disabled: no brokers configured")

// MessageWriter is the part of *kafka.Writer the notifier uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds a writer for topic from a comma-separated broker list.
// Messages with the same key land on the same partition.
func NewKafkaWriter(brokersCSV, topic string) (*kafka.Writer, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrKafkaDisabled
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}, nil
}

// KafkaNotifier publishes a StatusChangedEvent keyed by order id, so the events
// of one order stay in commit order on a single partition.
type KafkaNotifier struct {
	writer   MessageWriter
	logger   *slog.Logger
	recorder Recorder
}

func NewKafkaNotifier(writer MessageWriter, logger *slog.Logger, recorder Recorder) *KafkaNotifier {
	return &KafkaNotifier{
		writer:   writer,
		logger:   logger.With("component", "kafka-notifier"),
		recorder: recorderOrNoop(recorder),
	}
}

func (n *KafkaNotifier) NotifyStatusChange(ctx context.Context, o *order.Order, previous, current order.Status) {
	event := NewStatusChangedEvent(o, previous, current)
	if err := n.Publish(ctx, event); err != nil {
		n.recorder.Notification(kafkaSink, "error")
		n.logger.ErrorContext(ctx, "failed to publish status change",
			"order_id", event.OrderID,
			"event_id", event.EventID,
			"new_status", event.NewStatus,
			"error", err,
		)
		return
	}
	n.recorder.Notification(kafkaSink, "ok")
}

func (n *KafkaNotifier) Publish(ctx context.Context, event StatusChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

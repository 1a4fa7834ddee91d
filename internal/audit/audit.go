package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Event is an analysis-completion audit record published for the dashboard's
// audit trail. Publishing is best-effort; analysis never fails on it.
type Event struct {
	Type            string    `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
	RequestedDriver string    `json:"requested_driver,omitempty"`
	DriversAnalyzed int       `json:"drivers_analyzed"`
	AnomaliesFound  int       `json:"anomalies_found"`
}

// Sink receives audit events.
type Sink interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// NopSink discards all events. Used when no broker is configured and in tests.
type NopSink struct{}

func (NopSink) Publish(ctx context.Context, event Event) error { return nil }
func (NopSink) Close()                                         {}

// MQTTSink publishes audit events as JSON to an MQTT topic.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

// NewMQTTSink connects to the broker and returns a ready sink.
func NewMQTTSink(brokerURL, clientID, topic string) (*MQTTSink, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timed out for %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", err)
	}
	return &MQTTSink{client: client, topic: topic}, nil
}

// Publish sends the event at QoS 0. Delivery is not awaited beyond a short
// timeout; the caller treats failures as non-fatal.
func (s *MQTTSink) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	token := s.client.Publish(s.topic, 0, false, data)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("mqtt publish timed out")
	}
	return token.Error()
}

// Close disconnects from the broker.
func (s *MQTTSink) Close() {
	s.client.Disconnect(250)
}

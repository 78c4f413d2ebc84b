package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/jgoulah/gridreport/internal/config"
	"github.com/jgoulah/gridreport/pkg/models"
)

// Publisher sends measurements to an MQTT broker
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
}

// New connects to the configured MQTT broker
func New(mqttCfg config.MQTTConfig) (*Publisher, error) {
	if !mqttCfg.Enabled {
		return nil, fmt.Errorf("MQTT publishing is not enabled in config")
	}
	if mqttCfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	// Configure MQTT client options
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", mqttCfg.Broker))
	opts.SetClientID("gridreport")
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	if mqttCfg.Username != "" {
		opts.SetUsername(mqttCfg.Username)
	}
	if mqttCfg.Password != "" {
		opts.SetPassword(mqttCfg.Password)
	}

	// Create and connect client
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: mqttCfg.GetTopicPrefix(),
	}, nil
}

// measurementPayload is the JSON shape published per measurement
type measurementPayload struct {
	Timestamp      string  `json:"timestamp"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
	ProductionKWh  float64 `json:"production_kwh"`
	TemperatureC   float64 `json:"temperature_c"`
}

// Publish sends one measurement to <prefix>/measurement
func (p *Publisher) Publish(m models.Measurement) error {
	payload := measurementPayload{
		Timestamp:      m.Timestamp.Format(time.RFC3339),
		ConsumptionKWh: m.ConsumptionKWh,
		ProductionKWh:  m.ProductionKWh,
		TemperatureC:   m.TemperatureC,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	topic := fmt.Sprintf("%s/measurement", p.topicPrefix)
	if token := p.client.Publish(topic, 0, false, body); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}

	return nil
}

// Close disconnects from the MQTT broker
func (p *Publisher) Close() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}

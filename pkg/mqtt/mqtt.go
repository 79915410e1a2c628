// Package mqtt provides MQTT communication capabilities for the bot.
// The bot publishes moderation action events so external tooling (dashboards,
// audit collectors) can subscribe to them.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/logger"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher handles MQTT communication
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global MQTT publisher
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global MQTT publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher creates a new MQTT publisher
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{
		clientID: clientID,
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return p
}

// Destroy closes the MQTT connection
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	} else {
		logger.Warn("El cliente MQTT no estaba conectado, no se necesita cerrar.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (p *Publisher) IsConnected() bool {
	return p.client != nil && p.client.IsConnected()
}

// Publish sends a message to a topic
func (p *Publisher) Publish(topic string, payload interface{}) error {
	if !p.IsConnected() {
		return fmt.Errorf("mqtt no conectado")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := p.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

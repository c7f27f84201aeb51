package devnet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/models"
)

func TestBroker_SubscribeAndCancel(t *testing.T) {
	b := NewBroker(logger.Nop())

	events, cancel := b.Subscribe(models.EnvironmentDev, alice)
	assert.Equal(t, 1, b.Subscribers(models.EnvironmentDev, alice))

	cancel()
	cancel()

	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers(models.EnvironmentDev, alice))
}

func TestBroker_PublishIsScopedAndNonBlocking(t *testing.T) {
	b := NewBroker(logger.Nop())
	events, cancel := b.Subscribe(models.EnvironmentDev, alice)
	defer cancel()
	other, cancelOther := b.Subscribe(models.EnvironmentLocal, alice)
	defer cancelOther()

	// Overfill the buffer: Publish must never block.
	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(models.EnvironmentDev, alice, network.StreamEvent{Type: network.StreamEventConversation})
	}

	assert.Len(t, events, subscriberBuffer)
	assert.Len(t, other, 0)
}

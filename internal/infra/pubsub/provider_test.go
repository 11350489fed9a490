package pubsub

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher_NoProviderIsNoop(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}} {
		publisher, err := NewEventPublisher(newParams(t, cfg))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishShopOpened(context.Background(), &service.ShopOpenedEvent{ShopID: "x"}))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))

	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, want: "pubsub.localEndpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, want: "pubsub.projectId and pubsub.topicId"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, want: "pubsub.projectId and pubsub.topicId"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, want: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

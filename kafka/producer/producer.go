package producer

import (
	"context"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/sirupsen/logrus"
)

// Provider resolves a topic token to a message producer
type Provider func(token string) producer.MessageProducer

// ProviderImpl produces messages via the atlas-kafka producer, resolving
// topics from the environment and propagating tenant and span headers from
// the context.
func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) Provider {
	return func(ctx context.Context) Provider {
		return func(token string) producer.MessageProducer {
			return producer.Produce(l)(producer.WriterProvider(topic.EnvProvider(l)(token)))(producer.SpanHeaderDecorator(ctx), producer.TenantHeaderDecorator(ctx))
		}
	}
}

package consumer

import (
	"os"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/sirupsen/logrus"
)

type Config = consumer.Config

// NewConfig creates a consumer configuration, resolving the topic from the environment
func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) Config {
	return func(name string) func(token string) func(groupId string) Config {
		return func(token string) func(groupId string) Config {
			t, _ := topic.EnvProvider(l)(token)()
			return func(groupId string) Config {
				return consumer.NewConfig(LookupBrokers(), name, t, groupId)
			}
		}
	}
}

func LookupBrokers() []string {
	return []string{os.Getenv("BOOTSTRAP_SERVERS")}
}

package warrior

import (
	"context"
	"time"

	localConsumer "atlas-warriors/kafka/consumer"
	"atlas-warriors/kafka/message"
	warriorMsg "atlas-warriors/kafka/message/warrior"
	"atlas-warriors/kafka/producer"
	warriorService "atlas-warriors/warrior"
	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	kafka "github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewConfig creates a new consumer configuration for warrior commands
func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) consumer.Config {
	return localConsumer.NewConfig(l)
}

// InitHandlers initializes all warrior command handlers
func InitHandlers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) []handler.Handler {
	warriorProcessor := warriorService.NewProcessor(l, ctx, db)

	return []handler.Handler{
		kafka.AdaptHandler(kafka.PersistentConfig(handleMint(l, ctx, warriorProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleTrain(l, ctx, warriorProcessor))),
	}
}

// handleMint handles warrior mint commands
func handleMint(l logrus.FieldLogger, ctx context.Context, processor warriorService.Processor) kafka.Handler[warriorMsg.Command[warriorMsg.MintBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd warriorMsg.Command[warriorMsg.MintBody]) {
		l.WithFields(logrus.Fields{
			"type":        cmd.Type,
			"characterId": cmd.CharacterId,
		}).Debug("Processing warrior mint command")

		if cmd.Type != warriorMsg.CommandWarriorMint {
			return
		}

		transactionId := uuid.New()

		minted, err := processor.MintAndEmit(transactionId, cmd.CharacterId)
		if err != nil {
			l.WithError(err).WithField("characterId", cmd.CharacterId).Error("Failed to process warrior mint")

			errorProvider := warriorService.ErrorEventProvider(
				cmd.CharacterId,
				"MINT_FAILED",
				"WARRIOR_MINT_ERROR",
				err.Error(),
				"warrior_mint",
			)
			if emitErr := message.Emit(producer.ProviderImpl(l)(ctx))(func(buf *message.Buffer) error {
				return buf.Put(warriorMsg.EnvEventTopicStatus, errorProvider)
			}); emitErr != nil {
				l.WithError(emitErr).Error("Failed to emit error event for mint failure")
			}
			return
		}

		l.WithFields(logrus.Fields{
			"warriorId":   minted.Id(),
			"characterId": cmd.CharacterId,
		}).Info("Warrior mint processed successfully")
	}
}

// handleTrain handles warrior train commands
func handleTrain(l logrus.FieldLogger, ctx context.Context, processor warriorService.Processor) kafka.Handler[warriorMsg.Command[warriorMsg.TrainBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd warriorMsg.Command[warriorMsg.TrainBody]) {
		l.WithFields(logrus.Fields{
			"type":        cmd.Type,
			"characterId": cmd.CharacterId,
			"warriorId":   cmd.Body.WarriorId,
		}).Debug("Processing warrior train command")

		if cmd.Type != warriorMsg.CommandWarriorTrain {
			return
		}

		transactionId := uuid.New()

		trained, err := processor.TrainAndEmit(transactionId, cmd.Body.WarriorId, cmd.CharacterId, time.Now())
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"warriorId":   cmd.Body.WarriorId,
				"characterId": cmd.CharacterId,
			}).Error("Failed to process warrior train")

			errorProvider := warriorService.ErrorEventProvider(
				cmd.CharacterId,
				"TRAIN_FAILED",
				"WARRIOR_TRAIN_ERROR",
				err.Error(),
				"warrior_train",
			)
			if emitErr := message.Emit(producer.ProviderImpl(l)(ctx))(func(buf *message.Buffer) error {
				return buf.Put(warriorMsg.EnvEventTopicStatus, errorProvider)
			}); emitErr != nil {
				l.WithError(emitErr).Error("Failed to emit error event for train failure")
			}
			return
		}

		l.WithFields(logrus.Fields{
			"warriorId":   trained.Id(),
			"characterId": cmd.CharacterId,
			"level":       trained.Level(),
		}).Info("Warrior train processed successfully")
	}
}

// InitConsumers initializes the warrior command consumers
func InitConsumers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			config := NewConfig(l)("warrior_commands")(warriorMsg.EnvCommandTopic)(consumerGroupId)

			rf(config,
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser),
			)
		}
	}
}

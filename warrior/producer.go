package warrior

import (
	"time"

	warriorMsg "atlas-warriors/kafka/message/warrior"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// CreatedEventProvider creates a provider for warrior created events
func CreatedEventProvider(warriorId uint32, ownerId uint32, createdAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &warriorMsg.Event[warriorMsg.CreatedBody]{
		CharacterId: ownerId,
		Type:        warriorMsg.EventWarriorCreated,
		Body: warriorMsg.CreatedBody{
			WarriorId: warriorId,
			OwnerId:   ownerId,
			CreatedAt: createdAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// TrainedEventProvider creates a provider for warrior trained events
func TrainedEventProvider(w Warrior, ownerId uint32, trainedAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &warriorMsg.Event[warriorMsg.TrainedBody]{
		CharacterId: ownerId,
		Type:        warriorMsg.EventWarriorTrained,
		Body: warriorMsg.TrainedBody{
			WarriorId: w.Id(),
			OwnerId:   ownerId,
			Level:     w.Level(),
			Health:    w.Health(),
			Strength:  w.Strength(),
			Speed:     w.Speed(),
			TrainedAt: trainedAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// ErrorEventProvider creates a provider for warrior error events
func ErrorEventProvider(characterId uint32, errorType string, errorCode string, message string, context string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &warriorMsg.Event[warriorMsg.ErrorBody]{
		CharacterId: characterId,
		Type:        warriorMsg.EventWarriorError,
		Body: warriorMsg.ErrorBody{
			ErrorType:   errorType,
			ErrorCode:   errorCode,
			Message:     message,
			CharacterId: characterId,
			Context:     context,
			Timestamp:   time.Now(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

package warrior

import (
	"encoding/json"
	"testing"
	"time"

	warriorMsg "atlas-warriors/kafka/message/warrior"

	"github.com/google/uuid"
)

func TestCreatedEventProvider(t *testing.T) {
	createdAt := time.Unix(1700000000, 0)

	messages, err := CreatedEventProvider(1, 100, createdAt)()
	if err != nil {
		t.Fatalf("Provider failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	var event warriorMsg.Event[warriorMsg.CreatedBody]
	if err := json.Unmarshal(messages[0].Value, &event); err != nil {
		t.Fatalf("Failed to unmarshal event: %v", err)
	}

	if event.Type != warriorMsg.EventWarriorCreated {
		t.Errorf("Expected type %s, got %s", warriorMsg.EventWarriorCreated, event.Type)
	}
	if event.CharacterId != 100 {
		t.Errorf("Expected characterId 100, got %d", event.CharacterId)
	}
	if event.Body.WarriorId != 1 || event.Body.OwnerId != 100 {
		t.Errorf("Unexpected event body: %+v", event.Body)
	}
}

func TestTrainedEventProvider(t *testing.T) {
	trainedAt := time.Unix(1700000000, 0)
	warrior, err := NewBuilder(uuid.New()).
		SetId(1).
		SetLevel(1).
		SetHealth(14).
		SetStrength(8).
		SetSpeed(4).
		Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	messages, err := TrainedEventProvider(warrior, 100, trainedAt)()
	if err != nil {
		t.Fatalf("Provider failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	var event warriorMsg.Event[warriorMsg.TrainedBody]
	if err := json.Unmarshal(messages[0].Value, &event); err != nil {
		t.Fatalf("Failed to unmarshal event: %v", err)
	}

	if event.Type != warriorMsg.EventWarriorTrained {
		t.Errorf("Expected type %s, got %s", warriorMsg.EventWarriorTrained, event.Type)
	}
	if event.Body.WarriorId != 1 || event.Body.Level != 1 ||
		event.Body.Health != 14 || event.Body.Strength != 8 || event.Body.Speed != 4 {
		t.Errorf("Unexpected event body: %+v", event.Body)
	}
}

func TestErrorEventProvider(t *testing.T) {
	messages, err := ErrorEventProvider(100, "TRAIN_FAILED", "WARRIOR_TRAIN_ERROR", "caller does not own warrior", "warrior_train")()
	if err != nil {
		t.Fatalf("Provider failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	var event warriorMsg.Event[warriorMsg.ErrorBody]
	if err := json.Unmarshal(messages[0].Value, &event); err != nil {
		t.Fatalf("Failed to unmarshal event: %v", err)
	}

	if event.Type != warriorMsg.EventWarriorError {
		t.Errorf("Expected type %s, got %s", warriorMsg.EventWarriorError, event.Type)
	}
	if event.Body.ErrorType != "TRAIN_FAILED" || event.Body.ErrorCode != "WARRIOR_TRAIN_ERROR" {
		t.Errorf("Unexpected event body: %+v", event.Body)
	}
	if event.Body.Context != "warrior_train" {
		t.Errorf("Expected context 'warrior_train', got '%s'", event.Body.Context)
	}
}

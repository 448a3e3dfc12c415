package warrior

import (
	"time"
)

// Topic environment variable names
const (
	EnvCommandTopic     = "COMMAND_TOPIC_WARRIOR"
	EnvEventTopicStatus = "EVENT_TOPIC_WARRIOR_STATUS"
)

// Command Types
const (
	CommandWarriorMint  = "MINT"
	CommandWarriorTrain = "TRAIN"
)

// Event Types
const (
	EventWarriorCreated = "CREATED"
	EventWarriorTrained = "TRAINED"
	EventWarriorError   = "ERROR"
)

// Generic command structure
type Command[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

// Generic event structure
type Event[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

// Command Bodies

// MintBody represents the body of a warrior mint command
type MintBody struct {
}

// TrainBody represents the body of a warrior train command
type TrainBody struct {
	WarriorId uint32 `json:"warriorId"`
}

// Event Bodies

// CreatedBody represents the body of a warrior created event
type CreatedBody struct {
	WarriorId uint32    `json:"warriorId"`
	OwnerId   uint32    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrainedBody represents the body of a warrior trained event
type TrainedBody struct {
	WarriorId uint32    `json:"warriorId"`
	OwnerId   uint32    `json:"ownerId"`
	Level     uint32    `json:"level"`
	Health    uint32    `json:"health"`
	Strength  uint32    `json:"strength"`
	Speed     uint32    `json:"speed"`
	TrainedAt time.Time `json:"trainedAt"`
}

// ErrorBody represents the body of a warrior error event
type ErrorBody struct {
	ErrorType   string    `json:"errorType"`
	ErrorCode   string    `json:"errorCode"`
	Message     string    `json:"message"`
	CharacterId uint32    `json:"characterId"`
	Context     string    `json:"context"`
	Timestamp   time.Time `json:"timestamp"`
}

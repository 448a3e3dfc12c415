package warrior

import (
	"strconv"
	"time"
)

// RestWarrior represents the REST API model for warrior stat records
type RestWarrior struct {
	Id        uint32    `json:"id"`
	Level     uint32    `json:"level"`
	Health    uint32    `json:"health"`
	Strength  uint32    `json:"strength"`
	Speed     uint32    `json:"speed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RestWarriorURI represents the stored metadata reference for a warrior
type RestWarriorURI struct {
	Id  uint32 `json:"id"`
	URI string `json:"uri"`
}

// RestMintRequest is the request body for minting a warrior
type RestMintRequest struct {
	CharacterId uint32 `json:"characterId"`
}

// RestTrainRequest is the request body for training a warrior
type RestTrainRequest struct {
	CharacterId uint32 `json:"characterId"`
}

// GetType returns the JSON:API resource type for warrior
func (r RestWarrior) GetType() string {
	return "warrior"
}

// GetID returns the JSON:API resource ID for warrior
func (r RestWarrior) GetID() string {
	return strconv.Itoa(int(r.Id))
}

// GetType returns the JSON:API resource type for warrior URI
func (r RestWarriorURI) GetType() string {
	return "warrior-uri"
}

// GetID returns the JSON:API resource ID for warrior URI
func (r RestWarriorURI) GetID() string {
	return strconv.Itoa(int(r.Id))
}

// TransformWarrior converts a domain Warrior model to REST representation
func TransformWarrior(w Warrior) (RestWarrior, error) {
	return RestWarrior{
		Id:        w.Id(),
		Level:     w.Level(),
		Health:    w.Health(),
		Strength:  w.Strength(),
		Speed:     w.Speed(),
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
	}, nil
}

// TransformWarriorURI produces the REST representation of a stored metadata reference
func TransformWarriorURI(warriorId uint32, uri string) (RestWarriorURI, error) {
	return RestWarriorURI{
		Id:  warriorId,
		URI: uri,
	}, nil
}

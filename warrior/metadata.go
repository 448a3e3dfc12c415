package warrior

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Data URI prefixes for the embedded artifacts
const (
	ImageURIPrefix    = "data:image/svg+xml;base64,"
	MetadataURIPrefix = "data:application/json;base64,"
)

// Attribute is a single trait entry in the metadata document
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Metadata is the structured description of a warrior's current state.
// Field order is significant: serialization follows declaration order, which
// keeps the encoded document reproducible byte for byte.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes,omitempty"`
}

// BuildMetadata renders the warrior's image, embeds it in a metadata
// document, and encodes the document as a binary-safe data URI. The result
// is a pure function of the warrior id and its present stats.
func BuildMetadata(warriorId uint32, w Warrior, mode StatMode) (string, error) {
	svg := Render(w)
	imageURI := ImageURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg))

	m := Metadata{
		Name:        fmt.Sprintf("Chain Battles #%d", warriorId),
		Description: "Battles on chain",
		Image:       imageURI,
	}

	if mode == StatModeFull {
		m.Attributes = []Attribute{
			{TraitType: "health", Value: strconv.FormatUint(uint64(w.Health()), 10)},
			{TraitType: "strength", Value: strconv.FormatUint(uint64(w.Strength()), 10)},
			{TraitType: "speed", Value: strconv.FormatUint(uint64(w.Speed()), 10)},
		}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	return MetadataURIPrefix + base64.StdEncoding.EncodeToString(data), nil
}

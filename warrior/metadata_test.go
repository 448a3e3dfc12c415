package warrior

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// decodeMetadataURI strips the data URI prefix and decodes the embedded
// metadata document
func decodeMetadataURI(t *testing.T, uri string) Metadata {
	t.Helper()

	if !strings.HasPrefix(uri, MetadataURIPrefix) {
		t.Fatalf("Expected metadata URI prefix, got: %s", uri)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, MetadataURIPrefix))
	if err != nil {
		t.Fatalf("Failed to decode metadata payload: %v", err)
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Failed to unmarshal metadata document: %v", err)
	}

	return m
}

func TestBuildMetadataForFreshMint(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	uri, err := BuildMetadata(1, warrior, StatModeFull)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}

	m := decodeMetadataURI(t, uri)

	if m.Name != "Chain Battles #1" {
		t.Errorf("Expected name 'Chain Battles #1', got '%s'", m.Name)
	}
	if m.Description != "Battles on chain" {
		t.Errorf("Expected description 'Battles on chain', got '%s'", m.Description)
	}

	if !strings.HasPrefix(m.Image, ImageURIPrefix) {
		t.Fatalf("Expected image URI prefix, got: %s", m.Image)
	}
	svg, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(m.Image, ImageURIPrefix))
	if err != nil {
		t.Fatalf("Failed to decode image payload: %v", err)
	}
	if !strings.Contains(string(svg), "Levels: 0") {
		t.Errorf("Expected embedded image to show the baseline level, got: %s", svg)
	}

	expected := []Attribute{
		{TraitType: "health", Value: "10"},
		{TraitType: "strength", Value: "6"},
		{TraitType: "speed", Value: "3"},
	}
	if len(m.Attributes) != len(expected) {
		t.Fatalf("Expected %d attributes, got %d", len(expected), len(m.Attributes))
	}
	for i, attr := range expected {
		if m.Attributes[i] != attr {
			t.Errorf("Attribute %d: expected %+v, got %+v", i, attr, m.Attributes[i])
		}
	}
}

func TestBuildMetadataFieldOrder(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	uri, err := BuildMetadata(1, warrior, StatModeFull)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, MetadataURIPrefix))
	if err != nil {
		t.Fatalf("Failed to decode metadata payload: %v", err)
	}

	doc := string(data)
	nameIdx := strings.Index(doc, `"name"`)
	descIdx := strings.Index(doc, `"description"`)
	imageIdx := strings.Index(doc, `"image"`)
	attrIdx := strings.Index(doc, `"attributes"`)

	if nameIdx < 0 || descIdx < 0 || imageIdx < 0 || attrIdx < 0 {
		t.Fatalf("Expected all four top-level keys, got: %s", doc)
	}
	if !(nameIdx < descIdx && descIdx < imageIdx && imageIdx < attrIdx) {
		t.Errorf("Expected declaration-order serialization, got: %s", doc)
	}
}

func TestBuildMetadataLevelOnlyOmitsAttributes(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	uri, err := BuildMetadata(1, warrior, StatModeLevelOnly)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}

	m := decodeMetadataURI(t, uri)
	if m.Attributes != nil {
		t.Errorf("Expected no attributes in the level-only shape, got: %+v", m.Attributes)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, MetadataURIPrefix))
	if err != nil {
		t.Fatalf("Failed to decode metadata payload: %v", err)
	}
	if strings.Contains(string(data), "attributes") {
		t.Errorf("Expected attributes key to be omitted entirely, got: %s", data)
	}
}

func TestBuildMetadataIsReproducible(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(7).SetLevel(2).SetHealth(14).SetStrength(9).SetSpeed(4).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	first, err := BuildMetadata(7, warrior, StatModeFull)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}
	second, err := BuildMetadata(7, warrior, StatModeFull)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}

	if first != second {
		t.Error("Expected identical records to encode byte-identical URIs")
	}
}

func TestBuildMetadataReflectsTrainedStats(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(3).SetLevel(4).SetHealth(21).SetStrength(10).SetSpeed(5).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	uri, err := BuildMetadata(3, warrior, StatModeFull)
	if err != nil {
		t.Fatalf("BuildMetadata failed: %v", err)
	}

	m := decodeMetadataURI(t, uri)
	if m.Name != "Chain Battles #3" {
		t.Errorf("Expected name 'Chain Battles #3', got '%s'", m.Name)
	}

	values := map[string]string{}
	for _, attr := range m.Attributes {
		values[attr.TraitType] = attr.Value
	}
	if values["health"] != "21" || values["strength"] != "10" || values["speed"] != "5" {
		t.Errorf("Expected trained stat values as decimal strings, got: %+v", values)
	}

	svg, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(m.Image, ImageURIPrefix))
	if err != nil {
		t.Fatalf("Failed to decode image payload: %v", err)
	}
	if !strings.Contains(string(svg), "Levels: 4") {
		t.Errorf("Expected embedded image to show level 4, got: %s", svg)
	}
}

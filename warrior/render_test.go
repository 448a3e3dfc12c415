package warrior

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRenderContainsLevelLine(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).SetLevel(5).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	svg := Render(warrior)

	if !strings.Contains(svg, ">Warrior<") {
		t.Error("Expected rendered document to contain the Warrior title")
	}
	if !strings.Contains(svg, ">Levels: 5<") {
		t.Errorf("Expected rendered document to contain 'Levels: 5', got: %s", svg)
	}
}

func TestRenderDocumentStructure(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	svg := Render(warrior)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("Expected document to open with the svg element")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("Expected document to close the svg element")
	}
	if !strings.Contains(svg, `viewBox="0 0 350 350"`) {
		t.Error("Expected the fixed 350x350 view box")
	}
	if !strings.Contains(svg, `fill="black"`) {
		t.Error("Expected the black background rect")
	}
	if strings.Contains(svg, "%%") {
		t.Error("Expected no unexpanded format escapes in the document")
	}
}

func TestRenderIsReproducible(t *testing.T) {
	warrior, err := NewBuilder(uuid.New()).SetId(1).SetLevel(3).Build()
	if err != nil {
		t.Fatalf("Failed to build warrior: %v", err)
	}

	first := Render(warrior)
	second := Render(warrior)

	if first != second {
		t.Error("Expected identical records to render byte-identical documents")
	}
}

func TestRenderCardEscapesMarkup(t *testing.T) {
	svg := RenderCard(`<b>&"bold"</b>`, "Levels: 'one'")

	if strings.Contains(svg, "<b>") {
		t.Error("Expected markup in the title to be escaped")
	}
	if !strings.Contains(svg, "&lt;b&gt;&amp;&quot;bold&quot;&lt;/b&gt;") {
		t.Errorf("Expected escaped title, got: %s", svg)
	}
	if !strings.Contains(svg, "Levels: &apos;one&apos;") {
		t.Errorf("Expected escaped subtitle, got: %s", svg)
	}
}

package warrior

import (
	"fmt"
	"strconv"
	"strings"
)

const imageTemplate = `<svg xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMinYMin meet" viewBox="0 0 350 350"><style>.base { fill: white; font-family: serif; font-size: 14px; }</style><rect width="100%%" height="100%%" fill="black" /><text x="50%%" y="40%%" class="base" dominant-baseline="middle" text-anchor="middle">%s</text><text x="50%%" y="50%%" class="base" dominant-baseline="middle" text-anchor="middle">%s</text></svg>`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Render produces the vector image document for a warrior stat record. The
// output is a pure function of the warrior level; identical records render
// byte-identical documents.
func Render(w Warrior) string {
	return RenderCard("Warrior", "Levels: "+strconv.FormatUint(uint64(w.Level()), 10))
}

// RenderCard produces the fixed 350x350 card layout with the given title and
// subtitle lines. Both lines are XML-escaped, so callers may pass arbitrary
// text without breaking the document structure.
func RenderCard(title string, subtitle string) string {
	return fmt.Sprintf(imageTemplate, xmlEscaper.Replace(title), xmlEscaper.Replace(subtitle))
}

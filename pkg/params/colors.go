package params

import (
	"fmt"
	"strings"
)

// Palette is the set of colors the viewer cycles through.
var Palette = []string{
	"#9C2C77",
	"#FD841F",
	"#ff4040",
	"#3E6D9C",
	"#2E7D32",
	"#5D4037",
	"#F2C94C",
	"#000000",
}

// NextColor returns the Palette entry after current, or the first entry if
// current is not in the Palette.
func NextColor(current string) string {
	for i, c := range Palette {
		if strings.EqualFold(c, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

// CycleColor moves the named color parameter, such as "color_leaf", to the
// next Palette entry and returns it.
func (p *Params) CycleColor(name string) (string, error) {
	for _, c := range colors(p) {
		if c.name == name {
			*c.value = NextColor(*c.value)
			return *c.value, nil
		}
	}
	return "", fmt.Errorf("unknown color parameter %q", name)
}

// Color returns the named color parameter.
func (p *Params) Color(name string) string {
	for _, c := range colors(p) {
		if c.name == name {
			return *c.value
		}
	}
	return ""
}

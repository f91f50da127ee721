// Package namedcolors holds the CSS named-color keywords.
//
// The table is the SVG 1.1 set from golang.org/x/image/colornames extended
// with the two keywords CSS added afterwards, transparent and rebeccapurple.
// It is built once at init and never written again, so concurrent lookups
// need no locking.
package namedcolors

import (
	"image/color"
	"sort"

	"golang.org/x/image/colornames"
)

var (
	table map[string]color.RGBA
	// names is every keyword in alphabetical order.
	names []string
	// byColor maps a color to its alphabetically first keyword.
	byColor map[color.RGBA]string
)

func init() {
	table = make(map[string]color.RGBA, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		table[name] = c
	}
	table["transparent"] = color.RGBA{0x00, 0x00, 0x00, 0x00}
	table["rebeccapurple"] = color.RGBA{0x66, 0x33, 0x99, 0xff}

	names = make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	byColor = make(map[color.RGBA]string, len(names))
	for _, name := range names {
		if _, ok := byColor[table[name]]; !ok {
			byColor[table[name]] = name
		}
	}
}

// Lookup returns the color named by a lowercase keyword.
func Lookup(name string) (color.RGBA, bool) {
	c, ok := table[name]
	return c, ok
}

// Names returns every keyword in alphabetical order. The slice is a copy.
func Names() []string {
	return append([]string(nil), names...)
}

// NameOf returns the first keyword, alphabetically, whose color equals c.
func NameOf(c color.RGBA) (string, bool) {
	name, ok := byColor[c]
	return name, ok
}

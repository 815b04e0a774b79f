// Package tilemapping holds the tile enumerations of the game along with the
// pool of undrawn tiles and the players' hands.
package tilemapping

import (
	"fmt"
	"strings"
)

// Color is the color printed on a tile.
type Color uint8

// Shape is the shape printed on a tile.
type Shape uint8

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

const (
	Circle Shape = iota
	Clover
	Diamond
	Square
	Starburst
	X
)

const (
	// NumColors is the number of Color values.
	NumColors = 6
	// NumShapes is the number of Shape values.
	NumShapes = 6
	// NumTiles is the number of distinct tile kinds.
	NumTiles = NumColors * NumShapes
)

var colorNames = [NumColors]string{"red", "orange", "yellow", "green", "blue", "purple"}
var shapeNames = [NumShapes]string{"circle", "clover", "diamond", "square", "starburst", "x"}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (s Shape) String() string {
	if int(s) < NumShapes {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Tile is the atomic playable unit. Tiles are compared by value.
type Tile struct {
	Color Color
	Shape Shape
}

func (t Tile) String() string {
	return t.Color.String() + "-" + t.Shape.String()
}

// Colors returns every color in order.
func Colors() [NumColors]Color {
	return [NumColors]Color{Red, Orange, Yellow, Green, Blue, Purple}
}

// Shapes returns every shape in order.
func Shapes() [NumShapes]Shape {
	return [NumShapes]Shape{Circle, Clover, Diamond, Square, Starburst, X}
}

// Tiles returns every tile kind, color-major.
func Tiles() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	idx := 0
	for _, c := range Colors() {
		for _, s := range Shapes() {
			tiles[idx] = Tile{Color: c, Shape: s}
			idx++
		}
	}
	return tiles
}

// ParseTile parses the user-visible form of a tile, e.g. "red-x" or
// "Blue-Starburst".
func ParseTile(s string) (Tile, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "-", 2)
	if len(parts) != 2 {
		return Tile{}, fmt.Errorf("tile %q must look like <color>-<shape>", s)
	}
	t := Tile{}
	found := false
	for i, n := range colorNames {
		if n == parts[0] {
			t.Color = Color(i)
			found = true
			break
		}
	}
	if !found {
		return Tile{}, fmt.Errorf("unknown color %q", parts[0])
	}
	found = false
	for i, n := range shapeNames {
		if n == parts[1] {
			t.Shape = Shape(i)
			found = true
			break
		}
	}
	if !found {
		return Tile{}, fmt.Errorf("unknown shape %q", parts[1])
	}
	return t, nil
}

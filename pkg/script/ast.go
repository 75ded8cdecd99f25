package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed gesture script: one command per line, blank lines and
// comments allowed.
type Script struct {
	Commands []*Command `( @@? EOL )*`
}

// Command is a single script line. Exactly one field is set.
type Command struct {
	Pos lexer.Position

	View    *View    `  @@`
	Place   *Place   `| @@`
	Wire    *Segment `| KwWire @@`
	Drag    *Segment `| KwDrag @@`
	Press   *Pointer `| KwPress @@`
	Move    *Point   `| KwMove @@`
	Release *Pointer `| KwRelease @@`
	Click   *Pointer `| KwClick @@`
	Select  *Select  `| @@`
	Rotate  bool     `| @KwRotate`
	Delete  bool     `| @KwDelete`
	Cut     bool     `| @KwCut`
	Copy    bool     `| @KwCopy`
	Paste   *Point   `| KwPaste @@`
	Abort   bool     `| @KwAbort`
	Label   bool     `| @KwLabel`
	Set     *Set     `| @@`
}

// View sets the viewport.
// Example: view 0 0 2
type View struct {
	X     float64 `KwView @Number`
	Y     float64 `@Number`
	Scale float64 `@Number`
}

// Place takes a part from the parts bin and drops it.
// Example: place resistor 40 0 rot 1 r=330 name=R1
type Place struct {
	Kind  string   `KwPlace @Ident`
	X     float64  `@Number`
	Y     float64  `@Number`
	Rot   int      `( KwRot @Number )?`
	Props []string `@Prop*`
}

// Point is a schematic coordinate.
type Point struct {
	X float64 `@Number`
	Y float64 `@Number`
}

// Pointer is a coordinate with the state of the shift key.
type Pointer struct {
	X     float64 `@Number`
	Y     float64 `@Number`
	Shift bool    `@KwShift?`
}

// Segment runs from one coordinate to another.
// Example: 0 0 to 40 0
type Segment struct {
	X1 float64 `@Number`
	Y1 float64 `@Number`
	X2 float64 `KwTo @Number`
	Y2 float64 `@Number`
}

// Select selects everything touching a rectangle.
// Example: select -8 -8 64 64 shift
type Select struct {
	X1    float64 `KwSelect @Number`
	Y1    float64 `@Number`
	X2    float64 `@Number`
	Y2    float64 `@Number`
	Shift bool    `@KwShift?`
}

// Set assigns properties on the selection.
// Example: set r=1k
type Set struct {
	Props []string `KwSet @Prop+`
}

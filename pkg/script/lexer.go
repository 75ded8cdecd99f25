package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the tokens of the gesture script language. Statements are
// line oriented, so newlines are significant; keywords are
// case-insensitive.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "EOL", Pattern: `\n`},

	// key=value, the value optionally quoted
	{Name: "Prop", Pattern: `[A-Za-z_][A-Za-z0-9_.]*=(?:"(?:[^"\\]|\\.)*"|[^\s#"]*)`},

	// View and placement
	{Name: "KwView", Pattern: `(?i)\bview\b`},
	{Name: "KwPlace", Pattern: `(?i)\bplace\b`},
	{Name: "KwRot", Pattern: `(?i)\brot\b`},
	{Name: "KwWire", Pattern: `(?i)\bwire\b`},
	{Name: "KwTo", Pattern: `(?i)\bto\b`},

	// Pointer gestures
	{Name: "KwPress", Pattern: `(?i)\bpress\b`},
	{Name: "KwMove", Pattern: `(?i)\bmove\b`},
	{Name: "KwRelease", Pattern: `(?i)\brelease\b`},
	{Name: "KwClick", Pattern: `(?i)\bclick\b`},
	{Name: "KwDrag", Pattern: `(?i)\bdrag\b`},
	{Name: "KwSelect", Pattern: `(?i)\bselect\b`},
	{Name: "KwShift", Pattern: `(?i)\bshift\b`},

	// Editing commands
	{Name: "KwRotate", Pattern: `(?i)\brotate\b`},
	{Name: "KwDelete", Pattern: `(?i)\bdelete\b`},
	{Name: "KwCut", Pattern: `(?i)\bcut\b`},
	{Name: "KwCopy", Pattern: `(?i)\bcopy\b`},
	{Name: "KwPaste", Pattern: `(?i)\bpaste\b`},
	{Name: "KwAbort", Pattern: `(?i)\babort\b`},
	{Name: "KwLabel", Pattern: `(?i)\blabel\b`},
	{Name: "KwSet", Pattern: `(?i)\bset\b`},

	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`},

	// Identifiers (must come after keywords); kind names may contain '-'
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\-]*`},
})

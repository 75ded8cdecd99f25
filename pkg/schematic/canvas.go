package schematic

// Align is the anchor of a text string: which of its nine reference points
// (corners, edge midpoints and centre) sits at the given coordinate.
type Align int

const (
	AlignTopLeft Align = iota
	AlignTop
	AlignTopRight
	AlignLeft
	AlignCenter
	AlignRight
	AlignBottomLeft
	AlignBottom
	AlignBottomRight
)

// Horizontal returns the anchor fraction along x: 0 left, 0.5 centre, 1 right.
func (a Align) Horizontal() float64 { return float64(a%3) / 2 }

// Vertical returns the anchor fraction along y: 0 top, 0.5 middle, 1 bottom.
func (a Align) Vertical() float64 { return float64(a/3) / 2 }

// PropertySize is the text size used for property annotations.
const PropertySize = 5

// Canvas receives the drawing commands of a component in absolute schematic
// coordinates. Angles are in radians measured from +x; since y grows
// downwards an arc sweeps clockwise on screen from start to end.
type Canvas interface {
	Line(x1, y1, x2, y2 float64, selected bool)
	Circle(x, y, r float64, filled, selected bool)
	Arc(x, y, r, start, end float64, selected bool)
	Text(s string, x, y float64, align Align, size float64, selected bool)
}

// textOrient maps a component rotation and a local alignment to the
// alignment on screen, so labels stay upright while hugging the same side
// of the symbol.
var textOrient = [8][9]Align{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // north
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // east
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // south
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // west
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // mirrored north
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // mirrored east
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // mirrored south
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // mirrored west
}

func (b *Base) abs(x, y float64) (float64, float64) {
	rx, ry := b.rot.ApplyF(x, y)
	return rx + float64(b.pos.X), ry + float64(b.pos.Y)
}

func (b *Base) line(c Canvas, x1, y1, x2, y2 float64) {
	ax, ay := b.abs(x1, y1)
	bx, by := b.abs(x2, y2)
	c.Line(ax, ay, bx, by, b.selected)
}

func (b *Base) circle(c Canvas, x, y, r float64, filled bool) {
	ax, ay := b.abs(x, y)
	c.Circle(ax, ay, r, filled, b.selected)
}

func (b *Base) arc(c Canvas, x, y, r, start, end float64) {
	ax, ay := b.abs(x, y)
	turn := b.rot.Angle()
	c.Arc(ax, ay, r, start+turn, end+turn, b.selected)
}

func (b *Base) text(c Canvas, s string, x, y float64, align Align) {
	ax, ay := b.abs(x, y)
	c.Text(s, ax, ay, textOrient[b.rot][align], PropertySize, b.selected)
}

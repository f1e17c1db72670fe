package im2row

// floorDivide rounds a/b toward negative infinity. b must be positive.
func floorDivide(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return (a - b + 1) / b
}

// ceilDivide rounds a/b toward positive infinity. b must be positive.
func ceilDivide(a, b int) int {
	if a >= 0 {
		return (a + b - 1) / b
	}
	return a / b
}

// rowSpan is the window offset of one patch matrix row together with the
// rectangle of patches [x0,x1) x [y0,y1) whose sample lies inside the tensor.
//
// For patch (x, y) the sample is at
//
//	xData = x*StrideX + u*DilateX - PadLeft
//	yData = y*StrideY + v*DilateY - PadTop
//
// and 0 <= xData < Width holds exactly for x0 <= x < x1.
type rowSpan struct {
	u, v, z int
	x0, x1  int
	y0, y1  int
}

// rawSpan computes the unclamped bounds. x0 can be negative, and x1 can be
// smaller than x0 when the offset never lands inside the tensor.
func (l *Layout) rawSpan(row int) rowSpan {
	g := &l.Geometry
	u := row % g.WindowWidth
	v := (row / g.WindowWidth) % g.WindowHeight
	z := row / (g.WindowWidth * g.WindowHeight)

	offX := g.PadLeft - u*g.DilateX
	offY := g.PadTop - v*g.DilateY
	return rowSpan{
		u: u, v: v, z: z,
		x0: min(l.NumPatchesX, ceilDivide(offX, g.StrideX)),
		x1: min(l.NumPatchesX, floorDivide(l.Shape.Width+offX-1, g.StrideX)+1),
		y0: min(l.NumPatchesY, ceilDivide(offY, g.StrideY)),
		y1: min(l.NumPatchesY, floorDivide(l.Shape.Height+offY-1, g.StrideY)+1),
	}
}

// span returns the bounds clamped so that 0 <= x0 <= x1 <= NumPatchesX and
// likewise for y. If either range is empty the row is entirely padding and
// both ranges are collapsed to [0,0), so origin is never evaluated for it.
func (l *Layout) span(row int) rowSpan {
	s := l.rawSpan(row)
	s.x0 = max(0, s.x0)
	s.x1 = max(s.x0, s.x1)
	s.y0 = max(0, s.y0)
	s.y1 = max(s.y0, s.y1)
	if s.x0 == s.x1 || s.y0 == s.y1 {
		s.x0, s.x1, s.y0, s.y1 = 0, 0, 0, 0
	}
	return s
}

// origin returns the flat tensor index sampled by patch (x0, y) of the row.
func (l *Layout) origin(s *rowSpan, y int) int {
	g := &l.Geometry
	xData := s.x0*g.StrideX + s.u*g.DilateX - g.PadLeft
	yData := y*g.StrideY + s.v*g.DilateY - g.PadTop
	return l.Shape.Index(xData, yData, s.z)
}

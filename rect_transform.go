package flexrect

// Translate shifts all four corners by (dx, dy).
func (r *Rect[T]) Translate(dx, dy float64) {
	for i := range 4 {
		r.X[i] += dx
		r.Y[i] += dy
	}
}

// Transform applies m to all four corners.
func (r *Rect[T]) Transform(m Matrix) {
	if m.IsTranslation() {
		r.Translate(m.C, m.F)
		return
	}
	for i := range 4 {
		p := m.TransformPoint(Point{X: r.X[i], Y: r.Y[i]})
		r.X[i], r.Y[i] = p.X, p.Y
	}
}

// RotateAboutCenter rotates the rectangle by angle radians around the
// midpoint of its top-left to bottom-right diagonal.
//
// Each call computes the rotation from the current corners, so repeated
// calls accumulate only the rounding error of one rotation each.
func (r *Rect[T]) RotateAboutCenter(angle float64) {
	if angle == 0 {
		return
	}
	r.Transform(RotateAbout(angle, r.Center()))
}

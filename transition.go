package pointvis

// PrepareTransition readies points for animating into layout. It copies the
// live coordinates into source, runs the layout, and copies the result into
// target. Live coordinates are left at the target; call RestoreSource (or
// Interpolate with 0) before the next render.
func PrepareTransition(points []*Point, layout Layout) {
	captureSource(points)
	ComputeLayout(layout, points)
	captureTarget(points)
}

// captureSource must run before the layout, otherwise source equals target.
func captureSource(points []*Point) {
	for _, p := range points {
		p.SourceX = p.X
		p.SourceY = p.Y
		p.SourceZ = p.Z
	}
}

func captureTarget(points []*Point) {
	for _, p := range points {
		p.TargetX = p.X
		p.TargetY = p.Y
		p.TargetZ = p.Z
	}
}

// RestoreSource moves every point back to its source coordinate.
func RestoreSource(points []*Point) {
	for _, p := range points {
		p.X = p.SourceX
		p.Y = p.SourceY
		p.Z = p.SourceZ
	}
}

// Interpolate sets every point's live coordinate to the linear blend of its
// source and target at progress.
func Interpolate(points []*Point, progress float64) {
	inv := 1 - progress
	for _, p := range points {
		p.X = inv*p.SourceX + progress*p.TargetX
		p.Y = inv*p.SourceY + progress*p.TargetY
		p.Z = inv*p.SourceZ + progress*p.TargetZ
	}
}

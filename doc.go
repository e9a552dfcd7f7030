// Package pointvis arranges large point sets in 3D and animates them between
// arrangements for GPU-instanced rendering.
//
// pointvis provides the layout algorithms, the source/target transition
// state, a frame-driven progress driver with pluggable integrators, per-instance
// transform and color synchronization, and click-to-select with drag
// suppression. Rendering itself is left to a host that implements
// [Renderable]; the ebitenhost subpackage is one such host.
//
// # Quick start
//
//	points := pointvis.NewPoints(500, nil)
//	var vis *pointvis.Visualization
//	vis = pointvis.New(pointvis.DefaultConfig(),
//		pointvis.WithRenderable(buffer),
//		pointvis.WithOnSelect(func(p *pointvis.Point) { vis.SetSelected(p) }),
//	)
//	vis.SetPoints(points)
//
//	// every frame:
//	vis.Update(dt)
//
//	// later:
//	vis.SetLayout("spiral")
//
// # Pipeline
//
// Every change runs the same ordered stages: capture-source, run-layout,
// capture-target, restore-source, animate, sync-instances. Coordinates the
// renderer reads are always the interpolation of each point's source and
// target at the current progress, so switching layouts mid-animation starts
// the next transition from where points are drawn, not from where they were
// heading.
//
// # Threading
//
// pointvis is single-threaded. All calls must come from the goroutine that
// drives rendering; there are no locks and no background timers.
package pointvis

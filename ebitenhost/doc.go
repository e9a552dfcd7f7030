// Package ebitenhost renders a [pointvis.Visualization] with [Ebitengine].
//
// It supplies the pieces the core leaves to its host: an [InstanceBuffer]
// implementing [pointvis.Renderable], a fixed perspective [Projector], batched
// disc drawing, pointer handling with hit testing, synthetic input injection,
// JSON test scripts and screenshots.
//
//	vis := pointvis.New(pointvis.DefaultConfig())
//	vis.SetPoints(pointvis.NewPoints(1000, nil))
//	if err := ebitenhost.Run(vis, ebitenhost.RunConfig{
//		Title: "Points", Width: 1280, Height: 720,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// The camera does not move; the host's only input is selecting points by
// clicking them.
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

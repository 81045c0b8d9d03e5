package screen

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"mathracer/internal/game"
	"mathracer/internal/view"
)

var (
	skyColor    = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	grassColor  = color.RGBA{0x22, 0x8b, 0x22, 0xff}
	roadColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	centreColor = color.RGBA{0xff, 0xff, 0x00, 0xff}
	edgeColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	trunkColor  = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	leafColor   = color.RGBA{0x1c, 0x70, 0x1c, 0xff}
	carColor    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	glassColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	wheelColor  = color.RGBA{0x22, 0x22, 0x22, 0xff}
	boxColor    = color.RGBA{0xff, 0xff, 0x00, 0xff}
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func rect(img *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// centredText draws s with its middle at x and its baseline at y.
func centredText(img *ebiten.Image, s string, x, y float64, c color.Color) {
	w := len(s) * 7
	text.Draw(img, s, basicfont.Face7x13, int(x)-w/2, int(y), c)
}

// fillPoly fills a convex polygon given in screen space.
func fillPoly(img *ebiten.Image, pts [][2]float64, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	img.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{})
}

// groundQuad fills the ground strip x0..x1 between two z values.
func groundQuad(img *ebiten.Image, cam view.Camera, x0, x1, zNear, zFar, y float64, c color.RGBA) {
	corners := []game.Vec3{{X: x0, Y: y, Z: zNear}, {X: x1, Y: y, Z: zNear}, {X: x1, Y: y, Z: zFar}, {X: x0, Y: y, Z: zFar}}
	pts := make([][2]float64, 0, 4)
	for _, p := range corners {
		sx, sy, _, ok := cam.Project(p)
		if !ok {
			return
		}
		pts = append(pts, [2]float64{sx, sy})
	}
	fillPoly(img, pts, c)
}

func drawRoad(img *ebiten.Image, cam view.Camera, segs []view.Segment) {
	const line = 0.15
	clip := cam.ClipZ()
	for _, seg := range segs {
		zFar := seg.Z - game.SegmentLength/2
		zNear := math.Min(seg.Z+game.SegmentLength/2, clip)
		if zNear <= zFar {
			continue
		}
		half := game.RoadWidth / 2
		groundQuad(img, cam, -half, half, zNear, zFar, 0, roadColor)
		groundQuad(img, cam, -line, line, zNear, zFar, 0.01, centreColor)
		groundQuad(img, cam, -half-line, -half+line, zNear, zFar, 0.01, edgeColor)
		groundQuad(img, cam, half-line, half+line, zNear, zFar, 0.01, edgeColor)
	}
}

type sprite struct {
	depth float64
	draw  func()
}

// drawProps paints trees, obstacles and the car back to front.
func drawProps(img *ebiten.Image, cam view.Camera, w *view.World) {
	var props []sprite
	add := func(anchor game.Vec3, fn func(x, y, s float64)) {
		x, y, d, ok := cam.Project(anchor)
		if !ok {
			return
		}
		s := cam.Scale(d)
		props = append(props, sprite{depth: d, draw: func() { fn(x, y, s) }})
	}

	for _, seg := range w.Segments() {
		for _, tr := range seg.Trees {
			add(game.Vec3{X: tr.X, Z: seg.Z + tr.DZ}, func(x, y, s float64) {
				rect(img, x-0.3*s, y-3*s, 0.6*s, 3*s, trunkColor)
				fillPoly(img, [][2]float64{{x, y - 6.5*s}, {x + 2*s, y - 2.5*s}, {x - 2*s, y - 2.5*s}}, leafColor)
			})
		}
	}

	for _, ob := range w.Obstacles() {
		add(ob, func(x, y, s float64) {
			rect(img, x-1.5*s, y-1.5*s, 3*s, 3*s, boxColor)
			centredText(img, "?", x, y+4, color.Black)
		})
	}

	car := w.Car
	add(game.Vec3{X: car.X, Y: 0, Z: car.Z + 2}, func(x, y, s float64) {
		rect(img, x-1.2*s, y-0.4*s, 0.5*s, 0.4*s, wheelColor)
		rect(img, x+0.7*s, y-0.4*s, 0.5*s, 0.4*s, wheelColor)
		rect(img, x-s, y-s, 2*s, s, carColor)
		rect(img, x-0.9*s, y-1.6*s, 1.8*s, 0.6*s, glassColor)
	})

	sort.SliceStable(props, func(i, j int) bool { return props[i].depth > props[j].depth })
	for _, p := range props {
		p.draw()
	}
}

func drawScene(img *ebiten.Image, w *view.World) {
	bounds := img.Bounds()
	cam := w.Camera(bounds.Dx(), bounds.Dy())

	img.Fill(skyColor)
	horizon := math.Max(0, cam.Horizon())
	rect(img, 0, horizon, float64(bounds.Dx()), float64(bounds.Dy())-horizon, grassColor)

	drawRoad(img, cam, w.Segments())
	drawProps(img, cam, w)
}

// Package preview renders strip and element meshes into PNG images so that a
// build can be inspected without a 3D viewer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/gospline/pkg/geometry"
	"github.com/philipparndt/gospline/pkg/stl"
)

// Options configures a rendering
type Options struct {
	Width, Height int
	// Elevation and Azimuth place the camera, in degrees
	Elevation float64
	Azimuth   float64
	// Caption is drawn in the top left corner when not empty
	Caption string
	// Path is drawn as a polyline on top of the shaded mesh
	Path []geometry.Vector3
}

// DefaultOptions returns a 800x600 three-quarter view
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		Elevation: 35,
		Azimuth:   30,
	}
}

var (
	background = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	surface    = toRGBA(colornames.Lightsteelblue)
	pathColor  = toRGBA(colornames.Orange)
	textColor  = colornames.White
)

// Render draws the model with flat shading and a depth buffer
func Render(model *stl.Model, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	bbox := model.BoundingBox()
	for _, p := range opts.Path {
		bbox.Extend(p)
	}
	if bbox.IsEmpty() {
		drawCaption(img, opts.Caption)
		return img, nil
	}

	camera := NewCamera(bbox)
	camera.Orbit(opts.Elevation, opts.Azimuth)
	light := camera.Forward().Neg()

	w, h := float64(opts.Width), float64(opts.Height)
	zbuffer := make([]float64, opts.Width*opts.Height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	for _, t := range model.Triangles {
		normal := t.CalculateNormal()
		if normal.IsZero(1e-12) {
			continue
		}
		// two-sided lighting, strips are viewed from below as well
		intensity := 0.25 + 0.75*math.Abs(normal.Dot(light))

		var screen [3][3]float64
		for i, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			x, y, z := camera.Project(v, w, h)
			screen[i] = [3]float64{x, y, z}
		}
		fillTriangleWithDepth(img, zbuffer, screen[0], screen[1], screen[2], shade(surface, intensity))
	}

	for i := 1; i < len(opts.Path); i++ {
		x1, y1, _ := camera.Project(opts.Path[i-1], w, h)
		x2, y2, _ := camera.Project(opts.Path[i], w, h)
		if !onCanvas(x1, y1, w, h) || !onCanvas(x2, y2, w, h) {
			continue
		}
		drawLine(img, int(x1), int(y1), int(x2), int(y2), pathColor)
	}

	drawCaption(img, opts.Caption)
	return img, nil
}

// onCanvas reports whether a projected point is close enough to the image
// to be worth rasterizing a line to
func onCanvas(x, y, w, h float64) bool {
	return x > -w && x < 2*w && y > -h && y < 2*h
}

func drawCaption(img *image.RGBA, caption string) {
	if caption == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(8, 8+face.Ascent),
	}
	d.DrawString(caption)
}

func shade(c color.RGBA, intensity float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*intensity))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG renders model and writes the image to filename
func SavePNG(filename string, model *stl.Model, opts Options) error {
	img, err := Render(model, opts)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WritePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

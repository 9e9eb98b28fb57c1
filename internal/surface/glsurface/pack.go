package glsurface

import (
	"image"

	"github.com/Faultbox/col-workshop/pkg/math"
)

// packLines interleaves positions with a zero normal.
func packLines(dst []float32, vertices []math.Vec3) []float32 {
	for _, v := range vertices {
		dst = append(dst, v.X, v.Y, v.Z, 0, 0, 0)
	}
	return dst
}

// packTriangles interleaves positions with the flat face normal of each triangle.
func packTriangles(dst []float32, vertices []math.Vec3) []float32 {
	for i := 0; i+2 < len(vertices); i += 3 {
		a, b, c := vertices[i], vertices[i+1], vertices[i+2]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		for _, v := range [3]math.Vec3{a, b, c} {
			dst = append(dst, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
		}
	}
	return dst
}

// flipRows converts bottom-up GL pixel rows to a top-down image.
func flipRows(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img
}

// checkerCells returns the light cells of a checkerboard in GL window
// coordinates, where row 0 is the bottom of the target.
func checkerCells(width, height, size int) []image.Rectangle {
	var cells []image.Rectangle
	for top := 0; top < height; top += size {
		for x := 0; x < width; x += size {
			if (x/size+top/size)%2 != 0 {
				continue
			}
			bottom := height - top - size
			cells = append(cells, image.Rect(x, max(bottom, 0), min(x+size, width), height-top))
		}
	}
	return cells
}

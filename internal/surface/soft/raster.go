package soft

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// screenVertex is a vertex after perspective divide and viewport mapping.
// Z is window depth in [0, 1].
type screenVertex struct {
	X, Y, Z float32
}

// insideNear reports whether a clip-space point is in front of the near plane.
func insideNear(v math.Vec4) bool {
	return v.Z >= -v.W
}

// nearT returns where the segment a-b crosses z = -w.
func nearT(a, b math.Vec4) float32 {
	da := a.Z + a.W
	db := b.Z + b.W
	return da / (da - db)
}

func lerp4(a, b math.Vec4, t float32) math.Vec4 {
	return math.Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}

func (s *Surface) toScreen(v math.Vec4) screenVertex {
	w, h := s.Size()
	inv := 1 / v.W
	return screenVertex{
		X: (v.X*inv + 1) * 0.5 * float32(w),
		Y: (1 - v.Y*inv) * 0.5 * float32(h),
		Z: (v.Z*inv + 1) * 0.5,
	}
}

// line clips a clip-space segment against the near plane and rasterizes it.
func (s *Surface) line(a, b math.Vec4, c scene.Color) {
	ina, inb := insideNear(a), insideNear(b)
	switch {
	case !ina && !inb:
		return
	case !ina:
		a = lerp4(a, b, nearT(a, b))
	case !inb:
		b = lerp4(a, b, nearT(a, b))
	}
	if a.W <= 0 || b.W <= 0 {
		return
	}

	w, h := s.Size()
	p, q, ok := clipRect(s.toScreen(a), s.toScreen(b), float32(w), float32(h))
	if !ok {
		return
	}

	dx, dy := q.X-p.X, q.Y-p.Y
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps < 1 {
		s.plot(int(p.X), int(p.Y), p.Z, c)
		return
	}

	inv := 1 / float32(steps)
	for i := 0; i <= steps; i++ {
		t := float32(i) * inv
		x := p.X + dx*t
		y := p.Y + dy*t
		z := p.Z + (q.Z-p.Z)*t
		s.plot(int(math32.Floor(x)), int(math32.Floor(y)), z, c)
	}
}

// clipRect trims a screen-space segment to [0, w] × [0, h] (Liang-Barsky).
func clipRect(p, q screenVertex, w, h float32) (screenVertex, screenVertex, bool) {
	dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-dx, p.X},
		{dx, w - p.X},
		{-dy, p.Y},
		{dy, h - p.Y},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		t := qe / pe
		if pe < 0 {
			if t > t1 {
				return p, q, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return p, q, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	at := func(t float32) screenVertex {
		return screenVertex{X: p.X + dx*t, Y: p.Y + dy*t, Z: p.Z + dz*t}
	}
	return at(t0), at(t1), true
}

// triangle clips a clip-space triangle against the near plane and fills it.
func (s *Surface) triangle(a, b, d math.Vec4, c scene.Color) {
	poly := clipNear([]math.Vec4{a, b, d})
	if len(poly) < 3 {
		return
	}
	sv := make([]screenVertex, len(poly))
	for i, v := range poly {
		sv[i] = s.toScreen(v)
	}
	for i := 1; i+1 < len(sv); i++ {
		s.fill(sv[0], sv[i], sv[i+1], c)
	}
}

// clipNear is one Sutherland-Hodgman pass against z >= -w.
func clipNear(in []math.Vec4) []math.Vec4 {
	out := make([]math.Vec4, 0, len(in)+1)
	for i := range in {
		cur := in[i]
		next := in[(i+1)%len(in)]
		curIn, nextIn := insideNear(cur), insideNear(next)
		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			out = append(out, lerp4(cur, next, nearT(cur, next)))
		}
	}
	return out
}

func edge(a, b screenVertex, px, py float32) float32 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

// fill rasterizes a screen-space triangle with barycentric coverage at pixel centres.
func (s *Surface) fill(a, b, d screenVertex, c scene.Color) {
	area := edge(a, b, d.X, d.Y)
	if area == 0 {
		return
	}

	w, h := s.Size()
	minX := int(math32.Max(0, math32.Floor(math32.Min(a.X, math32.Min(b.X, d.X)))))
	maxX := int(math32.Min(float32(w-1), math32.Ceil(math32.Max(a.X, math32.Max(b.X, d.X)))))
	minY := int(math32.Max(0, math32.Floor(math32.Min(a.Y, math32.Min(b.Y, d.Y)))))
	maxY := int(math32.Min(float32(h-1), math32.Ceil(math32.Max(a.Y, math32.Max(b.Y, d.Y)))))

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(b, d, px, py) * inv
			w1 := edge(d, a, px, py) * inv
			w2 := edge(a, b, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			s.plot(x, y, w0*a.Z+w1*b.Z+w2*d.Z, c)
		}
	}
}

// plot depth-tests and alpha-blends one pixel. Depth is written even for
// translucent colors, matching a default GL depth mask.
func (s *Surface) plot(x, y int, z float32, c scene.Color) {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h || z < 0 || z > 1 {
		return
	}
	idx := y*w + x
	if z >= s.depth[idx] {
		return
	}
	s.depth[idx] = z

	off := s.img.PixOffset(x, y)
	pix := s.img.Pix[off : off+4 : off+4]
	a := math.Clamp(c.A, 0, 1)
	blend := func(dst uint8, src float32) uint8 {
		v := src*a*255 + float32(dst)*(1-a)
		return uint8(math.Clamp(v, 0, 255) + 0.5)
	}
	pix[0] = blend(pix[0], math.Clamp(c.R, 0, 1))
	pix[1] = blend(pix[1], math.Clamp(c.G, 0, 1))
	pix[2] = blend(pix[2], math.Clamp(c.B, 0, 1))
	pix[3] = 255
}

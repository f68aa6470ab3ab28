//go:build ebiten

package app

// shimmerSrc is a Kage postprocess that refracts the frame slightly, like
// looking up through moving water. Coordinates are normalized against the
// source region, so the effect is independent of atlas placement.
const shimmerSrc = `
package main

var Time float

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (texCoord - origin) / size

	off := vec2(
		sin(uv.y*46.0+Time*1.3),
		cos(uv.x*38.0-Time*1.1),
	) * 0.0016
	c := imageSrc0At((uv+off)*size + origin)

	glint := 0.035 * sin(uv.y*240.0-Time*2.2) * (1.0 - uv.y)
	c.rgb += vec3(glint)
	return c * color
}
`

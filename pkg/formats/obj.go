// Package formats provides parsers for luminaire bundle payload formats.
// OBJ subset parser for text-based triangle mesh assets.
package formats

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// Fallback attribute values for missing or unresolvable references.
var (
	defaultPosition = vec3.T{0, 0, 0}
	defaultTexCoord = vec2.T{0, 0}
	defaultNormal   = vec3.T{0, 1, 0}
)

// MeshData holds a triangle mesh expanded per face corner: every corner of
// every face emits its own output vertex, so Positions, Normals and TexCoords
// run parallel and Indices counts through them in face order. Corners are
// never deduplicated; flat normal generation relies on each triangle owning
// its corners exclusively.
type MeshData struct {
	Positions []vec3.T // one entry per emitted face corner
	Normals   []vec3.T // parallel to Positions
	TexCoords []vec2.T // parallel to Positions
	Indices   []uint32 // triangle corner indices, length is a multiple of 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// HasTexCoords returns true if any texture coordinate is non-zero.
func (m *MeshData) HasTexCoords() bool {
	for _, tc := range m.TexCoords {
		if tc[0] != 0 || tc[1] != 0 {
			return true
		}
	}
	return false
}

// Bounds returns the axis-aligned bounding box over all vertex positions.
func (m *MeshData) Bounds() vec3d.Box {
	ext := vec3d.MinBox
	for _, p := range m.Positions {
		ext.Extend(&vec3d.T{float64(p[0]), float64(p[1]), float64(p[2])})
	}
	return ext
}

// ParseOBJ parses a text triangle-mesh asset in the OBJ subset carried by
// luminaire bundles. It returns nil when the input holds no geometry at all
// (non-text bytes, or no vertex-position records survive parsing); callers
// treat nil as "skip this asset", not as an error. Malformed numeric fields
// never abort the parse, they substitute documented defaults.
func ParseOBJ(data []byte) *MeshData {
	if !utf8.Valid(data) {
		return nil
	}

	// Temporary attribute pools referenced by face records (1-based).
	var (
		positions []vec3.T
		texCoords []vec2.T
		normals   []vec3.T
	)

	mesh := &MeshData{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			// Each coordinate falls back to 0 independently.
			positions = append(positions, vec3.T{
				parseFloatField(fields, 1),
				parseFloatField(fields, 2),
				parseFloatField(fields, 3),
			})

		case "vn":
			n := vec3.T{0, 0, 1}
			if parsed, ok := parseVec3(fields[1:]); ok {
				n = parsed
			}
			normals = append(normals, n)

		case "vt":
			tc := vec2.T{0, 0}
			if parsed, ok := parseVec2(fields[1:]); ok {
				tc = parsed
			}
			texCoords = append(texCoords, tc)

		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				continue
			}

			emitted := make([]uint32, len(corners))
			for i, ref := range corners {
				emitted[i] = emitCorner(mesh, ref, positions, texCoords, normals)
			}

			// Fan triangulation pivoted on the first corner.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, emitted[0], emitted[i], emitted[i+1])
			}
		}
	}

	if len(positions) == 0 {
		return nil
	}

	// A file that supplied no normals of its own leaves every corner on the
	// fallback; only then are flat normals generated.
	if allNormalsDefault(mesh.Normals) {
		generateFlatNormals(mesh)
	}

	return mesh
}

// emitCorner appends one new output vertex for a face corner reference of the
// form "v", "v/t", "v//n" or "v/t/n" (1-based pool indices) and returns its
// output index. Out-of-range and absent references use the fallback attribute.
func emitCorner(mesh *MeshData, ref string, positions []vec3.T, texCoords []vec2.T, normals []vec3.T) uint32 {
	parts := strings.Split(ref, "/")

	pos := defaultPosition
	if i, ok := poolIndex(parts[0], len(positions)); ok {
		pos = positions[i]
	}

	tc := defaultTexCoord
	if len(parts) > 1 {
		if i, ok := poolIndex(parts[1], len(texCoords)); ok {
			tc = texCoords[i]
		}
	}

	normal := defaultNormal
	if len(parts) > 2 {
		if i, ok := poolIndex(parts[2], len(normals)); ok {
			normal = normals[i]
		}
	}

	mesh.Positions = append(mesh.Positions, pos)
	mesh.TexCoords = append(mesh.TexCoords, tc)
	mesh.Normals = append(mesh.Normals, normal)

	return uint32(len(mesh.Positions) - 1)
}

// poolIndex converts a 1-based reference field into a slice index, reporting
// false for empty, malformed or out-of-range references.
func poolIndex(field string, poolLen int) (int, bool) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 1 || n > poolLen {
		return 0, false
	}
	return n - 1, true
}

// parseFloatField parses the i-th token of a record, substituting 0 when the
// token is missing or not a number.
func parseFloatField(fields []string, i int) float32 {
	if i >= len(fields) {
		return 0
	}
	f, err := strconv.ParseFloat(fields[i], 32)
	if err != nil {
		return 0
	}
	return float32(f)
}

// parseVec3 parses three numeric tokens; ok is false when any is missing or
// malformed, in which case the whole record falls back.
func parseVec3(args []string) (vec3.T, bool) {
	if len(args) < 3 {
		return vec3.T{}, false
	}
	var out vec3.T
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return vec3.T{}, false
		}
		out[i] = float32(f)
	}
	return out, true
}

// parseVec2 parses two numeric tokens; ok is false when any is missing or
// malformed.
func parseVec2(args []string) (vec2.T, bool) {
	if len(args) < 2 {
		return vec2.T{}, false
	}
	var out vec2.T
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return vec2.T{}, false
		}
		out[i] = float32(f)
	}
	return out, true
}

// allNormalsDefault reports whether every emitted corner still carries the
// (0,1,0) fallback normal, meaning the file supplied no usable normals.
func allNormalsDefault(normals []vec3.T) bool {
	for _, n := range normals {
		if n != defaultNormal {
			return false
		}
	}
	return true
}

// generateFlatNormals overwrites corner normals with per-triangle facet
// normals computed from the triangle edges. Degenerate triangles get a zero
// normal.
func generateFlatNormals(mesh *MeshData) {
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0 := mesh.Indices[i]
		i1 := mesh.Indices[i+1]
		i2 := mesh.Indices[i+2]

		e1 := vec3.Sub(&mesh.Positions[i1], &mesh.Positions[i0])
		e2 := vec3.Sub(&mesh.Positions[i2], &mesh.Positions[i0])
		normal := vec3.Cross(&e1, &e2)

		if length := normal.Length(); length > 1e-5 {
			normal = vec3.T{normal[0] / length, normal[1] / length, normal[2] / length}
		} else {
			normal = vec3.T{}
		}

		mesh.Normals[i0] = normal
		mesh.Normals[i1] = normal
		mesh.Normals[i2] = normal
	}
}

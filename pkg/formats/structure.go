// Package formats provides parsers for luminaire bundle payload formats.
// Structure document model: joints, nested geometries and light-emitting
// surfaces as supplied by the bundle reader.
package formats

import (
	"fmt"

	"github.com/flywave/go3d/vec3"
)

// ShapeType identifies the declared extent of a light-emitting surface.
type ShapeType int32

const (
	ShapeUnknown   ShapeType = 0 // No extent declared
	ShapeRectangle ShapeType = 1 // Rectangular extent (width x height)
	ShapeCircle    ShapeType = 2 // Circular extent (diameter)
)

// String returns a human-readable shape type name.
func (t ShapeType) String() string {
	switch t {
	case ShapeUnknown:
		return "Unknown"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeCircle:
		return "Circle"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}
}

// Shape is a resolved surface extent. Width and Height are set for
// rectangles, Diameter for circles; all are meters.
type Shape struct {
	Type     ShapeType `yaml:"type"`
	Width    float32   `yaml:"width,omitempty"`
	Height   float32   `yaml:"height,omitempty"`
	Diameter float32   `yaml:"diameter,omitempty"`
}

// RectExtent declares a rectangular light-emitting extent.
type RectExtent struct {
	Width  float32 `yaml:"width"`  // meters
	Height float32 `yaml:"height"` // meters
}

// CircleExtent declares a circular light-emitting extent.
type CircleExtent struct {
	Diameter float32 `yaml:"diameter"` // meters
}

// LightSurface is a named region of the structure tree designated as where
// light physically exits the luminaire. Position and Rotation are local to
// the geometry node the surface is attached to. At most one extent is
// declared; a rectangle takes precedence when both appear.
type LightSurface struct {
	Name      string        `yaml:"name"`
	Position  vec3.T        `yaml:"position"`            // local translation
	Rotation  vec3.T        `yaml:"rotation"`            // local Euler angles, degrees
	Rectangle *RectExtent   `yaml:"rectangle,omitempty"` // optional rectangular extent
	Circle    *CircleExtent `yaml:"circle,omitempty"`    // optional circular extent
}

// ResolveShape returns the surface's declared extent as a tagged Shape.
// A rectangle wins over a circle; neither declared resolves to Unknown.
func (s *LightSurface) ResolveShape() Shape {
	if s.Rectangle != nil {
		return Shape{
			Type:   ShapeRectangle,
			Width:  s.Rectangle.Width,
			Height: s.Rectangle.Height,
		}
	}
	if s.Circle != nil {
		return Shape{
			Type:     ShapeCircle,
			Diameter: s.Circle.Diameter,
		}
	}
	return Shape{Type: ShapeUnknown}
}

// GeometryNode is one node of the structure tree: a local transform, the
// light-emitting surfaces attached at this node and the child joints that
// nest further geometry.
type GeometryNode struct {
	Position vec3.T         `yaml:"position"`           // local translation
	Rotation vec3.T         `yaml:"rotation"`           // local Euler angles, degrees
	Surfaces []LightSurface `yaml:"surfaces,omitempty"` // light-emitting surfaces at this node
	Joints   []Joint        `yaml:"joints,omitempty"`   // child joints
}

// Joint introduces a local transform and nests further geometry nodes.
type Joint struct {
	Position   vec3.T         `yaml:"position"`             // local translation
	Rotation   vec3.T         `yaml:"rotation"`             // local Euler angles, degrees
	Geometries []GeometryNode `yaml:"geometries,omitempty"` // nested geometry nodes
}

// CountSurfaces returns the number of light-emitting surfaces in the subtree
// rooted at this node.
func (g *GeometryNode) CountSurfaces() int {
	total := len(g.Surfaces)
	for i := range g.Joints {
		for j := range g.Joints[i].Geometries {
			total += g.Joints[i].Geometries[j].CountSurfaces()
		}
	}
	return total
}

// CountNodes returns the number of geometry nodes in the subtree rooted at
// this node, including the node itself.
func (g *GeometryNode) CountNodes() int {
	total := 1
	for i := range g.Joints {
		for j := range g.Joints[i].Geometries {
			total += g.Joints[i].Geometries[j].CountNodes()
		}
	}
	return total
}

// ModelPart references one mesh asset of the bundle together with its
// placement relative to the bundle root.
type ModelPart struct {
	MeshPath  string      `yaml:"mesh"`      // exact-match key into the asset list
	Transform [16]float32 `yaml:"transform"` // column-major 4x4 matrix
}

// Asset is one raw payload of the bundle, addressed by path.
type Asset struct {
	Name string `yaml:"name"`
	Data []byte `yaml:"-"`
}

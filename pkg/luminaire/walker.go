package luminaire

import (
	dmat "github.com/flywave/go3d/float64/mat4"
	dvec3 "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec3"

	"github.com/lumenworks/luxrig/pkg/formats"
)

// Surface is a light-emitting surface discovered in the structure tree,
// carrying its accumulated world position in bundle space.
type Surface struct {
	Name     string
	Position dvec3.T // world position, bundle space (Z up)
	Rotation vec3.T  // the surface's own local Euler rotation, degrees
	Shape    formats.Shape
}

// WalkStructure traverses the joint/geometry tree and collects every
// light-emitting surface. Traversal is seeded with the identity matrix; a
// nil root yields nil.
//
// Ancestor rotations accumulate into each surface's position only: the
// stored Rotation stays the surface's own local Euler angles.
func WalkStructure(root *formats.GeometryNode) []Surface {
	if root == nil {
		return nil
	}
	var surfaces []Surface
	walkGeometry(root, dmat.Ident, &surfaces)
	return surfaces
}

// walkGeometry visits one geometry node under the matrix inherited from its
// ancestors.
func walkGeometry(node *formats.GeometryNode, parent dmat.T, out *[]Surface) {
	current := mul(parent, localTransform(node.Position, node.Rotation))

	for i := range node.Surfaces {
		s := &node.Surfaces[i]
		world := mul(current, localTransform(s.Position, s.Rotation))
		*out = append(*out, Surface{
			Name:     s.Name,
			Position: translation(world),
			Rotation: s.Rotation,
			Shape:    s.ResolveShape(),
		})
	}

	for i := range node.Joints {
		joint := &node.Joints[i]
		childMatrix := mul(current, localTransform(joint.Position, joint.Rotation))
		for j := range joint.Geometries {
			walkGeometry(&joint.Geometries[j], childMatrix, out)
		}
	}
}

package luminaire

import (
	"math"

	dmat "github.com/flywave/go3d/float64/mat4"
	dvec3 "github.com/flywave/go3d/float64/vec3"
	dvec4 "github.com/flywave/go3d/float64/vec4"
	"github.com/flywave/go3d/vec3"
)

// zUpToYUp rotates bundle space (Z up) into host scene space (Y up): a -90
// degree rotation about the X axis.
var zUpToYUp = xRotation(-math.Pi / 2)

func xRotation(rad float64) dmat.T {
	var m dmat.T
	m.AssignXRotation(rad)
	return m
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// eulerRotation builds a rotation matrix from Euler angles in degrees,
// applying the X, then Y, then Z axis rotations.
func eulerRotation(angles vec3.T) dmat.T {
	var rx, ry, rz dmat.T
	rx.AssignXRotation(degToRad(float64(angles[0])))
	ry.AssignYRotation(degToRad(float64(angles[1])))
	rz.AssignZRotation(degToRad(float64(angles[2])))
	return mul(rx, mul(ry, rz))
}

// localTransform builds a node-local matrix from a position and an Euler
// rotation in degrees; the rotation applies first, then the translation.
func localTransform(position, rotation vec3.T) dmat.T {
	m := eulerRotation(rotation)
	m[3] = dvec4.T{float64(position[0]), float64(position[1]), float64(position[2]), 1}
	return m
}

// mul returns a x b.
func mul(a, b dmat.T) dmat.T {
	var out dmat.T
	out.AssignMul(&a, &b)
	return out
}

// translation returns the translation column of an affine matrix.
func translation(m dmat.T) dvec3.T {
	return dvec3.T{m[3][0], m[3][1], m[3][2]}
}

// matrixFromPart expands a bundle part's column-major 16-value transform.
func matrixFromPart(t [16]float32) dmat.T {
	var m dmat.T
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col][row] = float64(t[col*4+row])
		}
	}
	return m
}

// decompose splits an affine matrix without shear into scale, rotation and
// translation. A zero-length axis keeps its identity rotation column.
func decompose(m dmat.T) (scale dvec3.T, rotation dmat.T, trans dvec3.T) {
	trans = translation(m)

	rotation = dmat.Ident
	for col := 0; col < 3; col++ {
		axis := dvec3.T{m[col][0], m[col][1], m[col][2]}
		length := axis.Length()
		scale[col] = length
		if length > 0 {
			rotation[col] = dvec4.T{axis[0] / length, axis[1] / length, axis[2] / length, 0}
		}
	}
	return scale, rotation, trans
}

package luminaire

import (
	dmat "github.com/flywave/go3d/float64/mat4"
	dvec3 "github.com/flywave/go3d/float64/vec3"
	dvec4 "github.com/flywave/go3d/float64/vec4"
)

// Transform is a decomposed placement in host scene space.
type Transform struct {
	Translation dvec3.T
	Rotation    dmat.T // pure rotation
	Scale       dvec3.T
}

// Matrix recomposes translation x rotation x scale into a single matrix.
func (t *Transform) Matrix() dmat.T {
	m := t.Rotation
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col][row] *= t.Scale[col]
		}
	}
	m[3] = dvec4.T{t.Translation[0], t.Translation[1], t.Translation[2], 1}
	return m
}

// ConvertSurface rebases a walked surface into host scene space. The
// position runs through the Z-up to Y-up rotation plus the mounting offset;
// the aim direction is the canonical downward vector (0,0,-1) rotated by the
// surface's own rotation, then converted the same way.
func ConvertSurface(s Surface, mountingOffset dvec3.T) (position, aim dvec3.T) {
	position = zUpToYUp.MulVec3(&s.Position)
	position = dvec3.Add(&position, &mountingOffset)

	rot := eulerRotation(s.Rotation)
	down := dvec3.T{0, 0, -1}
	local := rot.MulVec3(&down)
	aim = zUpToYUp.MulVec3(&local)

	return position, aim
}

// ConvertPart decomposes a part's bundle-root transform and rebases it into
// host scene space. Scale passes through unchanged.
func ConvertPart(partTransform [16]float32, mountingOffset dvec3.T) Transform {
	scale, rotation, trans := decompose(matrixFromPart(partTransform))

	finalTrans := zUpToYUp.MulVec3(&trans)
	finalTrans = dvec3.Add(&finalTrans, &mountingOffset)

	return Transform{
		Translation: finalTrans,
		Rotation:    mul(zUpToYUp, rotation),
		Scale:       scale,
	}
}

package luminaire

import (
	"testing"

	dvec3 "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec3"

	"github.com/lumenworks/luxrig/pkg/formats"
)

func TestWalkStructure_TranslationChain(t *testing.T) {
	// Two-level chain with zero rotation: world position is the exact sum of
	// the node, joint and surface translations.
	root := &formats.GeometryNode{
		Position: vec3.T{1, 2, 3},
		Joints: []formats.Joint{
			{
				Position: vec3.T{10, 20, 30},
				Geometries: []formats.GeometryNode{
					{
						Surfaces: []formats.LightSurface{
							{Name: "leaf", Position: vec3.T{0.5, 0.5, 0.5}},
						},
					},
				},
			},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 1 {
		t.Fatalf("got %d surfaces, want 1", len(surfaces))
	}

	want := dvec3.T{11.5, 22.5, 33.5}
	if surfaces[0].Position != want {
		t.Errorf("position: got %v, want %v", surfaces[0].Position, want)
	}
}

func TestWalkStructure_RotationAffectsChildPositions(t *testing.T) {
	// A 90 degree Z rotation on the root swings a joint at (1,0,0) to (0,1,0).
	root := &formats.GeometryNode{
		Rotation: vec3.T{0, 0, 90},
		Joints: []formats.Joint{
			{
				Position: vec3.T{1, 0, 0},
				Geometries: []formats.GeometryNode{
					{
						Surfaces: []formats.LightSurface{{Name: "s"}},
					},
				},
			},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 1 {
		t.Fatalf("got %d surfaces, want 1", len(surfaces))
	}

	if !dvec3Near(surfaces[0].Position, dvec3.T{0, 1, 0}, 1e-9) {
		t.Errorf("position: got %v, want (0,1,0)", surfaces[0].Position)
	}
}

func TestWalkStructure_SurfaceKeepsOwnRotation(t *testing.T) {
	// Ancestor rotations accumulate into the surface position but the stored
	// rotation is the surface's own local Euler angles, verbatim.
	root := &formats.GeometryNode{
		Rotation: vec3.T{0, 0, 90},
		Joints: []formats.Joint{
			{
				Rotation: vec3.T{45, 0, 0},
				Geometries: []formats.GeometryNode{
					{
						Surfaces: []formats.LightSurface{
							{Name: "tilted", Rotation: vec3.T{0, 0, 45}},
							{Name: "straight"},
						},
					},
				},
			},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 2 {
		t.Fatalf("got %d surfaces, want 2", len(surfaces))
	}

	if surfaces[0].Rotation != (vec3.T{0, 0, 45}) {
		t.Errorf("tilted rotation: got %v, want (0,0,45)", surfaces[0].Rotation)
	}
	if surfaces[1].Rotation != (vec3.T{0, 0, 0}) {
		t.Errorf("straight rotation: got %v, want zero", surfaces[1].Rotation)
	}
}

func TestWalkStructure_EulerAxisOrder(t *testing.T) {
	// A node rotated 90 degrees about X lifts a surface at local (0,1,0) to
	// (0,0,1).
	root := &formats.GeometryNode{
		Rotation: vec3.T{90, 0, 0},
		Surfaces: []formats.LightSurface{
			{Name: "s", Position: vec3.T{0, 1, 0}},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 1 {
		t.Fatalf("got %d surfaces, want 1", len(surfaces))
	}
	if !dvec3Near(surfaces[0].Position, dvec3.T{0, 0, 1}, 1e-9) {
		t.Errorf("position: got %v, want (0,0,1)", surfaces[0].Position)
	}
}

func TestWalkStructure_SurfaceLocalOffset(t *testing.T) {
	root := &formats.GeometryNode{
		Position: vec3.T{0, 0, 1},
		Surfaces: []formats.LightSurface{
			{Name: "s", Position: vec3.T{0, 0, -0.02}},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 1 {
		t.Fatalf("got %d surfaces, want 1", len(surfaces))
	}
	if !dvec3Near(surfaces[0].Position, dvec3.T{0, 0, 0.98}, 1e-6) {
		t.Errorf("position: got %v, want (0,0,0.98)", surfaces[0].Position)
	}
}

func TestWalkStructure_ShapesResolvedDuringWalk(t *testing.T) {
	root := &formats.GeometryNode{
		Surfaces: []formats.LightSurface{
			{Name: "rect", Rectangle: &formats.RectExtent{Width: 0.6, Height: 0.1}},
			{Name: "disc", Circle: &formats.CircleExtent{Diameter: 0.15}},
			{Name: "bare"},
		},
	}

	surfaces := WalkStructure(root)
	if len(surfaces) != 3 {
		t.Fatalf("got %d surfaces, want 3", len(surfaces))
	}

	if surfaces[0].Shape.Type != formats.ShapeRectangle || surfaces[0].Shape.Width != 0.6 {
		t.Errorf("rect shape: got %+v", surfaces[0].Shape)
	}
	if surfaces[1].Shape.Type != formats.ShapeCircle || surfaces[1].Shape.Diameter != 0.15 {
		t.Errorf("disc shape: got %+v", surfaces[1].Shape)
	}
	if surfaces[2].Shape.Type != formats.ShapeUnknown {
		t.Errorf("bare shape: got %+v", surfaces[2].Shape)
	}
}

func TestWalkStructure_NilRoot(t *testing.T) {
	if surfaces := WalkStructure(nil); surfaces != nil {
		t.Errorf("expected nil, got %v", surfaces)
	}
}

func TestWalkStructure_NoSurfaces(t *testing.T) {
	root := &formats.GeometryNode{
		Joints: []formats.Joint{
			{Geometries: []formats.GeometryNode{{}, {}}},
		},
	}
	if surfaces := WalkStructure(root); len(surfaces) != 0 {
		t.Errorf("expected no surfaces, got %d", len(surfaces))
	}
}

func dvec3Near(a, b dvec3.T, eps float64) bool {
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

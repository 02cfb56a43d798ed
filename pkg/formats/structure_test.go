package formats

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLightSurface_ResolveShape(t *testing.T) {
	tests := []struct {
		name    string
		surface LightSurface
		want    Shape
	}{
		{
			name:    "rectangle",
			surface: LightSurface{Rectangle: &RectExtent{Width: 0.6, Height: 0.3}},
			want:    Shape{Type: ShapeRectangle, Width: 0.6, Height: 0.3},
		},
		{
			name:    "circle",
			surface: LightSurface{Circle: &CircleExtent{Diameter: 0.15}},
			want:    Shape{Type: ShapeCircle, Diameter: 0.15},
		},
		{
			name: "rectangle wins over circle",
			surface: LightSurface{
				Rectangle: &RectExtent{Width: 0.2, Height: 0.2},
				Circle:    &CircleExtent{Diameter: 0.4},
			},
			want: Shape{Type: ShapeRectangle, Width: 0.2, Height: 0.2},
		},
		{
			name:    "neither declared",
			surface: LightSurface{Name: "bare"},
			want:    Shape{Type: ShapeUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.surface.ResolveShape(); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShapeType_String(t *testing.T) {
	tests := []struct {
		shapeType ShapeType
		want      string
	}{
		{ShapeUnknown, "Unknown"},
		{ShapeRectangle, "Rectangle"},
		{ShapeCircle, "Circle"},
		{ShapeType(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.shapeType.String(); got != tt.want {
			t.Errorf("ShapeType(%d): got %q, want %q", int32(tt.shapeType), got, tt.want)
		}
	}
}

func TestGeometryNode_Counts(t *testing.T) {
	root := GeometryNode{
		Surfaces: []LightSurface{{Name: "a"}},
		Joints: []Joint{
			{
				Geometries: []GeometryNode{
					{Surfaces: []LightSurface{{Name: "b"}, {Name: "c"}}},
					{
						Joints: []Joint{
							{Geometries: []GeometryNode{
								{Surfaces: []LightSurface{{Name: "d"}}},
							}},
						},
					},
				},
			},
		},
	}

	if got := root.CountSurfaces(); got != 4 {
		t.Errorf("CountSurfaces: got %d, want 4", got)
	}
	if got := root.CountNodes(); got != 4 {
		t.Errorf("CountNodes: got %d, want 4", got)
	}
}

func TestGeometryNode_YAML(t *testing.T) {
	doc := `
position: [0, 0, 0.05]
rotation: [0, 0, 90]
surfaces:
  - name: LEO1
    position: [0, 0, -0.02]
    rotation: [0, 0, 0]
    circle:
      diameter: 0.1
joints:
  - position: [0.25, 0, 0]
    rotation: [0, 0, 0]
    geometries:
      - position: [0, 0, 0]
        rotation: [0, 0, 0]
        surfaces:
          - name: LEO2
            position: [0, 0, 0]
            rotation: [0, 0, 0]
            rectangle:
              width: 0.6
              height: 0.1
`
	var root GeometryNode
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if root.Position[2] != 0.05 {
		t.Errorf("root position z: got %v, want 0.05", root.Position[2])
	}
	if root.Rotation[2] != 90 {
		t.Errorf("root rotation z: got %v, want 90", root.Rotation[2])
	}
	if len(root.Surfaces) != 1 || root.Surfaces[0].Name != "LEO1" {
		t.Fatalf("unexpected root surfaces: %+v", root.Surfaces)
	}
	if shape := root.Surfaces[0].ResolveShape(); shape.Type != ShapeCircle || shape.Diameter != 0.1 {
		t.Errorf("LEO1 shape: got %+v", shape)
	}

	if root.CountSurfaces() != 2 {
		t.Errorf("CountSurfaces: got %d, want 2", root.CountSurfaces())
	}
	leaf := root.Joints[0].Geometries[0].Surfaces[0]
	if shape := leaf.ResolveShape(); shape.Type != ShapeRectangle || shape.Width != 0.6 {
		t.Errorf("LEO2 shape: got %+v", shape)
	}
}

func TestModelPart_YAML(t *testing.T) {
	doc := `
mesh: body.obj
transform: [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0.5, 0.25, 0, 1]
`
	var part ModelPart
	if err := yaml.Unmarshal([]byte(doc), &part); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if part.MeshPath != "body.obj" {
		t.Errorf("mesh path: got %q, want %q", part.MeshPath, "body.obj")
	}
	if part.Transform[12] != 0.5 || part.Transform[13] != 0.25 {
		t.Errorf("translation cells: got %v, %v", part.Transform[12], part.Transform[13])
	}
}

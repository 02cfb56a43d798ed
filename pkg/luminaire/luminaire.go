// Package luminaire derives renderable meshes and photometric light emitters
// from a luminaire bundle: mesh assets are parsed, the structure tree is
// walked for light-emitting surfaces, everything is rebased from the
// bundle's Z-up space into the host scene's Y-up space, and per-emitter
// overrides are merged with scene-wide photometric defaults.
package luminaire

import (
	dvec3 "github.com/flywave/go3d/float64/vec3"
	"go.uber.org/zap"

	"github.com/lumenworks/luxrig/pkg/formats"
	"github.com/lumenworks/luxrig/pkg/photometry"
)

// Input carries everything one derivation pass consumes. The bundle reader
// supplies parts, assets and the structure document; configuration supplies
// overrides and the photometric summary; the caller supplies the mounting
// offset it computed from scene geometry.
type Input struct {
	Parts          []formats.ModelPart
	Assets         []formats.Asset
	Structure      *formats.GeometryNode // nil yields zero emitters
	Overrides      []photometry.Override
	Summary        *photometry.Summary // nil falls back to fixed defaults
	MountingOffset dvec3.T
}

// MeshInstance pairs one parsed mesh asset with its placement in host scene
// space.
type MeshInstance struct {
	Name      string // source part path
	Mesh      *formats.MeshData
	Transform Transform
}

// Result holds the products of one derivation pass.
type Result struct {
	Meshes   []MeshInstance
	Emitters []Emitter
}

// Pipeline runs mesh parsing, structure walking, coordinate conversion and
// photometric resolution as one synchronous pass.
type Pipeline struct {
	log *zap.Logger
}

// New returns a Pipeline that logs diagnostics to log. A nil logger
// disables diagnostics.
func New(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{log: log}
}

// Run executes one full pass over the bundle input. Sub-step failures
// degrade locally: the offending part or asset is skipped with a logged
// reason and the pass continues. Run never fails, and every call produces
// fresh values.
func (p *Pipeline) Run(in Input) *Result {
	res := &Result{}

	// Part lookup is by exact path; the first asset with a name wins.
	assets := make(map[string][]byte, len(in.Assets))
	for _, a := range in.Assets {
		if _, ok := assets[a.Name]; !ok {
			assets[a.Name] = a.Data
		}
	}

	for _, part := range in.Parts {
		data, ok := assets[part.MeshPath]
		if !ok {
			p.log.Warn("part references missing asset",
				zap.String("mesh", part.MeshPath))
			continue
		}

		mesh := formats.ParseOBJ(data)
		if mesh == nil {
			p.log.Warn("asset has no geometry, part skipped",
				zap.String("mesh", part.MeshPath))
			continue
		}

		res.Meshes = append(res.Meshes, MeshInstance{
			Name:      part.MeshPath,
			Mesh:      mesh,
			Transform: ConvertPart(part.Transform, in.MountingOffset),
		})

		p.log.Debug("part converted",
			zap.String("mesh", part.MeshPath),
			zap.Int("triangles", mesh.TriangleCount()))
	}

	surfaces := WalkStructure(in.Structure)
	res.Emitters = resolveEmitters(surfaces, in.MountingOffset, in.Overrides, in.Summary, p.log)

	p.log.Info("luminaire pass complete",
		zap.Int("parts", len(in.Parts)),
		zap.Int("meshes", len(res.Meshes)),
		zap.Int("surfaces", len(surfaces)),
		zap.Int("emitters", len(res.Emitters)))

	return res
}

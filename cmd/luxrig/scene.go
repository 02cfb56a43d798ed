package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	dvec3 "github.com/flywave/go3d/float64/vec3"
	"gopkg.in/yaml.v3"

	"github.com/lumenworks/luxrig/internal/assets"
	"github.com/lumenworks/luxrig/internal/config"
	"github.com/lumenworks/luxrig/pkg/formats"
	"github.com/lumenworks/luxrig/pkg/luminaire"
	"github.com/lumenworks/luxrig/pkg/photometry"
)

// structureFile is the scene document inside a scene directory.
const structureFile = "structure.yaml"

// sceneFile mirrors the document layout produced by the bundle extractor.
type sceneFile struct {
	Parts     []formats.ModelPart   `yaml:"parts"`
	Structure *formats.GeometryNode `yaml:"structure"`
	Summary   *photometry.Summary   `yaml:"summary"`
	Overrides []photometry.Override `yaml:"overrides"`
}

// loadScene reads structure.yaml plus every .obj asset in dir.
func loadScene(dir string) (*sceneFile, []formats.Asset, error) {
	data, err := os.ReadFile(filepath.Join(dir, structureFile))
	if err != nil {
		return nil, nil, fmt.Errorf("reading scene document: %w", err)
	}

	var scene sceneFile
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, nil, fmt.Errorf("parsing scene document: %w", err)
	}

	mgr := assets.NewManager()
	if err := mgr.AddDir(dir); err != nil {
		return nil, nil, err
	}

	var meshes []formats.Asset
	for _, name := range mgr.ListMeshes() {
		data, err := mgr.Load(name)
		if err != nil {
			return nil, nil, fmt.Errorf("reading asset %s: %w", name, err)
		}
		meshes = append(meshes, formats.Asset{Name: name, Data: data})
	}

	return &scene, meshes, nil
}

// buildInput merges scene content with config fallbacks and room geometry.
// Scene-level summary and overrides win over config-level ones.
func buildInput(cfg *config.Config, scene *sceneFile, assets []formats.Asset) luminaire.Input {
	summary := scene.Summary
	if summary == nil {
		summary = cfg.Photometric.Summary
	}
	if summary == nil && cfg.Photometric.FallbackFlux > 0 {
		summary = &photometry.Summary{
			TotalFlux:        cfg.Photometric.FallbackFlux,
			ColorAppearance:  strconv.FormatFloat(cfg.Photometric.FallbackColorTemp, 'f', -1, 64) + "K",
			LightOutputRatio: 1,
		}
	}

	overrides := scene.Overrides
	if len(overrides) == 0 {
		overrides = cfg.Photometric.Overrides
	}

	return luminaire.Input{
		Parts:          scene.Parts,
		Assets:         assets,
		Structure:      scene.Structure,
		Overrides:      overrides,
		Summary:        summary,
		MountingOffset: mountingOffset(cfg.Scene),
	}
}

// mountingOffset centers the luminaire on the room footprint and drops it
// below the ceiling by the configured clearance.
func mountingOffset(scene config.SceneConfig) dvec3.T {
	return dvec3.T{
		scene.RoomWidth / 2,
		scene.RoomHeight - scene.MountingClearance,
		scene.RoomDepth / 2,
	}
}

// resultDoc is the YAML layout written by -out.
type resultDoc struct {
	Meshes   []meshSummary       `yaml:"meshes"`
	Emitters []luminaire.Emitter `yaml:"emitters"`
}

type meshSummary struct {
	Name      string  `yaml:"name"`
	Triangles int     `yaml:"triangles"`
	Vertices  int     `yaml:"vertices"`
	Position  dvec3.T `yaml:"position"`
}

func writeResult(path string, result *luminaire.Result) error {
	doc := resultDoc{Emitters: result.Emitters}
	for _, m := range result.Meshes {
		doc.Meshes = append(doc.Meshes, meshSummary{
			Name:      m.Name,
			Triangles: m.Mesh.TriangleCount(),
			Vertices:  len(m.Mesh.Positions),
			Position:  m.Transform.Translation,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

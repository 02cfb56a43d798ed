// luxrig derives renderable meshes and light emitters from luminaire bundles.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lumenworks/luxrig/internal/config"
	"github.com/lumenworks/luxrig/internal/logger"
	"github.com/lumenworks/luxrig/pkg/formats"
	"github.com/lumenworks/luxrig/pkg/luminaire"
)

func main() {
	// Global flags come before the command
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "inspect":
		cmdInspect(cfg, log, args)
	case "emitters":
		cmdEmitters(cfg, log, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`luxrig - luminaire bundle light rig utility

Usage:
  luxrig [flags] <command> [options]

Commands:
  inspect [scene_dir]    Report meshes and emitters derived from a scene
  emitters [scene_dir]   Dump resolved emitters as YAML

Flags:
  -config <path>   Config file path
  -debug           Enable debug logging
  -scene <dir>     Scene directory (overrides config)
  -out <path>      Write derived scene to this path

Examples:
  luxrig inspect
  luxrig -scene bundles/pendant inspect
  luxrig -debug emitters
  luxrig -out derived.yaml inspect bundles/pendant`)
}

func cmdInspect(cfg *config.Config, log *zap.Logger, args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	fs.Parse(args)

	dir := cfg.Scene.Dir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	scene, assets, err := loadScene(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := luminaire.New(log).Run(buildInput(cfg, scene, assets))

	fmt.Printf("Scene:    %s\n", dir)
	fmt.Printf("Parts:    %d\n", len(scene.Parts))
	fmt.Printf("Meshes:   %d\n", len(result.Meshes))
	fmt.Printf("Emitters: %d\n", len(result.Emitters))

	if len(result.Meshes) > 0 {
		fmt.Println()
		fmt.Println("Meshes:")
		for _, m := range result.Meshes {
			fmt.Printf("  %-24s %5d triangles  at (%.3f, %.3f, %.3f)\n",
				m.Name, m.Mesh.TriangleCount(),
				m.Transform.Translation[0], m.Transform.Translation[1], m.Transform.Translation[2])
		}
	}

	if len(result.Emitters) > 0 {
		fmt.Println()
		fmt.Println("Emitters:")
		for _, e := range result.Emitters {
			tag := ""
			if e.EmergencyOnly {
				tag = "  [emergency]"
			}
			fmt.Printf("  %-24s %-16s %8.1f lm  at (%.3f, %.3f, %.3f)%s\n",
				e.Name, shapeLabel(e.Shape), e.Flux,
				e.Position[0], e.Position[1], e.Position[2], tag)
		}
	}

	if cfg.Output.Path != "" {
		if err := writeResult(cfg.Output.Path, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote derived scene: %s\n", cfg.Output.Path)
	}
}

func cmdEmitters(cfg *config.Config, log *zap.Logger, args []string) {
	fs := flag.NewFlagSet("emitters", flag.ExitOnError)
	fs.Parse(args)

	dir := cfg.Scene.Dir
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	scene, assets, err := loadScene(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := luminaire.New(log).Run(buildInput(cfg, scene, assets))

	data, err := yaml.Marshal(result.Emitters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding emitters: %v\n", err)
		os.Exit(1)
	}

	if cfg.Output.Path != "" {
		if err := os.WriteFile(cfg.Output.Path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", cfg.Output.Path, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d emitters: %s\n", len(result.Emitters), cfg.Output.Path)
		return
	}

	os.Stdout.Write(data)
}

func shapeLabel(s formats.Shape) string {
	switch s.Type {
	case formats.ShapeRectangle:
		return fmt.Sprintf("Rect %.3fx%.3f", s.Width, s.Height)
	case formats.ShapeCircle:
		return fmt.Sprintf("Circle d=%.3f", s.Diameter)
	default:
		return s.Type.String()
	}
}

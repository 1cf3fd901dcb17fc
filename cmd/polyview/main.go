package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/polyview"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	solid := flag.String("solid", "", "solid to show: "+strings.Join(polyview.SolidNames(), ", "))
	scale := flag.String("scale", "", "per-axis scale factors as sx,sy,sz")
	triakisA := flag.Float64("a", 0, "outer vertex coordinate of the triakis tetrahedron")
	list := flag.Bool("list", false, "list the available solids and exit")
	info := flag.Bool("info", false, "print the mesh, its normals and centroids, and exit")
	flag.Parse()

	if *list {
		for _, name := range polyview.SolidNames() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := polyview.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// flags given on the command line override the file
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "solid":
			cfg.Solid = *solid
		case "a":
			cfg.TriakisA = *triakisA
		case "scale":
			s, err := parseScale(*scale)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Scale = s
		}
	})
	if flagErr != nil {
		log.Fatalf("Bad -scale: %v", flagErr)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	mesh, err := cfg.BuildMesh()
	if err != nil {
		log.Fatalf("Error building mesh: %v", err)
	}
	if err := mesh.Validate(); err != nil {
		log.Printf("Mesh has bad faces:\n%v", err)
	}

	if *info {
		printInfo(os.Stdout, mesh)
		return
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := polyview.NewGame(cfg.Solid, cfg.NewRenderer(mesh), cfg.NewWorkspace())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func parseScale(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 comma separated factors, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("could not parse scale factor '%s': %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func printInfo(w io.Writer, m *polyview.Mesh) {
	min, max := m.Bounds()
	fmt.Fprintf(w, "%d vertices, %d faces, bounds %v - %v\n\n", m.VertexCount(), m.FaceCount(), min, max)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "vertex\tposition")
	for i, v := range m.Vertices() {
		fmt.Fprintf(tw, "%d\t%v\n", i, v)
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(tw, "face\tindices\tnormal\tcentroid")
	for i := 0; i < m.FaceCount(); i++ {
		normal, err := m.FaceNormal(i)
		normalText := normal.String()
		if err != nil {
			normalText = err.Error()
		}
		centroid, err := m.FaceCentroid(i)
		centroidText := centroid.String()
		if err != nil {
			centroidText = err.Error()
		}
		fmt.Fprintf(tw, "%d\t%v\t%s\t%s\n", i, m.Face(i).Indices(), normalText, centroidText)
	}
	tw.Flush()
}

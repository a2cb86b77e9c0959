package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/geosvg"
)

type Read struct {
	Format string `short:"f" default:"geojson" desc:"Output format: geojson or wkt"`
	Output string `short:"o" default:"" desc:"Output file (default stdout)"`
	Input  string `index:"0" default:"" desc:"Input SVG file (default stdin)"`
}

type Write struct {
	Format   string `short:"f" default:"geojson" desc:"Input format: geojson or wkt"`
	Fragment bool   `desc:"Write bare path data instead of SVG elements"`
	Output   string `short:"o" default:"" desc:"Output file (default stdout)"`
	Input    string `index:"0" default:"" desc:"Input geometry file (default stdin)"`
}

func main() {
	root := argp.NewCmd(&Read{}, "SVG and geometry conversion toolkit by Taco de Wolff")
	root.AddCmd(&Write{}, "write", "Write geometries as SVG shape elements")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Read) Run() error {
	svg, err := input(cmd.Input)
	if err != nil {
		return err
	}

	collection, err := geosvg.Parse(string(svg))
	if err != nil {
		return err
	}

	var data []byte
	switch cmd.Format {
	case "geojson":
		if data, err = json.Marshal(geojson.NewGeometry(collection)); err != nil {
			return err
		}
	case "wkt":
		data = []byte(wkt.MarshalString(collection))
	default:
		fmt.Println("ERROR: unknown format", cmd.Format)
		return argp.ShowUsage
	}
	return output(cmd.Output, append(data, '\n'))
}

func (cmd *Write) Run() error {
	raw, err := input(cmd.Input)
	if err != nil {
		return err
	}

	var geometry orb.Geometry
	switch cmd.Format {
	case "geojson":
		g, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return err
		}
		geometry = g.Geometry()
	case "wkt":
		if geometry, err = wkt.Unmarshal(strings.TrimSpace(string(raw))); err != nil {
			return err
		}
	default:
		fmt.Println("ERROR: unknown format", cmd.Format)
		return argp.ShowUsage
	}

	svg := geosvg.ToSVG(geometry)
	if cmd.Fragment {
		svg = geosvg.ToPathData(geometry)
	}
	return output(cmd.Output, []byte(svg+"\n"))
}

func input(filename string) ([]byte, error) {
	if filename == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}

func output(filename string, data []byte) error {
	if filename == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

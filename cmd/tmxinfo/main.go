// Command tmxinfo prints a summary of a TMX map file: its dimensions,
// tileset GID ranges, the layer tree and object counts. Useful for checking
// what a level actually contains without opening the editor.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/automoto/tmx"
)

func main() {
	showProps := flag.Bool("props", false, "Print custom properties")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: tmxinfo [-props] <map.tmx>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	m, err := tmx.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	fmt.Printf("%s: %s %dx%d tiles of %dx%d px", path, m.Orientation, m.Width, m.Height, m.TileWidth, m.TileHeight)
	if m.Infinite {
		fmt.Print(" (infinite)")
	}
	fmt.Println()

	for _, ts := range m.Tilesets {
		src := "embedded"
		if ts.Source != "" {
			src = ts.Source
		}
		fmt.Printf("tileset %-20q gids %d-%d  %s\n",
			ts.Name, ts.FirstGID, ts.FirstGID+uint32(ts.TileCount)-1, src)
	}

	printLayers(m.Layers, 0, *showProps)

	if *showProps && len(m.Properties) > 0 {
		fmt.Println("map properties:")
		printProps(m.Properties, 1)
	}
}

func printLayers(layers []tmx.Layer, depth int, showProps bool) {
	indent := strings.Repeat("  ", depth)
	for _, layer := range layers {
		info := layer.Info()
		switch l := layer.(type) {
		case *tmx.TileLayer:
			detail := fmt.Sprintf("%dx%d", l.Width, l.Height)
			if len(l.Chunks) > 0 {
				detail = fmt.Sprintf("%d chunks", len(l.Chunks))
			}
			fmt.Printf("%stile layer   %-20q %s\n", indent, info.Key, detail)
		case *tmx.ObjectGroup:
			fmt.Printf("%sobject group %-20q %d objects\n", indent, info.Key, len(l.Objects))
			for _, o := range l.Objects {
				fmt.Printf("%s  #%d %s %q at %.0f,%.0f\n", indent, o.ID, o.Kind, o.Name, o.X, o.Y)
			}
		case *tmx.ImageLayer:
			src := ""
			if l.Image != nil {
				src = l.Image.Source
			}
			fmt.Printf("%simage layer  %-20q %s\n", indent, info.Key, src)
		case *tmx.Group:
			fmt.Printf("%sgroup        %-20q\n", indent, info.Key)
			printLayers(l.Layers, depth+1, showProps)
		}
		if showProps {
			printProps(info.Properties, depth+1)
		}
	}
}

func printProps(props tmx.Properties, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, p := range props {
		fmt.Printf("%s%s = %q\n", indent, p.Name, p.Value)
	}
}

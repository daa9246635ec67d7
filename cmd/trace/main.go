// Command trace loads a level and prints its wall outlines: one block
// per loop with the beveled vertices and the rigid collider pairs.
// Handy for checking a map's collision geometry without launching the
// game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/chase/level"
)

func main() {
	verbose := flag.Bool("v", false, "also print the subtile wall mask grid")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: trace [-v] <level.json>\n")
		os.Exit(2)
	}

	lvl, err := level.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	walls, outlines, err := lvl.BuildNav()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %dx%d tiles, %d outlines\n", flag.Arg(0), lvl.Width, lvl.Height, len(outlines))

	if *verbose {
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				fmt.Printf("%02x ", walls[y*lvl.Width+x])
			}
			fmt.Println()
		}
	}

	for i, outline := range outlines {
		fmt.Printf("outline %d: %d vertices, %d rigid pairs\n", i, len(outline.Vertices), len(outline.Rigid))
		for j, v := range outline.Vertices {
			fmt.Printf("  v%-3d (%.2f, %.2f)\n", j, v.X, v.Y)
		}
		for _, pair := range outline.Rigid {
			a := outline.Vertices[pair[0]]
			b := outline.Vertices[pair[1]]
			fmt.Printf("  rigid [%d %d] (%.2f, %.2f) -> (%.2f, %.2f)\n", pair[0], pair[1], a.X, a.Y, b.X, b.Y)
		}
	}
}

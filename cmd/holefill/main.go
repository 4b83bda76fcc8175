// Command holefill fills masked-out regions of an image. It loads an image
// and a mask, carves holes where the mask is dark, fills them with the
// selected algorithm and writes the result as an 8-bit grayscale image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/binaryfoundry/holefill"
	"github.com/binaryfoundry/holefill/internal/imaging"
)

func main() {
	imagePath := flag.String("image", "", "Path to the input image (PNG, JPEG, TIFF, BMP, or WebP)")
	maskPath := flag.String("mask", "", "Path to the mask image; pixels darker than 50% gray mark holes")
	outPath := flag.String("out", "", "Path for the filled output image (.png, .jpg)")
	algo := flag.String("algo", "window", "Fill algorithm: window, propagate, exhaustive, or nearest")
	window := flag.Int("window", 20, "Window width for the window algorithm")
	conn := flag.Int("conn", 8, "Boundary connectivity: 4 or 8")
	mode := flag.String("mode", "radius", "Query mode for the nearest algorithm: radius or knearest")
	k := flag.Int("k", 16, "Neighbor count for -mode knearest")
	radiusScale := flag.Float64("radius-scale", 1.5, "Safety margin on the derived search radius for -mode radius")
	flag.Parse()

	if *imagePath == "" || *maskPath == "" || *outPath == "" {
		fmt.Println("Usage: holefill -image <path> -mask <path> -out <path> [-algo window|propagate|exhaustive|nearest]")
		os.Exit(1)
	}

	img, err := imaging.LoadImage(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	mask, err := imaging.LoadImage(*maskPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load mask: %v\n", err)
		os.Exit(1)
	}

	buf, err := imaging.Carve(img, mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare buffer: %v\n", err)
		os.Exit(1)
	}

	connectivity := holefill.Connectivity(*conn)

	switch *algo {
	case "window":
		opts := holefill.DefaultPropagateOptions()
		opts.Windowed = true
		opts.Window = *window
		err = holefill.FillPropagate(buf, opts)
	case "propagate":
		err = holefill.FillPropagate(buf, holefill.DefaultPropagateOptions())
	case "exhaustive":
		err = holefill.FillExhaustive(buf, nil, connectivity)
	case "nearest":
		opts := holefill.DefaultSearchOptions()
		opts.Connectivity = connectivity
		opts.K = *k
		opts.RadiusScale = *radiusScale
		switch *mode {
		case "radius":
			opts.Mode = holefill.SearchRadius
		case "knearest":
			opts.Mode = holefill.SearchKNearest
		default:
			fmt.Fprintf(os.Stderr, "Unknown query mode %q\n", *mode)
			os.Exit(1)
		}
		err = holefill.FillNearest(buf, nil, opts)
	default:
		fmt.Fprintf(os.Stderr, "Unknown algorithm %q\n", *algo)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fill failed: %v\n", err)
		os.Exit(1)
	}

	if err := imaging.SaveImage(*outPath, imaging.Render(buf)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output written to: %s\n", *outPath)
}

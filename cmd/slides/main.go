package main

import (
	"fmt"
	"os"

	"github.com/benjaminschreck/go-slides/pkg/slides"
)

func main() {
	fmt.Println("go-slides - Shape object model for PPTX files")
	fmt.Println("Version: 0.1.0")

	if len(os.Args) < 2 {
		fmt.Println("\nUsage: slides <command> [arguments]")
		fmt.Println("\nCommands:")
		fmt.Println("  info <file.pptx>    List slides and their shape trees")
		fmt.Println("  version             Show version information")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Println("go-slides version 0.1.0")
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("info requires a file argument")
			os.Exit(1)
		}
		if err := printInfo(os.Args[2]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func printInfo(path string) error {
	pres, err := slides.OpenFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s: %d slide(s)\n", path, pres.SlideCount())
	for i, sheet := range pres.Slides() {
		fmt.Printf("\nSlide %d (%s):\n", i+1, sheet.PartName())
		printShapes(sheet.Shapes(), "  ")
	}
	return nil
}

func printShapes(shs []slides.Shape, indent string) {
	for _, sh := range shs {
		desc := sh.Name()
		if anchor, err := sh.Anchor(); err == nil {
			desc += fmt.Sprintf(" [%.1f,%.1f %.1fx%.1f pt]", anchor.X, anchor.Y, anchor.Width, anchor.Height)
		}
		fmt.Printf("%s- %s\n", indent, desc)
		if group, ok := sh.(*slides.GroupShape); ok {
			printShapes(group.Shapes(), indent+"  ")
		}
	}
}

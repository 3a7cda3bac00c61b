package main

import (
	"flag"
	"fmt"

	"github.com/grindlemire/bento"
)

// runSnapshot implements the snapshot subcommand. It runs a built-in
// scene for a number of frames on the image surface and writes the
// final frame to a PNG file.
func runSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	out := fs.String("o", "", "Output PNG path (default: <scene>.png)")
	config := fs.String("config", "", "TOML settings file")
	frames := fs.Uint64("frames", 1, "Frames to run before capturing")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("snapshot needs exactly one scene name, see 'bento scenes'")
	}

	name := fs.Arg(0)
	app, err := newScene(name)
	if err != nil {
		return err
	}
	if *frames == 0 {
		return fmt.Errorf("frames must be positive")
	}

	opts := []bento.RunnerOption{bento.WithMaxFrames(*frames)}
	if *config != "" {
		opts = append(opts, bento.WithSettingsFile(*config))
	}

	r, err := bento.NewRunner(app, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Run(); err != nil {
		return err
	}

	img, ok := r.Surface().(*bento.ImageSurface)
	if !ok {
		return fmt.Errorf("surface %T cannot save snapshots", r.Surface())
	}

	path := *out
	if path == "" {
		path = name + ".png"
	}
	if err := img.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// runScenes implements the scenes subcommand.
func runScenes() {
	for _, name := range sceneNames() {
		fmt.Println(name)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/AhmedAllam0/pingpong/internal/app"
	"github.com/AhmedAllam0/pingpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pingpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --2p                  Local two-player mode (arrows vs w/s)")
	fmt.Fprintln(os.Stderr, "  --difficulty <tier>   AI difficulty: easy, normal, hard (default: normal)")
	fmt.Fprintln(os.Stderr, "  --points <n>          Points to win (default: 7)")
	fmt.Fprintln(os.Stderr, "  --theme <name>        Color theme: classic, neon, sunset, ocean")
	fmt.Fprintln(os.Stderr, "  --no-sound            Disable audio feedback")
	fmt.Fprintln(os.Stderr, "  --reduced-motion      Tone down particles and screen shake")
	fmt.Fprintln(os.Stderr, "  --adaptive-ai         Scale AI speed with the score gap")
	fmt.Fprintln(os.Stderr, "  --no-powerups         Disable power-up spawning")
	fmt.Fprintln(os.Stderr, "  --powerup-rate <tier> Spawn rate: low, normal, high (default: normal)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pingpong --difficulty hard --adaptive-ai")
	fmt.Fprintln(os.Stderr, "  pingpong --2p --points 11 --theme neon")
}

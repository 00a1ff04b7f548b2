package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Wicker.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient (teal to violet)
	s1 := termenv.String("           _      _             ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("__      __(_) ___| | _____ _ __ ").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String("\\ \\ /\\ / /| |/ __| |/ / _ \\ '__|").Foreground(p.Color("#60a5fa"))
	s4 := termenv.String(" \\ V  V / | | (__|   <  __/ |   ").Foreground(p.Color("#818cf8"))
	s5 := termenv.String("  \\_/\\_/  |_|\\___|_|\\_\\___|_|   ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  v%s\n", version)
	fmt.Println()
}

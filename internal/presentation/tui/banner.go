package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the Dialogic CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to rose
	lines := []struct {
		text  string
		color string
	}{
		{`     _ _       _             _      `, "#818cf8"},
		{`  __| (_) __ _| | ___   __ _(_) ___ `, "#a78bfa"},
		{` / _' | |/ _' | |/ _ \ / _' | |/ __|`, "#c084fc"},
		{`| (_| | | (_| | | (_) | (_| | | (__ `, "#e879f9"},
		{` \__,_|_|\__,_|_|\___/ \__, |_|\___|`, "#f472b6"},
		{`                       |___/        `, "#fb7185"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}

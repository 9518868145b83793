package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder
	// starts, so ANSI escape sequences don't leak into the finder input
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectTag presents a fuzzy finder over the repository's tags.
// Returns the selected tag and true, or "" and false if the user cancelled
// (to fall back to entering a date by hand).
func SelectTag(tags []string) (string, bool) {
	if len(tags) == 0 {
		return "", false
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		tags,
		func(i int) string { return tags[i] },
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return "", false
	}

	return tags[idx], true
}

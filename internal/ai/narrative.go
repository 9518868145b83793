package ai

import (
	"context"
	"fmt"
	"strings"
)

// Sections are the fixed narrative headings, in document order. The fallback
// and the generated narrative both carry exactly this set, so the changelog
// document has the same structure either way.
var Sections = []string{
	"Major features",
	"Risks",
	"Impacts",
	"Disabled feature flags",
	"Known issues",
	"Out of scope",
	"Other notes",
}

const systemPrompt = "You are a release engineer writing a concise narrative summary " +
	"for a changelog. Only state what the provided changelog entries support. " +
	"Do not fabricate specifics."

// Narrative sends the composed changelog bullets to the completion API and
// returns the narrative sections verbatim, trimmed.
func (c *Client) Narrative(ctx context.Context, changelog string) (string, error) {
	return c.Generate(ctx, buildPrompt(changelog))
}

func buildPrompt(changelog string) string {
	var b strings.Builder
	b.WriteString("Summarize the following changelog entries into exactly these Markdown sections, in order:\n")
	for _, section := range Sections {
		fmt.Fprintf(&b, "## %s\n", section)
	}
	b.WriteString("\nUse a single \"- None\" bullet for any section with no supporting evidence. ")
	b.WriteString("Do not invent features, issues, or flags that the entries do not mention.\n")
	b.WriteString("\nChangelog entries:\n")
	b.WriteString(changelog)
	return b.String()
}

// Fallback returns the static narrative used when AI generation is disabled,
// unconfigured, or failed: every section present with a single "None" bullet.
func Fallback() string {
	var b strings.Builder
	for i, section := range Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n- None\n", section)
	}
	return strings.TrimRight(b.String(), "\n")
}

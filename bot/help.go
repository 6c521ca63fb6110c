package bot

import (
	"context"
	"strings"

	"github.com/mattn/go-runewidth"
)

func handleHelp(_ context.Context, b *Bot, _ *Command) (string, error) {
	return renderHelp(b.settings.Prefix, b.registry.Specs()), nil
}

// renderHelp lays the commands out as an aligned table in a code block.
// Width is measured in terminal cells so wide prefixes still line up.
func renderHelp(prefix string, specs []CommandSpec) string {
	invocations := make([]string, len(specs))
	width := 0
	for i, spec := range specs {
		inv := prefix + spec.Name
		if spec.Usage != "" {
			inv += " " + spec.Usage
		}
		invocations[i] = inv
		if w := runewidth.StringWidth(inv); w > width {
			width = w
		}
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for i, spec := range specs {
		sb.WriteString(runewidth.FillRight(invocations[i], width))
		sb.WriteString("  ")
		sb.WriteString(spec.Summary)
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

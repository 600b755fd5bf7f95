// Package preview renders the effective options as a unified diff against
// the module defaults.
package preview

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/messages"
)

const (
	// DefaultMaxLines is the default maximum number of diff lines shown.
	DefaultMaxLines = 40
	// MaxLinesFlagName is the CLI flag name used to raise the line cap.
	MaxLinesFlagName = "--diff-lines"
)

// Preview is a rendered options diff.
type Preview struct {
	UnifiedDiff string
	Truncated   bool
}

// Empty reports whether the effective options equal the defaults.
func (p Preview) Empty() bool {
	return p.UnifiedDiff == ""
}

// Options renders opts against the module defaults, both as TOML.
// maxLines caps the diff; non-positive values use DefaultMaxLines.
func Options(opts config.Options, maxLines int) (Preview, error) {
	from, err := config.MarshalSettings(config.Defaults())
	if err != nil {
		return Preview{}, fmt.Errorf(messages.PreviewMarshalFailedFmt, messages.PreviewFromName, err)
	}
	to, err := config.MarshalSettings(opts.Settings())
	if err != nil {
		return Preview{}, fmt.Errorf(messages.PreviewMarshalFailedFmt, messages.PreviewToName, err)
	}
	rendered, truncated := renderTruncatedUnifiedDiff(messages.PreviewFromName, messages.PreviewToName, string(from), string(to), maxLines)
	return Preview{UnifiedDiff: rendered, Truncated: truncated}, nil
}

func normalizeMaxLines(value int) int {
	if value <= 0 {
		return DefaultMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.PreviewTruncatedFmt, limit, MaxLinesFlagName))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/preview"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var maxLines int
	cmd := &cobra.Command{
		Use:   messages.PreviewUse,
		Short: messages.PreviewShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, nil, false)
			if err != nil {
				return err
			}
			p, err := preview.Options(s.opts, maxLines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p.Empty() {
				_, _ = fmt.Fprintln(out, messages.PreviewNoChanges)
				return nil
			}
			colors := newPalette(out)
			for _, line := range strings.SplitAfter(p.UnifiedDiff, "\n") {
				switch {
				case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
					_, _ = fmt.Fprint(out, colors.muted.Sprint(line))
				case strings.HasPrefix(line, "+"):
					_, _ = fmt.Fprint(out, colors.success.Sprint(line))
				case strings.HasPrefix(line, "-"):
					_, _ = fmt.Fprint(out, colors.err.Sprint(line))
				default:
					_, _ = fmt.Fprint(out, line)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxLines, strings.TrimPrefix(preview.MaxLinesFlagName, "--"), preview.DefaultMaxLines, messages.FlagDiffMax)
	return cmd
}

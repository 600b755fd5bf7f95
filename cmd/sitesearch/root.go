package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/terminal"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	hostPath     string
	settingsPath string
	sitePath     string
	quiet        bool
}

// session is everything a command needs for one request.
type session struct {
	snapshot *host.Snapshot
	host     host.Host
	resolver config.Resolver
	saved    config.Settings
	opts     config.Options
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          heredoc.Doc(messages.RootLong),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.hostPath, "host", messages.DefaultHostPath, messages.FlagHost)
	pf.StringVar(&flags.settingsPath, "settings", "", messages.FlagSettings)
	pf.StringVar(&flags.sitePath, "site", "", messages.FlagSite)
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, messages.FlagQuiet)

	cmd.AddCommand(
		newOptionsCmd(flags),
		newValidateCmd(flags),
		newFormCmd(flags),
		newDiffCmd(flags),
		newPreviewCmd(flags),
		newEditCmd(flags),
	)
	return cmd
}

// loadSession reads the host snapshot, site overrides, and saved settings.
// lenient skips settings validation so the editor can repair bad settings.
func loadSession(flags *rootFlags, input host.Input, lenient bool) (*session, error) {
	hostPath, err := expandPath(flags.hostPath)
	if err != nil {
		return nil, err
	}
	snap, err := host.LoadSnapshot(hostPath)
	if err != nil {
		return nil, err
	}

	sitePath, err := expandPath(flags.sitePath)
	if err != nil {
		return nil, err
	}
	site, err := config.LoadSiteOverrides(sitePath)
	if err != nil {
		return nil, err
	}

	var saved config.Settings
	if flags.settingsPath != "" {
		settingsPath, err := expandPath(flags.settingsPath)
		if err != nil {
			return nil, err
		}
		load := config.LoadSettings
		if lenient {
			load = config.LoadSettingsLenient
		}
		saved, err = load(settingsPath)
		if err != nil {
			return nil, err
		}
	}

	resolver := config.NewResolver(site)
	return &session{
		snapshot: snap,
		host:     snap.Host(input),
		resolver: resolver,
		saved:    saved,
		opts:     resolver.Resolve(saved),
	}, nil
}

func expandPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}

// palette colours command output when it goes to a terminal.
type palette struct {
	info    *color.Color
	warning *color.Color
	err     *color.Color
	success *color.Color
	muted   *color.Color
}

func newPalette(out io.Writer) palette {
	p := palette{
		info:    color.New(color.FgCyan),
		warning: color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		success: color.New(color.FgGreen),
		muted:   color.New(color.Faint),
	}
	enabled := terminal.IsTerminalWriter(out) && !color.NoColor
	for _, c := range []*color.Color{p.info, p.warning, p.err, p.success, p.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

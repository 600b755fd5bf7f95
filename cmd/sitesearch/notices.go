package main

import (
	"fmt"
	"io"

	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/notice"
)

// terminalBus is the CLI's notice bus: one coloured line per notice.
// Markup is reduced to plain text since a terminal cannot render links.
type terminalBus struct {
	out    io.Writer
	colors palette
}

func newTerminalBus(out io.Writer) *terminalBus {
	return &terminalBus{out: out, colors: newPalette(out)}
}

func (b *terminalBus) Message(text string, allowMarkup bool) {
	if allowMarkup {
		text = notice.PlainText(text)
	}
	b.print(b.colors.info.Sprint(messages.NoticeInfoPrefix), text)
}

func (b *terminalBus) Warning(text string) {
	b.print(b.colors.warning.Sprint(messages.NoticeWarningPrefix), text)
}

func (b *terminalBus) Error(text string) {
	b.print(b.colors.err.Sprint(messages.NoticeErrorPrefix), text)
}

func (b *terminalBus) print(prefix string, text string) {
	_, _ = fmt.Fprintf(b.out, messages.NoticeLineFmt, prefix, text)
}

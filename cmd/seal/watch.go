package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/bouncing-seal/internal/core"
	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
	"github.com/vovakirdan/bouncing-seal/internal/platform/tui"
)

// termRenderer draws loop frames straight to a terminal, redrawing in place.
type termRenderer struct {
	w      io.Writer
	screen *core.Screen
}

func newTermRenderer(w io.Writer) *termRenderer {
	width, height := 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = tw, th-1
		}
	}
	fmt.Fprint(w, "\x1b[2J")
	return &termRenderer{w: w, screen: core.NewScreen(width, height)}
}

// Draw rasterises the frame and moves the cursor home before printing it.
func (r *termRenderer) Draw(f seal.Frame) {
	seal.ScreenRenderer{Screen: r.screen}.Draw(f)
	fmt.Fprint(r.w, "\x1b[H"+tui.RenderScreen(r.screen))
}

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/vietanhduong/symguess/pkg/syms"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// NewFormatter picks the styled formatter when mode asks for it, or in auto
// mode when w is a color capable terminal.
func NewFormatter(mode ColorMode, w io.Writer, demangle syms.DemangleType) Formatter {
	if mode == ColorAlways || (mode == ColorAuto && isTerminal(w)) {
		return NewStyled(demangle)
	}
	return &Plain{Demangle: demangle}
}

func isTerminal(w io.Writer) bool {
	// color.NoColor already folds in NO_COLOR, TERM=dumb and the stdout tty check.
	if w == os.Stdout || color.NoColor {
		return !color.NoColor
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

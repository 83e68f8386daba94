package display

import (
	"io"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	color.New(color.FgHiMagenta, color.Bold).Fprint(w, ` _   _                     _           _           _
| |_| |__  _   _ _ __ ___ | |__  ___| |__   ___  ___| |_
| __| '_ \| | | | '_ `+"`"+` _ \| '_ \/ __| '_ \ / _ \/ _ \ __|
| |_| | | | |_| | | | | | | |_) \__ \ | | |  __/  __/ |_
 \__|_| |_|\__,_|_| |_| |_|_.__/|___/_| |_|\___|\___|\__|
`)
}

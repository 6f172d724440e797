package cli

import "github.com/fatih/color"

// Terminal palette: cyan headers, green success, yellow notices, red errors,
// magenta dates and hints. Core data stays plain; only this package styles it.
var (
	styleBanner  = color.New(color.FgCyan, color.Bold)
	styleHeader  = color.New(color.FgCyan)
	styleSuccess = color.New(color.FgGreen)
	styleNotice  = color.New(color.FgYellow)
	styleError   = color.New(color.FgRed)
	styleName    = color.New(color.FgYellow)
	styleDate    = color.New(color.FgMagenta)
	styleHint    = color.New(color.FgMagenta)
)

// DisableColors turns all styling off, for --no-color and non-TTY output.
func DisableColors() {
	color.NoColor = true
}

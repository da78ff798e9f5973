package diagram

// Palette maps semantic element roles to hex colors. It is constructed once
// (usually via [DefaultPalette] or a theme file) and carried inside [Config];
// nothing in this package holds process-wide color state.
type Palette struct {
	Input      string // input block fill
	Projection string // projection block fill
	Recur      string // recurrent region stroke, feedback loop, captions
	RecurFill  string // recurrent region fill
	Residual   string // conv and residual block fill
	Head       string // head block fill
	Output     string // prediction block fill
	Arrow      string // main-flow arrows
	Concat     string // concat marker and injection path
	Text       string // block titles
	Gray       string // block subtitles
	Edge       string // block and marker outlines
}

// DefaultPalette returns the hand-tuned material-style color scheme.
func DefaultPalette() Palette {
	return Palette{
		Input:      "#E3F2FD",
		Projection: "#90CAF9",
		Recur:      "#4CAF50",
		RecurFill:  "#E8F5E9",
		Residual:   "#A5D6A7",
		Head:       "#FFE0B2",
		Output:     "#FFF3E0",
		Arrow:      "#37474F",
		Concat:     "#7B1FA2",
		Text:       "#212121",
		Gray:       "#757575",
		Edge:       "#424242",
	}
}

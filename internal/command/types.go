package command

// Parsed is a raw REPL input line split into its command name, arguments,
// and an optional display codec modifier, with lookup documentation
// attached when the name is recognized.
type Parsed struct {
	Text     string   // original input text
	Name     string   // command name, uppercased; empty if the line was blank
	Args     []string // command arguments, nil if none
	Modifier string   // codec name requested via "#:name", empty if none
	Doc      *Doc     // documentation, nil if not found
}

// Doc describes a single command's calling convention, shown by respline's
// HELP command. Nothing here depends on a live server:
// every entry is either a built-in REPL command or a static syntax summary.
type Doc struct {
	Command   string `json:"command"`
	Summary   string `json:"summary"`
	Arguments string `json:"arguments"`
	Since     string `json:"since"`
	Group     string `json:"group"`
}

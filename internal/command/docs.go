package command

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed commands.json
var commandsJSON []byte

// Registry holds command syntax documentation for respline's HELP command
// and its tab completion. It is static: nothing populates it from a
// live server, since this tool never opens a connection.
type Registry struct {
	docs  []Doc
	index map[string]int // uppercased command name -> index in docs
}

// NewRegistry parses the embedded syntax table plus a handful of
// REPL-only pseudo-commands.
func NewRegistry() (*Registry, error) {
	var docs []Doc
	if err := json.Unmarshal(commandsJSON, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse embedded command docs: %w", err)
	}

	docs = append(docs,
		Doc{Command: "EXIT", Summary: "Exit respline", Group: "application"},
		Doc{Command: "HELP", Summary: "Show help for a command", Arguments: "[command]", Group: "application"},
		Doc{Command: "CLEAR", Summary: "Clear the screen", Group: "application"},
	)

	idx := make(map[string]int, len(docs))
	for i, doc := range docs {
		idx[strings.ToUpper(doc.Command)] = i
	}

	return &Registry{docs: docs, index: idx}, nil
}

// Get returns the documentation for cmd, or nil if it isn't recognized.
func (r *Registry) Get(cmd string) *Doc {
	if i, ok := r.index[strings.ToUpper(cmd)]; ok {
		return &r.docs[i]
	}
	return nil
}

// GetCommands returns every known command name starting with prefix,
// for readline tab completion.
func (r *Registry) GetCommands(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	var matches []string
	for _, doc := range r.docs {
		if strings.HasPrefix(doc.Command, prefix) {
			matches = append(matches, doc.Command)
		}
	}
	return matches
}

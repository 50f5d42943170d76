package command

import (
	"fmt"
	"strings"

	"github.com/kbcode/resp2/internal/codec"
	"github.com/kbcode/resp2/internal/resp"
)

// Parse takes a raw respline input line, extracts an optional "#:codec"
// display modifier, tokenizes the remainder into a name and arguments, and
// attaches the command's documentation when reg knows it. It never opens a
// connection; Parsed.Encode builds the RESP2 command value, and the caller
// decides what to do with it (typically feed its Encode() back through a
// Parser to demonstrate fragmentation, per cmd/respline).
func Parse(input string, reg *Registry) (*Parsed, error) {
	if strings.TrimSpace(input) == "" {
		return &Parsed{}, nil
	}

	parsed := &Parsed{Text: input}

	if codecIdx := strings.LastIndex(input, "#:"); codecIdx != -1 {
		parsed.Modifier = strings.TrimSpace(input[codecIdx+2:])
		input = input[:codecIdx]
	}

	tokens := tokenize(input)
	if len(tokens) == 0 {
		return parsed, nil
	}

	parsed.Name = strings.ToUpper(tokens[0])
	if len(tokens) > 1 {
		parsed.Args = tokens[1:]
	}

	if reg != nil {
		parsed.Doc = reg.Get(parsed.Name)
		if parsed.Doc == nil && len(parsed.Args) > 0 {
			parsed.Doc = reg.Get(parsed.Name + " " + strings.ToUpper(parsed.Args[0]))
		}
	}

	return parsed, nil
}

// Encode renders p as the RESP2 command array it describes, applying p's
// codec modifier (if any) to the value argument of a SET. It is kept
// separate from Parse so a caller can inspect Doc/Name before deciding
// whether encoding is even meaningful (e.g. for a bare "HELP").
func (p *Parsed) Encode() (resp.RespValue, error) {
	argv := make([][]byte, 0, len(p.Args)+1)
	argv = append(argv, []byte(p.Name))
	for i, arg := range p.Args {
		argBytes := []byte(arg)
		if p.Name == "SET" && i == 1 && p.Modifier != "" {
			c, err := codec.Get(p.Modifier)
			if err != nil {
				return nil, fmt.Errorf("failed to get codec %q: %w", p.Modifier, err)
			}
			encoded, err := c.Serialize(argBytes)
			if err != nil {
				return nil, fmt.Errorf("failed to apply codec %q: %w", p.Modifier, err)
			}
			argBytes = encoded
		}
		argv = append(argv, argBytes)
	}
	return resp.MakeCommand(argv), nil
}

// Command respline is an interactive REPL for composing RESP2 commands.
// Each line is tokenized and encoded the same way a client would encode
// it for the wire, then immediately fed back through a resp.Parser in
// fragments — so typing a command doubles as a fragmentation-invariance
// demo. It never opens a socket.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/kbcode/resp2/internal/command"
	"github.com/kbcode/resp2/internal/feeder"
	"github.com/kbcode/resp2/internal/inspect"
	"github.com/kbcode/resp2/internal/resp"
)

var (
	version = "dev"

	fragmentMode string
	fragmentSize int
	useColor     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "respline",
		Short:   "Interactively compose and re-parse RESP2 commands",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}

	rootCmd.Flags().StringVar(&fragmentMode, "fragment", "whole", "fragmentation strategy applied when re-parsing: whole|fixed|byte")
	rootCmd.Flags().IntVar(&fragmentSize, "fragment-size", 4, "fragment size for --fragment=fixed")
	rootCmd.Flags().BoolVar(&useColor, "color", true, "colorize output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRepl() error {
	reg, err := command.NewRegistry()
	if err != nil {
		return fmt.Errorf("respline: failed to load command docs: %w", err)
	}

	completer := readline.NewPrefixCompleter(completionItems(reg)...)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "resp> ",
		AutoComplete: completer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToUpper(line) {
		case "EXIT":
			return nil
		case "CLEAR":
			fmt.Print("\033[H\033[2J")
			continue
		}

		if err := handleLine(line, reg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func handleLine(line string, reg *command.Registry) error {
	parsed, err := command.Parse(line, reg)
	if err != nil {
		return err
	}

	if parsed.Name == "HELP" {
		printHelp(parsed, reg)
		return nil
	}
	if parsed.Name == "" {
		return nil
	}

	value, err := parsed.Encode()
	if err != nil {
		return err
	}

	fmt.Printf("encoded %d bytes: %q\n", len(value.Encode()), value.Encode())

	p := resp.NewDefaultParser()
	var reparsed []resp.RespValue
	for fragment := range fragments(value.Encode()) {
		got, err := p.Feed(fragment)
		if err != nil {
			return fmt.Errorf("re-parse failed: %w", err)
		}
		reparsed = append(reparsed, got...)
	}

	opts := inspect.PrintOpts{Color: useColor, Newline: true}
	for i, v := range reparsed {
		fmt.Printf("%d) ", i+1)
		inspect.PrintValue(os.Stdout, v, opts)
	}

	return nil
}

func printHelp(parsed *command.Parsed, reg *command.Registry) {
	if len(parsed.Args) == 0 {
		fmt.Println("type a command (e.g. SET key value) or HELP <command>")
		return
	}
	doc := reg.Get(strings.ToUpper(parsed.Args[0]))
	if doc == nil {
		fmt.Printf("no documentation for %q\n", parsed.Args[0])
		return
	}
	fmt.Printf("%s %s\n  %s\n", doc.Command, doc.Arguments, doc.Summary)
}

func fragments(data []byte) func(func([]byte) bool) {
	switch fragmentMode {
	case "fixed":
		return feeder.FixedSize(data, fragmentSize)
	case "byte":
		return feeder.ByteAtATime(data)
	default:
		return feeder.FixedSize(data, 0)
	}
}

func completionItems(reg *command.Registry) []readline.PrefixCompleterInterface {
	names := reg.GetCommands("")
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return items
}

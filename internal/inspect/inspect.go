// Package inspect renders parsed RESP2 values for a human reading a
// terminal. It is pure presentation: every function here takes a
// resp.RespValue that has already been produced by a Parser and never
// constructs or mutates wire bytes itself.
package inspect

import (
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"github.com/kbcode/resp2/internal/codec"
	"github.com/kbcode/resp2/internal/resp"
)

// PrintOpts configures how a value is rendered.
type PrintOpts struct {
	Color   bool
	Codec   codec.Codec // applied to BulkString payloads before display; nil means raw
	Padding string
	Newline bool
}

var (
	colorString  = color.New(color.FgHiBlue)
	colorInteger = color.New(color.FgHiGreen)
	colorError   = color.New(color.FgRed, color.Bold)
	colorNull    = color.New(color.FgHiBlack)
	colorIndex   = color.New(color.FgHiBlack)
)

func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}

func printIndex(w io.Writer, idx string, useColor bool) {
	if useColor {
		colorIndex.Fprint(w, idx)
	} else {
		fmt.Fprint(w, idx)
	}
}

// PrintValues prints a sequence of committed values with pagination: every
// warningAt values it prompts on r before continuing, so a long stream of
// frames (as respdump might produce from a fragmented capture) doesn't
// flood the terminal unasked.
func PrintValues(w io.Writer, r io.Reader, values iter.Seq[resp.RespValue], opts PrintOpts, warningAt int) {
	i := 0
	for value := range values {
		i++
		printIndex(w, fmt.Sprintf("%d) ", i), opts.Color)
		PrintValue(w, value, opts)

		if warningAt > 0 && i%warningAt == 0 {
			fmt.Fprint(w, "Continue listing? ")
			fmt.Fprint(w, "(Y/N) ")

			var line []byte
			buf := make([]byte, 1)
			for {
				n, err := r.Read(buf)
				if n > 0 {
					line = append(line, buf[0])
					if buf[0] == '\n' {
						break
					}
				}
				if err != nil {
					break
				}
			}

			ans := strings.TrimSpace(string(line))
			if len(ans) == 0 || (ans[0] != 'Y' && ans[0] != 'y') {
				break
			}
		}
	}
}

// PrintValue writes v to w, recursing into Array elements with increasing
// indentation so nested frames read as a tree.
func PrintValue(w io.Writer, v resp.RespValue, opts PrintOpts) {
	if v == nil {
		return
	}

	decode := func(data []byte) string {
		if opts.Codec != nil {
			if decoded, err := opts.Codec.Deserialize(data); err == nil {
				return string(decoded)
			}
		}
		return string(data)
	}

	if array, ok := v.(resp.Array); ok {
		printArray(w, array, opts)
		return
	}

	var outputText string
	var c *color.Color

	switch val := v.(type) {
	case resp.SimpleString:
		outputText = val.Text
		c = colorString
	case resp.Error:
		outputText = val.Text
		c = colorError
	case resp.Integer:
		outputText = fmt.Sprintf("(integer) %d", val.Value)
		c = colorInteger
	case resp.BulkString:
		outputText = fmt.Sprintf("%q", decode(val.Data))
		c = colorString
	case resp.NullBulkString:
		outputText = "(nil)"
		c = colorNull
	case resp.NullArrayValue:
		outputText = "(nil array)"
		c = colorNull
	default:
		outputText = fmt.Sprintf("(unrecognized value %T)", v)
	}

	if opts.Color && c != nil {
		c.Fprint(w, outputText)
	} else {
		fmt.Fprint(w, outputText)
	}
	if opts.Newline {
		fmt.Fprintln(w)
	}
}

func printArray(w io.Writer, array resp.Array, opts PrintOpts) {
	if len(array.Elements) == 0 {
		if opts.Color {
			colorNull.Fprint(w, "(empty array)")
		} else {
			fmt.Fprint(w, "(empty array)")
		}
		if opts.Newline {
			fmt.Fprintln(w)
		}
		return
	}

	digits := digitWidth(len(array.Elements))
	idxWidth := digits + 2

	for i, el := range array.Elements {
		idxStr := fmt.Sprintf("%*d) ", digits, i+1)

		if i > 0 {
			fmt.Fprint(w, opts.Padding)
		}
		printIndex(w, idxStr, opts.Color)

		childOpts := opts
		childOpts.Padding = opts.Padding + strings.Repeat(" ", idxWidth)
		childOpts.Newline = false
		PrintValue(w, el, childOpts)

		if childArray, ok := el.(resp.Array); ok && len(childArray.Elements) > 0 {
			// nested array already terminated its own last line
		} else {
			fmt.Fprintln(w)
		}
	}
}

// PipeValue streams v's raw encoded bytes to shellCmd's stdin, letting a
// user inspect a captured frame with an external tool (jq, xxd, and so on).
func PipeValue(w io.Writer, v resp.RespValue, shellCmd string) error {
	if shellCmd == "" {
		return nil
	}
	args := strings.Fields(shellCmd)
	if len(args) == 0 {
		return nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = w
	cmd.Stderr = w

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	stdin.Write(v.Encode())
	stdin.Close()

	return cmd.Wait()
}

// ExportValues writes every value in a committed sequence to filename, one
// bulk/simple text rendering per line, for later diffing or archival.
func ExportValues(filename string, values iter.Seq[resp.RespValue]) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	for value := range values {
		writeFlatValue(f, value)
	}
	return nil
}

func writeFlatValue(w io.Writer, v resp.RespValue) {
	if v == nil {
		return
	}
	if array, ok := v.(resp.Array); ok {
		for _, el := range array.Elements {
			writeFlatValue(w, el)
		}
		return
	}

	var text string
	switch val := v.(type) {
	case resp.SimpleString:
		text = val.Text
	case resp.Error:
		text = val.Text
	case resp.Integer:
		text = fmt.Sprintf("%d", val.Value)
	case resp.BulkString:
		text = string(val.Data)
	case resp.NullBulkString:
		text = "(nil)"
	case resp.NullArrayValue:
		text = "(nil array)"
	}
	fmt.Fprintln(w, text)
}

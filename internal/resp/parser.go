package resp

import "strconv"

// Parser is a resumable RESP2 decoder. It owns a staging buffer and, across
// calls to Feed, an optional saved parserState describing exactly where it
// left off — including, for a nested Array, the child state of the element
// currently under construction. A Parser is plain data driven synchronously
// by its caller: there is no internal goroutine, channel, or callback.
//
// A Parser is not safe for concurrent use. Once Feed returns an error the
// parser is poisoned: its staging buffer has been cleared and further calls
// are not guaranteed to produce anything meaningful.
type Parser struct {
	config Config
	buffer []byte
	state  *parserState
}

// NewParser returns a Parser governed by cfg.
func NewParser(cfg Config) *Parser {
	return &Parser{config: cfg}
}

// NewDefaultParser returns a Parser using DefaultConfig.
func NewDefaultParser() *Parser {
	return NewParser(DefaultConfig())
}

// Feed appends b to the staging buffer and advances the state machine as
// far as the buffered bytes allow, returning every value whose closing
// CRLF is now present, in the order those CRLFs appeared in the stream.
// Concatenation law: Feed(a) followed by Feed(b) yields the same values,
// in the same order, as a single Feed(a++b), for any split of the input.
//
// A non-nil error means the staging buffer has been cleared and the
// parser should be discarded; no value is returned from the call that
// raised it.
func (p *Parser) Feed(b []byte) ([]RespValue, error) {
	p.buffer = append(p.buffer, b...)
	if len(p.buffer) > p.config.MaxBufferSize {
		p.buffer = nil
		p.state = nil
		return nil, sizeExceededErr("staging buffer exceeds max buffer size")
	}

	state := p.state
	if state == nil {
		state = newGetTypeState(0)
	}

	var values []RespValue
	for {
		outcome, err := p.drive(state)
		if err != nil {
			p.buffer = nil
			p.state = nil
			return nil, err
		}
		if !outcome.done {
			p.state = outcome.incomplete
			return values, nil
		}

		values = append(values, outcome.value)
		p.drain(outcome.end)
		state = newGetTypeState(0)
	}
}

// Buffered returns a copy of the bytes staged but not yet committed to a
// value. It exists for inspection tools; the parser itself never exposes
// this slice for mutation.
func (p *Parser) Buffered() []byte {
	out := make([]byte, len(p.buffer))
	copy(out, p.buffer)
	return out
}

// StateLabel describes the parser's current resumption point for display
// purposes, e.g. "idle", "Array" or "Array -> BulkString" for a bulk
// string nested inside an in-progress array.
func (p *Parser) StateLabel() string {
	if p.state == nil {
		return "idle"
	}
	labels := make([]string, 0, p.state.depth())
	for cur := p.state; cur != nil; cur = cur.child {
		// A GetType state is only waiting for the next type byte; it adds
		// nothing to the frame in progress.
		if cur.tag != stateGetType {
			labels = append(labels, cur.tag.String())
		}
	}
	if len(labels) == 0 {
		return "idle"
	}
	out := labels[0]
	for _, l := range labels[1:] {
		out += " -> " + l
	}
	return out
}

// drain removes the first n bytes of the staging buffer in place by copying
// the remainder to the front, which costs O(len(buffer)) per drain. A ring
// buffer would make this O(1) amortized.
func (p *Parser) drain(n int) {
	remaining := copy(p.buffer, p.buffer[n:])
	p.buffer = p.buffer[:remaining]
	p.state = nil
}

// drive routes a parserState to the handler matching its tag. Dispatch is
// exhaustive by construction: every *parserState value this package
// creates carries a tag one of the four handlers below recognizes, so the
// default case is reachable only through a parser bug, never through wire
// input.
func (p *Parser) drive(s *parserState) (stateOutcome, error) {
	switch s.tag {
	case stateGetType:
		return p.driveGetType(s)
	case stateSimple:
		return p.driveSimple(s)
	case stateBulkString:
		return p.driveBulkString(s)
	case stateArray:
		return p.driveArray(s)
	default:
		return stateOutcome{}, stateErr("unrecognized state tag")
	}
}

// driveGetType inspects the byte at s.cursor and selects the next state
// by RESP2 type prefix. Per spec: if no byte is buffered yet, it reports
// Incomplete without consuming anything; if exactly the prefix byte is
// buffered, it reports Incomplete on the freshly selected child state
// without attempting further work on it.
func (p *Parser) driveGetType(s *parserState) (stateOutcome, error) {
	if len(p.buffer) <= s.cursor {
		return incompleteOutcome(newGetTypeState(s.cursor)), nil
	}

	b := p.buffer[s.cursor]
	next := s.cursor + 1

	var child *parserState
	switch b {
	case '+':
		child = newSimpleState(next, simpleKindString)
	case '-':
		child = newSimpleState(next, simpleKindError)
	case ':':
		child = newSimpleState(next, simpleKindInteger)
	case '$':
		child = newBulkStringState(next)
	case '*':
		child = newArrayState(next)
	default:
		return stateOutcome{}, invalidTypeTokenErr(b)
	}

	if len(p.buffer) > next {
		return p.drive(child)
	}
	return incompleteOutcome(child), nil
}

// driveSimple accumulates a CRLF-terminated line for SimpleString, Error,
// or Integer and, once complete, routes it through the same guarded
// constructor a direct caller would use — so the no-CR/no-LF invariant is
// enforced on this path too, not just at construction time.
func (p *Parser) driveSimple(s *parserState) (stateOutcome, error) {
	res, err := readLine(p.buffer, s.cursor, s.start)
	if err != nil {
		return stateOutcome{}, err
	}
	if !res.complete {
		return incompleteOutcome(&parserState{
			tag: stateSimple, cursor: res.nextCursor, start: s.start, simple: s.simple,
		}), nil
	}

	if len(res.text) > p.config.MaxValueSize {
		return stateOutcome{}, sizeExceededErr("simple value exceeds max value size")
	}

	var value RespValue
	switch s.simple {
	case simpleKindString:
		value, err = NewSimpleString(res.text)
	case simpleKindError:
		value, err = NewError(res.text)
	case simpleKindInteger:
		n, perr := strconv.ParseInt(res.text, 10, 64)
		if perr != nil {
			return stateOutcome{}, invalidIntegerErr(res.text)
		}
		value = NewInteger(n)
	default:
		return stateOutcome{}, stateErr("unrecognized simple kind")
	}
	if err != nil {
		return stateOutcome{}, err
	}

	return doneOutcome(value, res.nextCursor), nil
}

// driveBulkString implements the two-phase bulk string: read the length
// prefix, then the payload plus trailing CRLF, resuming at whichever
// phase was interrupted.
func (p *Parser) driveBulkString(s *parserState) (stateOutcome, error) {
	cursor, size := s.cursor, s.size

	if size < 0 {
		res, err := readSize(p.buffer, cursor, s.start)
		if err != nil {
			return stateOutcome{}, err
		}
		switch res.kind {
		case sizeResultNeedMore:
			return incompleteOutcome(&parserState{
				tag: stateBulkString, cursor: res.nextCursor, start: s.start, size: -1,
			}), nil
		case sizeResultNull:
			return doneOutcome(NewNullBulkString(), res.nextCursor), nil
		default: // sizeResultSize
			cursor, size = res.nextCursor, res.size
		}
	}

	if size > p.config.MaxValueSize {
		return stateOutcome{}, sizeExceededErr("bulk string length exceeds max value size")
	}

	data, end, ok, err := readBlob(p.buffer, cursor, size)
	if err != nil {
		return stateOutcome{}, err
	}
	if !ok {
		return incompleteOutcome(&parserState{
			tag: stateBulkString, cursor: cursor, start: s.start, size: size,
		}), nil
	}

	payload := make([]byte, len(data))
	copy(payload, data)
	return doneOutcome(NewBulkString(payload), end), nil
}

// driveArray implements the two-phase array: read the element count, then
// iteratively parse each element, resuming from a saved child state when
// the element itself was left mid-frame. The child state lets an Array
// suspend inside an arbitrarily nested element without any extra
// bookkeeping beyond this one pointer.
func (p *Parser) driveArray(s *parserState) (stateOutcome, error) {
	cursor, size := s.cursor, s.size
	elements := s.elements
	child := s.child

	if size < 0 {
		res, err := readSize(p.buffer, cursor, s.start)
		if err != nil {
			return stateOutcome{}, err
		}
		switch res.kind {
		case sizeResultNeedMore:
			return incompleteOutcome(&parserState{
				tag: stateArray, cursor: res.nextCursor, start: s.start, size: -1,
			}), nil
		case sizeResultNull:
			return doneOutcome(NewNullArray(), res.nextCursor), nil
		default: // sizeResultSize
			if res.size == 0 {
				return doneOutcome(NewArray(nil), res.nextCursor), nil
			}
			cursor, size = res.nextCursor, res.size
		}
	}

	if size > p.config.MaxValueSize {
		return stateOutcome{}, sizeExceededErr("array element count exceeds max value size")
	}
	if elements == nil {
		elements = make([]RespValue, 0, size)
	}

	for len(elements) < size {
		var cur *parserState
		if child != nil {
			cur, child = child, nil
		} else {
			cur = newGetTypeState(cursor)
		}

		outcome, err := p.drive(cur)
		if err != nil {
			return stateOutcome{}, err
		}
		if !outcome.done {
			return incompleteOutcome(&parserState{
				tag: stateArray, cursor: cursor, start: s.start,
				size: size, elements: elements, child: outcome.incomplete,
			}), nil
		}

		cursor = outcome.end
		elements = append(elements, outcome.value)
	}

	return doneOutcome(NewArray(elements), cursor), nil
}

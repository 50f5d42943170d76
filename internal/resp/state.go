package resp

// stateTag identifies which handler a parserState must be routed to.
// Dispatch on this tag is exhaustive; reaching an unhandled tag is a
// stateErr, never a wire violation.
type stateTag int

const (
	stateGetType stateTag = iota
	stateSimple
	stateBulkString
	stateArray
)

func (t stateTag) String() string {
	switch t {
	case stateGetType:
		return "GetType"
	case stateSimple:
		return "Simple"
	case stateBulkString:
		return "BulkString"
	case stateArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// depth reports how many states this state's child chain holds, this one
// included, for display purposes only — it is not consulted by the driver.
func (s *parserState) depth() int {
	d := 0
	for cur := s; cur != nil; cur = cur.child {
		d++
	}
	return d
}

// simpleKind distinguishes the three line-framed variants that share the
// Simple state: SimpleString, Error, and Integer all just accumulate a
// CRLF-terminated line and differ only in how that line becomes a value.
type simpleKind int

const (
	simpleKindString simpleKind = iota
	simpleKindError
	simpleKindInteger
)

// parserState is the parser's resumption point: a single owned value with
// no aliasing, so it can be saved verbatim between Feed calls and, for
// Array, recursively carries the child state of the element currently
// under construction. This mirrors the boxed Rust enum in
// original_source/src/parser.rs using a tagged struct plus a *parserState
// child pointer instead of an algebraic enum, since Go has neither.
type parserState struct {
	tag   stateTag
	start int

	// valid for all tags
	cursor int

	// valid for stateSimple
	simple simpleKind

	// valid for stateBulkString and stateArray: -1 means "not yet known"
	size int

	// valid for stateArray
	elements []RespValue
	child    *parserState
}

func newGetTypeState(cursor int) *parserState {
	return &parserState{tag: stateGetType, cursor: cursor, start: cursor, size: -1}
}

func newSimpleState(cursor int, kind simpleKind) *parserState {
	return &parserState{tag: stateSimple, cursor: cursor, start: cursor, simple: kind}
}

func newBulkStringState(cursor int) *parserState {
	return &parserState{tag: stateBulkString, cursor: cursor, start: cursor, size: -1}
}

func newArrayState(cursor int) *parserState {
	return &parserState{tag: stateArray, cursor: cursor, start: cursor, size: -1}
}

// stateOutcome is what driving a state one step produces: either the state
// machine needs more bytes (carrying the state to resume from) or it
// produced a value and the cursor at which the value's frame ends.
type stateOutcome struct {
	done       bool
	value      RespValue
	end        int
	incomplete *parserState
}

func incompleteOutcome(s *parserState) stateOutcome {
	return stateOutcome{incomplete: s}
}

func doneOutcome(v RespValue, end int) stateOutcome {
	return stateOutcome{done: true, value: v, end: end}
}

package command

import (
	"time"
)

// Kind is the closed set of commands understood by the interpreter.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
	KindList
	KindMark
	KindUnmark
	KindDelete
	KindFindDate
	KindFind
	KindBye
)

// keywords is ordered as shown to the user.
var keywords = []struct {
	word string
	kind Kind
}{
	{"todo", KindTodo},
	{"deadline", KindDeadline},
	{"event", KindEvent},
	{"list", KindList},
	{"mark", KindMark},
	{"unmark", KindUnmark},
	{"delete", KindDelete},
	{"find-date", KindFindDate},
	{"find", KindFind},
	{"bye", KindBye},
}

var byKeyword = func() map[string]Kind {
	m := make(map[string]Kind, len(keywords))
	for _, k := range keywords {
		m[k.word] = k.kind
	}
	return m
}()

// Keyword returns the input keyword for k.
func (k Kind) Keyword() string {
	for _, kw := range keywords {
		if kw.kind == k {
			return kw.word
		}
	}
	return "unknown"
}

func (k Kind) String() string {
	return k.Keyword()
}

// Keywords lists every accepted keyword in display order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, k.word)
	}
	return out
}

// Command is one interpreted input line. Arguments is already trimmed.
type Command struct {
	Kind      Kind
	Arguments string
}

// IsExit reports whether the command ends the session.
func (c Command) IsExit() bool {
	return c.Kind == KindBye
}

// DateResolver turns date and date-time text into concrete instants.
type DateResolver interface {
	ResolveDate(text string) (time.Time, error)
	ResolveDateTime(text string) (time.Time, error)
}

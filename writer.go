package jot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer serializes a value tree as indented text. The default indent is
// one tab per nesting level; Compact removes all decorative whitespace.
type Writer struct {
	ws *bufio.Writer

	Indent  string
	Compact bool

	level int
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		ws:     bufio.NewWriter(w),
		Indent: "\t",
	}
	return &ws
}

func Format(w io.Writer, value Value) error {
	return NewWriter(w).Write(value)
}

func FormatString(value Value) (string, error) {
	var (
		str strings.Builder
		ws  = NewWriter(&str)
	)
	if err := ws.Write(value); err != nil {
		return "", err
	}
	return str.String(), nil
}

func (w *Writer) Write(value Value) error {
	defer w.reset()
	if err := w.writeValue(value); err != nil {
		return err
	}
	return w.ws.Flush()
}

func (w *Writer) writeValue(value Value) error {
	switch v := value.(type) {
	case *Object:
		return w.writeObject(v)
	case *Array:
		return w.writeArray(v)
	case String:
		return w.writeString(string(v))
	case Number:
		return w.writeNumber(v)
	case Bool:
		return w.writeLiteral(v.Kind().String())
	case Null:
		return w.writeLiteral("null")
	case Unknown, nil:
		return nil
	default:
		return fmt.Errorf("%s: unsupported value type", TypeName(value))
	}
}

func (w *Writer) writeObject(obj *Object) error {
	w.ws.WriteByte('{')
	if len(obj.Members) == 0 {
		w.ws.WriteByte('}')
		return nil
	}
	w.enter()
	w.writeNL()
	for i, m := range obj.Members {
		if i > 0 {
			w.ws.WriteByte(',')
			w.writeNL()
		}
		w.writePrefix()
		w.writeKey(m.Key)
		if err := w.writeValue(m.Value); err != nil {
			return err
		}
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteByte('}')
	return nil
}

func (w *Writer) writeArray(arr *Array) error {
	w.ws.WriteByte('[')
	if len(arr.Values) == 0 {
		w.ws.WriteByte(']')
		return nil
	}
	w.enter()
	w.writeNL()
	for i := range arr.Values {
		if i > 0 {
			w.ws.WriteByte(',')
			w.writeNL()
		}
		w.writePrefix()
		if err := w.writeValue(arr.Values[i]); err != nil {
			return err
		}
	}
	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteByte(']')
	return nil
}

func (w *Writer) writeKey(key string) {
	w.writeString(key)
	w.ws.WriteByte(':')
	if !w.Compact {
		w.ws.WriteByte(' ')
	}
}

func (w *Writer) writeLiteral(literal string) error {
	w.ws.WriteString(literal)
	return nil
}

// numbers keep at most twelve significant digits so that values survive a
// parse/format round trip without accumulating noise.
func (w *Writer) writeNumber(value Number) error {
	w.ws.WriteString(strconv.FormatFloat(float64(value), 'g', 12, 64))
	return nil
}

// writeString re-escapes decoded content so that quotes, backslashes and
// control characters survive the round trip.
func (w *Writer) writeString(str string) error {
	w.ws.WriteByte('"')
	for _, char := range str {
		switch char {
		case '"':
			w.ws.WriteString(`\"`)
		case '\\':
			w.ws.WriteString(`\\`)
		case '\b':
			w.ws.WriteString(`\b`)
		case '\f':
			w.ws.WriteString(`\f`)
		case '\n':
			w.ws.WriteString(`\n`)
		case '\r':
			w.ws.WriteString(`\r`)
		case '\t':
			w.ws.WriteString(`\t`)
		default:
			if char < 0x20 {
				fmt.Fprintf(w.ws, `\u%04x`, char)
			} else {
				w.ws.WriteRune(char)
			}
		}
	}
	w.ws.WriteByte('"')
	return nil
}

func (w *Writer) writePrefix() {
	if w.Compact || w.level == 0 {
		return
	}
	space := strings.Repeat(w.Indent, w.level)
	w.ws.WriteString(space)
}

func (w *Writer) writeNL() {
	if w.Compact {
		return
	}
	w.ws.WriteByte('\n')
}

func (w *Writer) enter() {
	w.level++
}

func (w *Writer) leave() {
	w.level--
}

func (w *Writer) reset() {
	w.level = 0
}

package main

import (
	"bufio"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/midbel/jot"
)

// Printer mirrors jot.Writer but renders keys and scalars with terminal
// colors. Layout rules are the same: tab indent by default, comma and
// newline between children, empty containers on one line.
type Printer struct {
	ws *bufio.Writer

	Indent  string
	Compact bool

	level int

	keyStyle lipgloss.Style
	strStyle lipgloss.Style
	numStyle lipgloss.Style
	litStyle lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		ws:       bufio.NewWriter(w),
		Indent:   "\t",
		keyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		strStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		numStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		litStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

func (p *Printer) Print(value jot.Value) error {
	p.level = 0
	if err := p.printValue(value); err != nil {
		return err
	}
	return p.ws.Flush()
}

func (p *Printer) printValue(value jot.Value) error {
	switch v := value.(type) {
	case *jot.Object:
		return p.printObject(v)
	case *jot.Array:
		return p.printArray(v)
	default:
		text, err := jot.FormatString(value)
		if err != nil {
			return err
		}
		p.ws.WriteString(p.styleOf(value).Render(text))
		return nil
	}
}

func (p *Printer) printObject(obj *jot.Object) error {
	p.ws.WriteByte('{')
	if obj.Len() == 0 {
		p.ws.WriteByte('}')
		return nil
	}
	p.enter()
	p.printNL()
	for i, m := range obj.Members {
		if i > 0 {
			p.ws.WriteByte(',')
			p.printNL()
		}
		p.printPrefix()
		if err := p.printKey(m.Key); err != nil {
			return err
		}
		if err := p.printValue(m.Value); err != nil {
			return err
		}
	}
	p.leave()
	p.printNL()
	p.printPrefix()
	p.ws.WriteByte('}')
	return nil
}

func (p *Printer) printArray(arr *jot.Array) error {
	p.ws.WriteByte('[')
	if arr.Len() == 0 {
		p.ws.WriteByte(']')
		return nil
	}
	p.enter()
	p.printNL()
	for i := range arr.Values {
		if i > 0 {
			p.ws.WriteByte(',')
			p.printNL()
		}
		p.printPrefix()
		if err := p.printValue(arr.Values[i]); err != nil {
			return err
		}
	}
	p.leave()
	p.printNL()
	p.printPrefix()
	p.ws.WriteByte(']')
	return nil
}

func (p *Printer) printKey(key string) error {
	text, err := jot.FormatString(jot.String(key))
	if err != nil {
		return err
	}
	p.ws.WriteString(p.keyStyle.Render(text))
	p.ws.WriteByte(':')
	if !p.Compact {
		p.ws.WriteByte(' ')
	}
	return nil
}

func (p *Printer) styleOf(value jot.Value) lipgloss.Style {
	switch jot.TypeName(value) {
	case "string":
		return p.strStyle
	case "number":
		return p.numStyle
	default:
		return p.litStyle
	}
}

func (p *Printer) printPrefix() {
	if p.Compact || p.level == 0 {
		return
	}
	p.ws.WriteString(strings.Repeat(p.Indent, p.level))
}

func (p *Printer) printNL() {
	if p.Compact {
		return
	}
	p.ws.WriteByte('\n')
}

func (p *Printer) enter() {
	p.level++
}

func (p *Printer) leave() {
	p.level--
}

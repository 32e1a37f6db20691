package jot

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf16"
)

// MaxDepth is the default nesting limit enforced by the parser. It bounds
// stack use on adversarial input; the grammar itself has no limit.
const MaxDepth = 512

type Parser struct {
	scan *Scanner

	MaxDepth int
	depth    int
}

func NewParser(input []byte) *Parser {
	return &Parser{
		scan:     NewScanner(input),
		MaxDepth: MaxDepth,
	}
}

func Parse(r io.Reader) (Value, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(input)
}

func ParseString(str string) (Value, error) {
	return ParseBytes([]byte(str))
}

func ParseBytes(input []byte) (Value, error) {
	return NewParser(input).Parse()
}

// Parse consumes exactly one element. Input made only of blanks gives
// Unknown; anything left after the element is an error.
func (p *Parser) Parse() (Value, error) {
	p.scan.skipBlank()
	if p.scan.Done() {
		return Unknown{}, nil
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.scan.skipBlank()
	if !p.scan.Done() {
		return nil, tokenError(p.scan.Position, ErrTrailing, "end of input", p.currString())
	}
	return value, nil
}

func (p *Parser) parseValue() (Value, error) {
	if p.scan.Done() {
		return nil, syntaxError(p.scan.Position, ErrUnexpectedEnd)
	}
	switch char := p.scan.Curr(); {
	case char == 'n':
		return p.parseLiteral("null", Null{})
	case char == 't':
		return p.parseLiteral("true", Bool(true))
	case char == 'f':
		return p.parseLiteral("false", Bool(false))
	case isQuote(char):
		str, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(str), nil
	case char == '[':
		return p.parseArray()
	case char == '{':
		return p.parseObject()
	case char == '-' || isNumber(char):
		return p.parseNumber()
	default:
		return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "value", p.currString())
	}
}

func (p *Parser) parseLiteral(literal string, value Value) (Value, error) {
	pos := p.scan.Position
	for i := 0; i < len(literal); i++ {
		if p.scan.Done() {
			return nil, tokenError(pos, ErrUnexpectedEnd, strconv.Quote(literal), "end of input")
		}
		if char := p.scan.Read(); char != literal[i] {
			return nil, tokenError(pos, ErrUnexpectedToken, strconv.Quote(literal), charString(char))
		}
	}
	return value, nil
}

// optional minus, integer part, optional fraction, optional exponent. The
// matched text is handed to strconv; a conversion overflowing to infinity
// is fatal.
func (p *Parser) parseNumber() (Value, error) {
	var (
		pos = p.scan.Position
		str bytes.Buffer
	)
	if p.scan.Curr() == '-' {
		str.WriteByte(p.scan.Read())
	}
	if p.scan.Done() || !isNumber(p.scan.Curr()) {
		return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "digit", p.currString())
	}
	if p.scan.Curr() == '0' {
		str.WriteByte(p.scan.Read())
		if !p.scan.Done() && isNumber(p.scan.Curr()) {
			return nil, tokenError(pos, ErrUnexpectedToken, "number without leading zero", charString(p.scan.Curr()))
		}
	} else {
		for !p.scan.Done() && isNumber(p.scan.Curr()) {
			str.WriteByte(p.scan.Read())
		}
	}
	if p.scan.Curr() == '.' {
		str.WriteByte(p.scan.Read())
		if p.scan.Done() || !isNumber(p.scan.Curr()) {
			return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "digit", p.currString())
		}
		for !p.scan.Done() && isNumber(p.scan.Curr()) {
			str.WriteByte(p.scan.Read())
		}
	}
	if char := p.scan.Curr(); char == 'e' || char == 'E' {
		str.WriteByte(p.scan.Read())
		if char := p.scan.Curr(); char == '+' || char == '-' {
			str.WriteByte(p.scan.Read())
		}
		if p.scan.Done() || !isNumber(p.scan.Curr()) {
			return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "digit", p.currString())
		}
		for !p.scan.Done() && isNumber(p.scan.Curr()) {
			str.WriteByte(p.scan.Read())
		}
	}
	value, err := strconv.ParseFloat(str.String(), 64)
	if err != nil || math.IsInf(value, 0) {
		return nil, tokenError(pos, ErrNumberRange, "finite number", str.String())
	}
	return Number(value), nil
}

func (p *Parser) parseString() (string, error) {
	pos := p.scan.Position
	p.scan.Read()

	var str bytes.Buffer
	for {
		if p.scan.Done() {
			return "", syntaxError(pos, ErrUnterminatedString)
		}
		at := p.scan.Position
		switch char := p.scan.Read(); {
		case isQuote(char):
			return str.String(), nil
		case char == '\\':
			if err := p.parseEscape(&str); err != nil {
				return "", err
			}
		case isControl(char):
			return "", tokenError(at, ErrIllegalCharacter, "escaped control character", charString(char))
		default:
			str.WriteByte(char)
		}
	}
}

func (p *Parser) parseEscape(str *bytes.Buffer) error {
	pos := p.scan.Position
	if p.scan.Done() {
		return syntaxError(pos, ErrUnterminatedString)
	}
	switch char := p.scan.Read(); char {
	case '"', '\\', '/':
		str.WriteByte(char)
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'n':
		str.WriteByte('\n')
	case 'r':
		str.WriteByte('\r')
	case 't':
		str.WriteByte('\t')
	case 'u':
		char, err := p.parseUnicode(pos)
		if err != nil {
			return err
		}
		str.WriteRune(char)
	default:
		return tokenError(pos, ErrIllegalEscape, "escape character", charString(char))
	}
	return nil
}

// parseUnicode decodes a \uXXXX sequence, combining surrogate pairs into
// the rune they encode. Unpaired surrogates are rejected.
func (p *Parser) parseUnicode(pos Position) (rune, error) {
	hi, err := p.parseHex(pos)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(hi) {
		return hi, nil
	}
	if hi >= 0xDC00 {
		return 0, tokenError(pos, ErrIllegalEscape, "high surrogate", fmt.Sprintf("\\u%04x", hi))
	}
	if p.scan.Curr() != '\\' || p.scan.Peek() != 'u' {
		return 0, tokenError(pos, ErrIllegalEscape, "low surrogate", p.currString())
	}
	p.scan.Read()
	p.scan.Read()
	lo, err := p.parseHex(pos)
	if err != nil {
		return 0, err
	}
	char := utf16.DecodeRune(hi, lo)
	if char == 0xFFFD {
		return 0, tokenError(pos, ErrIllegalEscape, "low surrogate", fmt.Sprintf("\\u%04x", lo))
	}
	return char, nil
}

func (p *Parser) parseHex(pos Position) (rune, error) {
	var char rune
	for i := 0; i < 4; i++ {
		if p.scan.Done() {
			return 0, syntaxError(pos, ErrUnterminatedString)
		}
		c := p.scan.Read()
		if !isHex(c) {
			return 0, tokenError(pos, ErrIllegalEscape, "hex digit", charString(c))
		}
		char = char<<4 | rune(hexValue(c))
	}
	return char, nil
}

func (p *Parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.scan.Read()
	var arr Array
	for {
		p.scan.skipBlank()
		if p.scan.Done() {
			return nil, tokenError(p.scan.Position, ErrUnexpectedEnd, "']'", "end of input")
		}
		if p.scan.Curr() == ']' {
			if len(arr.Values) > 0 {
				return nil, tokenError(p.scan.Position, ErrExpectedValue, "value", charString(']'))
			}
			p.scan.Read()
			return &arr, nil
		}
		if p.scan.Curr() == ',' {
			return nil, tokenError(p.scan.Position, ErrExpectedValue, "value", charString(','))
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, value)

		p.scan.skipBlank()
		if p.scan.Done() {
			return nil, tokenError(p.scan.Position, ErrUnexpectedEnd, "',' or ']'", "end of input")
		}
		switch char := p.scan.Read(); char {
		case ',':
		case ']':
			return &arr, nil
		default:
			return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "',' or ']'", charString(char))
		}
	}
}

func (p *Parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.scan.Read()
	var obj Object
	for {
		p.scan.skipBlank()
		if p.scan.Done() {
			return nil, tokenError(p.scan.Position, ErrUnexpectedEnd, "'}'", "end of input")
		}
		if p.scan.Curr() == '}' {
			if len(obj.Members) > 0 {
				return nil, tokenError(p.scan.Position, ErrExpectedMember, "member", charString('}'))
			}
			p.scan.Read()
			return &obj, nil
		}
		member, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, member)

		p.scan.skipBlank()
		if p.scan.Done() {
			return nil, tokenError(p.scan.Position, ErrUnexpectedEnd, "',' or '}'", "end of input")
		}
		switch char := p.scan.Read(); char {
		case ',':
		case '}':
			return &obj, nil
		default:
			return nil, tokenError(p.scan.Position, ErrUnexpectedToken, "',' or '}'", charString(char))
		}
	}
}

func (p *Parser) parseMember() (Member, error) {
	var member Member
	if !isQuote(p.scan.Curr()) {
		return member, tokenError(p.scan.Position, ErrExpectedMember, "object key", p.currString())
	}
	key, err := p.parseString()
	if err != nil {
		return member, err
	}
	p.scan.skipBlank()
	if p.scan.Done() {
		return member, tokenError(p.scan.Position, ErrUnexpectedEnd, "':'", "end of input")
	}
	if char := p.scan.Read(); char != ':' {
		return member, tokenError(p.scan.Position, ErrUnexpectedToken, "':'", charString(char))
	}
	p.scan.skipBlank()
	value, err := p.parseValue()
	if err != nil {
		return member, err
	}
	member.Key = key
	member.Value = value
	return member, nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.MaxDepth > 0 && p.depth > p.MaxDepth {
		return syntaxError(p.scan.Position, ErrDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) currString() string {
	if p.scan.Done() {
		return "end of input"
	}
	return charString(p.scan.Curr())
}

func charString(c byte) string {
	return fmt.Sprintf("%q", c)
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

package casing

import (
	"strings"
	"unicode"
)

type CaseType int8

const (
	DefaultCase CaseType = iota
	SnakeCase
	KebabCase
	CamelCase
	PascalCase
	UpperSnakeCase
	UpperKebabCase
)

func To(to CaseType, str string) string {
	switch to {
	case SnakeCase:
		str = ToSnake(str)
	case KebabCase:
		str = ToKebab(str)
	case CamelCase:
		str = ToCamel(str)
	case PascalCase:
		str = ToPascal(str)
	case UpperSnakeCase:
		str = strings.ToUpper(ToSnake(str))
	case UpperKebabCase:
		str = strings.ToUpper(ToKebab(str))
	default:
	}
	return str
}

func ToSnake(str string) string {
	return strings.Join(split(str), string(underscore))
}

func ToKebab(str string) string {
	return strings.Join(split(str), string(hyphen))
}

func ToCamel(str string) string {
	var out strings.Builder
	for i, w := range split(str) {
		if i == 0 {
			out.WriteString(w)
		} else {
			out.WriteString(title(w))
		}
	}
	return out.String()
}

func ToPascal(str string) string {
	var out strings.Builder
	for _, w := range split(str) {
		out.WriteString(title(w))
	}
	return out.String()
}

const (
	hyphen     = '-'
	underscore = '_'
	space      = ' '
)

func isSep(r rune) bool {
	return r == hyphen || r == underscore || r == space
}

// split cuts the input into lowercase words. Words end on separator runes
// and on case boundaries: aB starts a new word, as does the last upper of
// an upper run followed by a lower (FOOBar gives foo, bar). Runes that are
// neither letters, digits nor separators are dropped.
func split(str string) []string {
	var runes []rune
	for _, r := range str {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || isSep(r) {
			runes = append(runes, r)
		}
	}

	var (
		words []string
		curr  []rune
	)
	flush := func() {
		if len(curr) > 0 {
			words = append(words, strings.ToLower(string(curr)))
			curr = curr[:0]
		}
	}
	for i, r := range runes {
		switch {
		case isSep(r):
			flush()
		case unicode.IsUpper(r):
			first := i > 0 && !unicode.IsUpper(runes[i-1]) && !isSep(runes[i-1])
			last := i+1 < len(runes) && unicode.IsLower(runes[i+1]) &&
				len(curr) > 0 && unicode.IsUpper(curr[len(curr)-1])
			if first || last {
				flush()
			}
			curr = append(curr, r)
		default:
			curr = append(curr, r)
		}
	}
	flush()
	return words
}

func title(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

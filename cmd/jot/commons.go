package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/midbel/jot"
	"github.com/midbel/jot/casing"
)

const (
	snakeCaseType  = "snake"
	kebabCaseType  = "kebab"
	camelCaseType  = "camel"
	pascalCaseType = "pascal"
)

type WriterOptions struct {
	Compact  bool
	Colorize bool
	Indent   string
	CaseType string
}

func parseDocument(file string) (jot.Value, error) {
	r, err := openFile(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return jot.Parse(r)
}

func openFile(file string) (io.ReadCloser, error) {
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("accept", "application/json")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != 200 {
			return nil, fmt.Errorf("fail to retrieve remote file")
		}
		return res.Body, nil
	default:
		return os.Open(file)
	}
}

func writeValue(value jot.Value, file string, options WriterOptions) error {
	if value == nil {
		return fmt.Errorf("no value to be written")
	}
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if t := caseTypeOf(options.CaseType); t != casing.DefaultCase {
		value = rewriteKeys(value, t)
	}
	if options.Colorize {
		pw := NewPrinter(w)
		pw.Compact = options.Compact
		if options.Indent != "" {
			pw.Indent = options.Indent
		}
		return pw.Print(value)
	}
	ws := jot.NewWriter(w)
	ws.Compact = options.Compact
	if options.Indent != "" {
		ws.Indent = options.Indent
	}
	return ws.Write(value)
}

// rewriteKeys builds a new tree with every object key converted to the
// given case family. The input tree is left untouched.
func rewriteKeys(value jot.Value, t casing.CaseType) jot.Value {
	switch v := value.(type) {
	case *jot.Array:
		arr := jot.Array{
			Values: make([]jot.Value, 0, v.Len()),
		}
		for _, item := range v.Values {
			arr.Values = append(arr.Values, rewriteKeys(item, t))
		}
		return &arr
	case *jot.Object:
		obj := jot.Object{
			Members: make([]jot.Member, 0, v.Len()),
		}
		for _, m := range v.Members {
			obj.Members = append(obj.Members, jot.Member{
				Key:   casing.To(t, m.Key),
				Value: rewriteKeys(m.Value, t),
			})
		}
		return &obj
	default:
		return value
	}
}

func caseTypeOf(str string) casing.CaseType {
	switch str {
	case snakeCaseType:
		return casing.SnakeCase
	case kebabCaseType:
		return casing.KebabCase
	case camelCaseType:
		return casing.CamelCase
	case pascalCaseType:
		return casing.PascalCase
	default:
		return casing.DefaultCase
	}
}

package main

import (
	"flag"
	"fmt"

	"github.com/midbel/jot"
)

var findCmd FindCmd

type FindCmd struct {
	All     bool
	OutFile string
	WriterOptions
}

func (f *FindCmd) Run(args []string) error {
	set := flag.NewFlagSet("find", flag.ContinueOnError)

	set.BoolVar(&f.All, "a", false, "report every match instead of the first one")
	set.BoolVar(&f.Compact, "c", false, "write compact output")
	set.BoolVar(&f.Colorize, "x", false, "colorize output written to the terminal")
	set.StringVar(&f.OutFile, "f", "", "specify the path to the file where the result will be written")

	if err := set.Parse(args); err != nil {
		return err
	}

	key := set.Arg(0)
	if key == "" {
		return fmt.Errorf("no key given")
	}
	doc, err := parseDocument(set.Arg(1))
	if err != nil {
		return err
	}

	if f.All {
		arr := jot.Array{
			Values: jot.FindAll(doc, key),
		}
		if arr.Len() == 0 {
			return fmt.Errorf("%s: no value found", key)
		}
		return writeValue(&arr, f.OutFile, f.WriterOptions)
	}
	res := jot.Find(doc, key)
	if res.Kind() == jot.KindUnknown {
		return fmt.Errorf("%s: no value found", key)
	}
	return writeValue(res, f.OutFile, f.WriterOptions)
}

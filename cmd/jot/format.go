package main

import (
	"flag"
)

var formatCmd FormatCmd

type FormatCmd struct {
	OutFile string
	WriterOptions
}

func (f *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)

	set.BoolVar(&f.Compact, "c", false, "write compact output")
	set.BoolVar(&f.Colorize, "x", false, "colorize output written to the terminal")
	set.StringVar(&f.Indent, "i", "", "indent nested values with the given string instead of tabs")
	set.StringVar(&f.CaseType, "case-type", "", "rewrite object keys to the given case family")
	set.StringVar(&f.OutFile, "f", "", "specify the path to the file where the document will be written")

	if err := set.Parse(args); err != nil {
		return err
	}

	doc, err := parseDocument(set.Arg(0))
	if err != nil {
		return err
	}
	return writeValue(doc, f.OutFile, f.WriterOptions)
}

package main

import (
	"flag"
	"fmt"

	"github.com/midbel/jot"
)

var typeCmd TypeCmd

type TypeCmd struct {
	Key string
}

func (t *TypeCmd) Run(args []string) error {
	set := flag.NewFlagSet("type", flag.ContinueOnError)

	set.StringVar(&t.Key, "k", "", "report the type of the value stored under the given key")

	if err := set.Parse(args); err != nil {
		return err
	}

	doc, err := parseDocument(set.Arg(0))
	if err != nil {
		return err
	}
	value := doc
	if t.Key != "" {
		value = jot.Find(doc, t.Key)
	}
	fmt.Println(jot.TypeName(value))
	return nil
}

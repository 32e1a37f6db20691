package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"github.com/midbel/jot"
	"github.com/midbel/jot/cmd/cli"
)

var checkCmd CheckCmd

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type CheckCmd struct {
	Quiet   bool
	Compare bool
}

type checkResult struct {
	File string
	Err  error
}

func (c *CheckCmd) Run(args []string) error {
	set := flag.NewFlagSet("check", flag.ContinueOnError)

	set.BoolVar(&c.Quiet, "q", false, "only report through the exit status")
	set.BoolVar(&c.Compare, "cmp", false, "compare two documents structurally instead of validating")

	if err := set.Parse(args); err != nil {
		return err
	}

	if c.Compare {
		return c.runCompare(set.Args())
	}

	files, err := collectFiles(set.Args())
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, len(files))
	spin := cli.NewSpinner()
	spin.SetOutput(os.Stderr)
	spin.SetMessage("checking documents")
	spin.Run(func() {
		for _, f := range files {
			_, err := parseDocument(f)
			results = append(results, checkResult{
				File: f,
				Err:  err,
			})
		}
	})

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		if c.Quiet {
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(os.Stdout, "%s %s: %s\n", failStyle.Render("fail"), r.File, r.Err)
		} else {
			fmt.Fprintf(os.Stdout, "%s   %s\n", okStyle.Render("ok"), r.File)
		}
	}
	if failed > 0 {
		return errFail
	}
	return nil
}

func (c *CheckCmd) runCompare(files []string) error {
	if len(files) != 2 {
		return fmt.Errorf("cmp expects two documents")
	}
	left, err := parseDocument(files[0])
	if err != nil {
		return err
	}
	right, err := parseDocument(files[1])
	if err != nil {
		return err
	}
	if !jot.Equal(left, right) {
		if !c.Quiet {
			fmt.Fprintf(os.Stdout, "%s %s and %s differ\n", failStyle.Render("fail"), files[0], files[1])
		}
		return errFail
	}
	if !c.Quiet {
		fmt.Fprintf(os.Stdout, "%s   documents match\n", okStyle.Render("ok"))
	}
	return nil
}

func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, a := range args {
		s, err := os.Stat(a)
		if err != nil {
			return nil, err
		}
		if !s.IsDir() {
			files = append(files, a)
			continue
		}
		es, err := os.ReadDir(a)
		if err != nil {
			return nil, err
		}
		for _, e := range es {
			if e.IsDir() {
				continue
			}
			files = append(files, filepath.Join(a, e.Name()))
		}
	}
	return files, nil
}

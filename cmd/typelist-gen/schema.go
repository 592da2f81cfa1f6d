package main

import (
	"flag"
	"os"

	"typelist/internal/mapping"
)

func (a *app) cmdSchema(args []string) int {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	out := fs.String("out", "", "write the schema to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	data, err := mapping.SchemaJSON()
	if err != nil {
		return a.fail(err)
	}

	data = append(data, '\n')

	if *out == "" {
		_, _ = a.stdout.Write(data)
		return 0
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return a.fail(err)
	}

	return 0
}

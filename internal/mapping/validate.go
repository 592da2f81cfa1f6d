package mapping

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"typelist/internal/diagnostic"
)

// Validate checks a config for mistakes that need no type information:
// malformed names, duplicates, and conversions of a record into itself.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeConfigInvalid, "config is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeConfigInvalid,
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "", "version")
	}

	if len(f.Packages) == 0 {
		res.AddError(diagnostic.CodeConfigInvalid, "no packages configured", "", "packages")
	}

	outputs := map[string]int{}

	for i := range f.Packages {
		p := &f.Packages[i]
		at := fmt.Sprintf("packages[%d]", i)

		if p.Path == "" {
			res.AddError(diagnostic.CodeConfigInvalid, "package path is empty", "", at+".path")
		}

		validateOutput(res, p.Output, at+".output")

		out := filepath.Join(p.Dir(f.BaseDir), p.Output)
		if prev, ok := outputs[out]; ok {
			res.AddError(diagnostic.CodeConfigInvalid,
				fmt.Sprintf("output %s is also written by packages[%d]", out, prev), "", at+".output")
		} else {
			outputs[out] = i
		}

		validatePackage(res, p, at)
	}

	return res
}

func validateOutput(res *diagnostic.Diagnostics, output, at string) {
	switch {
	case output != filepath.Base(output):
		res.AddError(diagnostic.CodeConfigInvalid, fmt.Sprintf("output %q must be a file name", output), "", at)
	case !strings.HasSuffix(output, ".go"):
		res.AddError(diagnostic.CodeConfigInvalid, fmt.Sprintf("output %q must end in .go", output), "", at)
	case strings.HasSuffix(output, "_test.go"):
		res.AddError(diagnostic.CodeConfigInvalid, fmt.Sprintf("output %q must not be a test file", output), "", at)
	}
}

func validatePackage(res *diagnostic.Diagnostics, p *Package, at string) {
	records := map[string]bool{}

	for j, r := range p.Records {
		field := fmt.Sprintf("%s.records[%d]", at, j)

		if !token.IsIdentifier(r.Type) {
			res.AddError(diagnostic.CodeConfigInvalid, fmt.Sprintf("record type %q is not an identifier", r.Type), "", field)
			continue
		}

		if records[r.Type] {
			res.AddError(diagnostic.CodeDuplicateRecord, fmt.Sprintf("record %s is listed twice", r.Type), "", field)
		}

		records[r.Type] = true
	}

	pairs := map[string]bool{}
	names := map[string]string{}

	for j, c := range p.Conversions {
		field := fmt.Sprintf("%s.conversions[%d]", at, j)
		pair := c.Pair()

		if !token.IsIdentifier(c.Source) || !token.IsIdentifier(c.Target) {
			res.AddError(diagnostic.CodeConfigInvalid, "source and target must be type names", pair, field)
			continue
		}

		if c.Source == c.Target {
			res.AddError(diagnostic.CodeConfigInvalid, "a record cannot be converted into itself", pair, field)
		}

		if !token.IsIdentifier(c.Name) {
			res.AddError(diagnostic.CodeConfigInvalid, fmt.Sprintf("function name %q is not an identifier", c.Name), pair, field+".name")
		}

		if pairs[pair] {
			res.AddError(diagnostic.CodeDuplicateConversion, "conversion is listed twice", pair, field)
		}

		pairs[pair] = true

		if other, ok := names[c.Name]; ok && other != pair {
			res.AddError(diagnostic.CodeDuplicateConversion,
				fmt.Sprintf("function %s is also generated for %s", c.Name, other), pair, field+".name")
		}

		names[c.Name] = pair
	}
}

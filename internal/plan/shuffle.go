package plan

import (
	"fmt"
	"go/types"

	"typelist/internal/diagnostic"
	"typelist/internal/match"
)

// shuffle resolves a conversion that moves every field of src into dst.
func (r *Resolver) shuffle(src, dst *Record) ([]Step, bool) {
	pair := src.Name + "->" + dst.Name

	if src.Positional != dst.Positional {
		r.shapeMismatch(src, dst, pair)
		return nil, false
	}

	remaining := append([]Field{}, src.Fields...)
	steps := make([]Step, 0, len(dst.Fields))
	ok := true

	for _, t := range dst.Fields {
		var idx int
		if dst.Positional {
			idx = r.pickByType(remaining, t, pair, dst)
		} else {
			idx = r.pickByName(remaining, src, t, pair)
		}

		if idx < 0 {
			ok = false
			continue
		}

		found := remaining[idx]
		if !dst.Positional && !types.Identical(found.Type, t.Type) {
			opts := []diagnostic.Option{}
			if match.Classify(found.Type, t.Type) == match.NeedsDeep {
				opts = append(opts, diagnostic.Suggest("deep: true"))
			}

			r.addFieldError(diagnostic.CodeTypeMismatch,
				fmt.Sprintf("%s and %s have different types (%s)",
					label(src, found), label(dst, t), match.Describe(found.Type, t.Type)),
				pair, t, opts...)

			ok = false
		}

		steps = append(steps, Step{
			Target: t,
			Skip:   append([]Field{}, remaining[:idx]...),
			Found:  found,
			Rest:   append([]Field{}, remaining[idx+1:]...),
		})

		remaining = append(remaining[:idx:idx], remaining[idx+1:]...)
	}

	for _, f := range remaining {
		r.addFieldError(diagnostic.CodeUnusedField,
			fmt.Sprintf("%s has no counterpart in %s", label(src, f), dst.Name),
			pair, f, diagnostic.Suggest("deep: true"))

		ok = false
	}

	return steps, ok
}

func (r *Resolver) pickByName(remaining []Field, src *Record, t Field, pair string) int {
	for i, f := range remaining {
		if f.Name == t.Name {
			return i
		}
	}

	r.addFieldError(diagnostic.CodeMissingField,
		fmt.Sprintf("%s has no field %s", src.Name, t.Name), pair, t,
		diagnostic.Suggest(match.Suggest(t.Name, names(remaining), MaxSuggestions)...))

	return -1
}

// pickByType picks the remaining field with the type of t. A single
// candidate is taken wherever it sits; among several, only the one declared
// at the position of t is accepted. Anything else is ambiguous.
func (r *Resolver) pickByType(remaining []Field, t Field, pair string, dst *Record) int {
	var candidates []Field

	pick := -1

	for i, f := range remaining {
		if !types.Identical(f.Type, t.Type) {
			continue
		}

		candidates = append(candidates, f)

		if pick < 0 || f.Index == t.Index {
			pick = i
		}
	}

	switch {
	case len(candidates) == 0:
		r.addFieldError(diagnostic.CodeMissingField,
			fmt.Sprintf("no field of type %s left for %s", t.Type, label(dst, t)), pair, t)

		return -1

	case len(candidates) > 1 && remaining[pick].Index != t.Index:
		r.addFieldError(diagnostic.CodeAmbiguousPosition,
			fmt.Sprintf("%d fields of type %s could fill %s", len(candidates), t.Type, label(dst, t)),
			pair, t, diagnostic.Suggest(names(candidates)...))

		return -1
	}

	return pick
}

func (r *Resolver) shapeMismatch(src, dst *Record, pair string) {
	shape := func(rec *Record) string {
		if rec.Positional {
			return "positional"
		}

		return "named"
	}

	r.diags.AddError(diagnostic.CodeShapeMismatch,
		fmt.Sprintf("%s is %s but %s is %s", src.Name, shape(src), dst.Name, shape(dst)),
		pair, "", diagnostic.At(dst.Type.Pos))
}

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}

	return out
}

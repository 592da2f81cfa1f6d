package plan

import (
	"fmt"
	"go/types"

	"typelist/internal/analyze"
	"typelist/internal/diagnostic"
	"typelist/internal/match"
	"typelist/internal/naming"
	"typelist/primitive"
)

// deepPair resolves the deep conversion of src into dst, and the pairs its
// fields need. Pairs are appended to the emission order after their
// dependencies.
func (r *Resolver) deepPair(src, dst *Record, path *analyze.TypePath) *DeepPair {
	key := src.Name + "->" + dst.Name

	if p, ok := r.pairs[key]; ok {
		if p == nil {
			return nil
		}

		if !p.done {
			r.diags.AddError(diagnostic.CodeDeepCycle,
				fmt.Sprintf("%s converts through itself", key), key, path.String(),
				diagnostic.At(dst.Type.Pos))

			return nil
		}

		return p
	}

	if src.Positional != dst.Positional {
		r.shapeMismatch(src, dst, key)
		r.pairs[key] = nil

		return nil
	}

	p := &DeepPair{
		Source: src,
		Target: dst,
		Var:    naming.DeepVar(src.Name, dst.Name),
	}
	r.pairs[key] = p

	var ok bool
	if dst.Positional {
		ok = r.deepPositional(p, path)
	} else {
		ok = r.deepNamed(p, path)
	}

	if !ok {
		r.pairs[key] = nil
		return nil
	}

	for _, f := range p.Dropped {
		r.diags.AddInfo(diagnostic.CodeDroppedField,
			fmt.Sprintf("%s is not declared by %s and is dropped", label(src, f), dst.Name),
			key, path.Field(f.Name).String(), diagnostic.At(f.Pos))
	}

	p.done = true
	r.order = append(r.order, p)

	return p
}

func (r *Resolver) deepNamed(p *DeepPair, path *analyze.TypePath) bool {
	key := p.Key()
	remaining := append([]Field{}, p.Source.Fields...)
	ok := true

	for _, t := range p.Target.Fields {
		idx := r.pickByName(remaining, p.Source, t, key)
		if idx < 0 {
			ok = false
			continue
		}

		found := remaining[idx]

		value := r.valueConv(found.Type, t.Type, path.Field(t.Name), key, t)
		if value == nil {
			ok = false
		}

		p.Steps = append(p.Steps, DeepStep{
			Step: Step{
				Target: t,
				Skip:   append([]Field{}, remaining[:idx]...),
				Found:  found,
				Rest:   append([]Field{}, remaining[idx+1:]...),
			},
			Value: value,
		})

		remaining = append(remaining[:idx:idx], remaining[idx+1:]...)
	}

	p.Dropped = remaining
	p.uses = collectPairs(p.Steps)

	return ok
}

// deepPositional converts positional fields in order; trailing source fields
// are dropped.
func (r *Resolver) deepPositional(p *DeepPair, path *analyze.TypePath) bool {
	key := p.Key()
	src, dst := p.Source.Fields, p.Target.Fields

	if len(src) < len(dst) {
		for _, t := range dst[len(src):] {
			r.addFieldError(diagnostic.CodeMissingField,
				fmt.Sprintf("%s has no field at position %d", p.Source.Name, t.Index), key, t)
		}

		return false
	}

	ok := true

	for i, t := range dst {
		value := r.valueConv(src[i].Type, t.Type, path.Field(t.Name), key, t)
		if value == nil {
			ok = false
		}

		p.Steps = append(p.Steps, DeepStep{
			Step: Step{
				Target: t,
				Found:  src[i],
				Rest:   append([]Field{}, src[i+1:]...),
			},
			Value: value,
		})
	}

	p.Dropped = append([]Field{}, src[len(dst):]...)
	p.uses = collectPairs(p.Steps)

	return ok
}

// valueConv resolves how a source field value of type s becomes a target
// value of type d.
func (r *Resolver) valueConv(s, d types.Type, path *analyze.TypePath, key string, t Field) *ValueConv {
	if types.Identical(s, d) && primitive.FromGoType(s).IsScalar() {
		return &ValueConv{Kind: ValueIdentity, Type: s}
	}

	unsupported := func(why string) *ValueConv {
		r.addFieldError(diagnostic.CodeUnsupportedDeepType,
			fmt.Sprintf("%s: cannot convert %s: %s", path, match.Describe(s, d), why), key, t)

		return nil
	}

	if match.Classify(s, d) == match.Incompatible {
		return unsupported("types differ in shape")
	}

	switch match.ShapeOf(s) {
	case match.ShapeSlice:
		elem := r.valueConv(types.Unalias(s).(*types.Slice).Elem(), types.Unalias(d).(*types.Slice).Elem(), path.Slice(), key, t)
		if elem == nil {
			return nil
		}

		return &ValueConv{Kind: ValueSlice, Elem: elem}

	case match.ShapePointer:
		elem := r.valueConv(types.Unalias(s).(*types.Pointer).Elem(), types.Unalias(d).(*types.Pointer).Elem(), path.Pointer(), key, t)
		if elem == nil {
			return nil
		}

		return &ValueConv{Kind: ValuePointer, Elem: elem}

	case match.ShapeStruct:
		srcName, ok1 := r.localStruct(s)
		dstName, ok2 := r.localStruct(d)

		if !ok1 || !ok2 {
			return unsupported("records must be declared in " + r.pkg.Path)
		}

		src := r.record(srcName, key)
		dst := r.record(dstName, key)

		if src == nil || dst == nil {
			return nil
		}

		pair := r.deepPair(src, dst, path)
		if pair == nil {
			return nil
		}

		return &ValueConv{Kind: ValueRecord, Pair: pair}

	default:
		return unsupported("only scalars, records, and slices or pointers of them are converted")
	}
}

func (r *Resolver) localStruct(t types.Type) (string, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 {
		return "", false
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != r.pkg.Path {
		return "", false
	}

	return obj.Name(), true
}

func collectPairs(steps []DeepStep) []*DeepPair {
	var out []*DeepPair

	seen := map[*DeepPair]bool{}

	for _, s := range steps {
		for v := s.Value; v != nil; v = v.Elem {
			if v.Pair != nil && !seen[v.Pair] {
				seen[v.Pair] = true
				out = append(out, v.Pair)
			}
		}
	}

	return out
}

package plan

import (
	"fmt"
	"strconv"

	"typelist/internal/analyze"
	"typelist/internal/diagnostic"
	"typelist/internal/naming"
)

// record registers the struct called name. pair is the conversion that asked
// for it, empty for configured records.
func (r *Resolver) record(name, pair string) *Record {
	if rec, ok := r.records[name]; ok {
		return rec
	}

	rec := r.buildRecord(name, pair)
	r.records[name] = rec

	return rec
}

func (r *Resolver) buildRecord(name, pair string) *Record {
	t, ok := r.pkg.Lookup(name)
	if !ok {
		r.diags.AddError(diagnostic.CodeUnknownRecord,
			fmt.Sprintf("package %s declares no type %s", r.pkg.Path, name), pair, name,
			diagnostic.Suggest(r.suggestRecords(name)...))

		return nil
	}

	if t.Kind == analyze.TypeKindUnit {
		r.diags.AddError(diagnostic.CodeEmptyStruct,
			fmt.Sprintf("%s has no fields; unit structs are not supported", name), pair, name,
			diagnostic.At(t.Pos))

		return nil
	}

	if !t.IsStruct() {
		r.diags.AddError(diagnostic.CodeNotAStruct,
			fmt.Sprintf("%s is a %s type, not a struct", name, t.Kind), pair, name,
			diagnostic.At(t.Pos))

		return nil
	}

	rec := &Record{
		Type:       t,
		Name:       name,
		Positional: r.positional[name],
	}

	valid := true

	for i, fi := range t.Fields {
		f := Field{
			Name:  fi.Name,
			Index: i,
			Type:  fi.Type,
			Pos:   fi.Pos,
		}

		switch {
		case fi.Embedded:
			r.addFieldError(diagnostic.CodeEmbeddedField,
				fmt.Sprintf("embedded field %s of %s cannot be part of a record", fi.Name, name), pair, f)

			valid = false

		case !fi.Exported:
			r.addFieldError(diagnostic.CodeUnexportedField,
				fmt.Sprintf("field %s of %s must be exported", fi.Name, name), pair, f)

			valid = false
		}

		if rec.Positional {
			f.Elem = naming.PositionAlias(name, i)
		} else {
			if _, err := naming.Encode(fi.Name, naming.DefaultQualifiers); err != nil {
				r.addFieldError(diagnostic.CodeUnsupportedName,
					fmt.Sprintf("field name of %s: %v", name, err), pair, f)

				valid = false
			}

			f.Elem = naming.ElemAlias(name, fi.Name)
			f.Label = naming.NameAlias(fi.Name)
		}

		rec.Fields = append(rec.Fields, f)
	}

	if !valid {
		return nil
	}

	return rec
}

// label renders a field for messages: its name, or its position.
func label(rec *Record, f Field) string {
	if rec.Positional {
		return rec.Name + "." + strconv.Itoa(f.Index)
	}

	return rec.Name + "." + f.Name
}

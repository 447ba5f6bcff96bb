package gomap

import (
	"reflect"
	"strings"
)

type opt struct {
	name      string
	skip      bool
	omitEmpty bool
}

func fieldOpt(f reflect.StructField) opt {
	o := opt{name: f.Name}
	tag := f.Tag.Get("treedoc")
	if tag == "" {
		return o
	}
	if tag == "-" {
		o.skip = true
		return o
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		o.name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			o.omitEmpty = true
		}
	}
	return o
}

// fieldByOpt finds the struct field matching a map key: exact tag/name match
// first, then case-insensitive name match.
func fieldByOpt(ty reflect.Type, key string) (reflect.StructField, bool) {
	var fold reflect.StructField
	foldOK := false
	for i := 0; i < ty.NumField(); i++ {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		o := fieldOpt(f)
		if o.skip {
			continue
		}
		if o.name == key {
			return f, true
		}
		if !foldOK && strings.EqualFold(o.name, key) {
			fold = f
			foldOK = true
		}
	}
	return fold, foldOK
}

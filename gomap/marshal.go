// Package gomap converts between Go values and node trees by reflection.
//
// It is the conversion engine behind node.Set, node.FromValue and the
// node.As helpers for composite types: importing gomap registers it with the
// node package. Struct fields use the `treedoc` tag:
//
//	type Server struct {
//	    Host string `treedoc:"host"`
//	    Port int    `treedoc:"port,omitempty"`
//	    Skip string `treedoc:"-"`
//	}
//
// # Related Packages
//
//   - github.com/treedoc-format/go-treedoc/node - the document tree
package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/treedoc-format/go-treedoc/node"
)

var ErrMarshal = errors.New("marshal error")

// Marshal encodes a Go value into a fresh node tree. Pointers and
// interfaces are dereferenced, nil becomes Null, map entries are ordered by
// key, and types implementing encoding.TextMarshaler become string scalars.
func Marshal(v any) (*node.Node, error) {
	if n, ok := v.(*node.Node); ok {
		return n.Clone(), nil
	}
	return marshalValue(reflect.ValueOf(v))
}

func marshalValue(rv reflect.Value) (*node.Node, error) {
	if !rv.IsValid() {
		return node.New(), nil
	}
	if rv.CanInterface() {
		if tm, ok := rv.Interface().(encoding.TextMarshaler); ok {
			d, err := tm.MarshalText()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
			}
			return node.FromString(string(d)), nil
		}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return node.New(), nil
		}
		return marshalValue(rv.Elem())
	case reflect.Bool:
		return node.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return node.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return node.FromValue(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return node.FromFloat(rv.Float()), nil
	case reflect.String:
		return node.FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return node.FromString(string(rv.Bytes())), nil
		}
		res := node.NewKind(node.SequenceKind)
		for i := 0; i < rv.Len(); i++ {
			c, err := marshalValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			res.PushNode(c)
		}
		return res, nil
	case reflect.Map:
		return marshalMap(rv)
	case reflect.Struct:
		return marshalStruct(rv)
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrMarshal, rv.Type())
	}
}

func marshalMap(rv reflect.Value) (*node.Node, error) {
	byKey := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, ok := mapKeyText(iter.Key())
		if !ok {
			return nil, fmt.Errorf("%w: unsupported map key type %s", ErrMarshal, rv.Type().Key())
		}
		byKey[k] = iter.Value()
	}
	res := node.NewKind(node.MapKind)
	for _, k := range slices.Sorted(maps.Keys(byKey)) {
		c, err := marshalValue(byKey[k])
		if err != nil {
			return nil, err
		}
		res.ForceInsert(mapKeyNode(rv, k), c)
	}
	return res, nil
}

// mapKeyNode keeps integer-keyed Go maps integer-keyed in the tree.
func mapKeyNode(rv reflect.Value, text string) *node.Node {
	switch rv.Type().Key().Kind() {
	case reflect.String:
		return node.FromString(text)
	default:
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return node.FromInt(i)
		}
		return node.FromString(text)
	}
}

func mapKeyText(k reflect.Value) (string, bool) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), true
	default:
		return "", false
	}
}

func marshalStruct(rv reflect.Value) (*node.Node, error) {
	res := node.NewKind(node.MapKind)
	if err := marshalStructInto(rv, res); err != nil {
		return nil, err
	}
	return res, nil
}

func marshalStructInto(rv reflect.Value, res *node.Node) error {
	ty := rv.Type()
	for i := 0; i < ty.NumField(); i++ {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if f.Anonymous && f.Tag.Get("treedoc") == "" {
			// untagged embedded structs inline their fields
			ev := fv
			for ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					break
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				if err := marshalStructInto(ev, res); err != nil {
					return err
				}
				continue
			}
		}
		opt := fieldOpt(f)
		if opt.skip {
			continue
		}
		if opt.omitEmpty && fv.IsZero() {
			continue
		}
		c, err := marshalValue(fv)
		if err != nil {
			return err
		}
		res.ForceInsert(node.FromString(opt.name), c)
	}
	return nil
}

package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/treedoc-format/go-treedoc/node"
)

var ErrUnmarshal = errors.New("unmarshal error")

// Unmarshal decodes a node tree into the Go value p points at. Null nodes
// zero the target, and keys with no matching struct field are skipped.
func Unmarshal(n *node.Node, p any) error {
	if np, ok := p.(**node.Node); ok {
		*np = n
		return nil
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer, got %T", ErrUnmarshal, p)
	}
	return unmarshalValue(n, rv.Elem())
}

// To decodes the node as a T, reporting false on any mismatch.
func To[T any](n *node.Node) (T, bool) {
	var res T
	if err := Unmarshal(n, &res); err != nil {
		return res, false
	}
	return res, true
}

func unmarshalValue(n *node.Node, rv reflect.Value) error {
	if !n.IsDefined() {
		return fmt.Errorf("%w: undefined node", ErrUnmarshal)
	}
	if n.IsNull() {
		rv.SetZero()
		return nil
	}
	if rv.CanAddr() {
		if tu, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if !n.IsScalar() {
				return fmt.Errorf("%w: %s node into text unmarshaler", ErrUnmarshal, n.Kind())
			}
			if err := tu.UnmarshalText([]byte(n.Scalar())); err != nil {
				return fmt.Errorf("%w: %w", ErrUnmarshal, err)
			}
			return nil
		}
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(n, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("%w: cannot decode into non-empty interface %s", ErrUnmarshal, rv.Type())
		}
		v := Value(n)
		if v == nil {
			rv.SetZero()
			return nil
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	case reflect.Bool:
		v, ok := node.AsOptional[bool](n)
		if !ok {
			return scalarErr(n, rv)
		}
		rv.SetBool(v)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsScalar() {
			return scalarErr(n, rv)
		}
		v, err := strconv.ParseInt(n.Scalar(), 10, rv.Type().Bits())
		if err != nil {
			return scalarErr(n, rv)
		}
		rv.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !n.IsScalar() {
			return scalarErr(n, rv)
		}
		v, err := strconv.ParseUint(n.Scalar(), 10, rv.Type().Bits())
		if err != nil {
			return scalarErr(n, rv)
		}
		rv.SetUint(v)
		return nil
	case reflect.Float32, reflect.Float64:
		if !n.IsScalar() {
			return scalarErr(n, rv)
		}
		v, err := strconv.ParseFloat(n.Scalar(), rv.Type().Bits())
		if err != nil {
			return scalarErr(n, rv)
		}
		rv.SetFloat(v)
		return nil
	case reflect.String:
		if !n.IsScalar() {
			return scalarErr(n, rv)
		}
		rv.SetString(n.Scalar())
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 && n.IsScalar() {
			rv.SetBytes([]byte(n.Scalar()))
			return nil
		}
		if !n.IsSequence() {
			return fmt.Errorf("%w: %s node into %s", ErrUnmarshal, n.Kind(), rv.Type())
		}
		res := reflect.MakeSlice(rv.Type(), n.Size(), n.Size())
		i := 0
		it := n.Iter()
		for it.Next() {
			if err := unmarshalValue(it.Value(), res.Index(i)); err != nil {
				return err
			}
			i++
		}
		rv.Set(res)
		return nil
	case reflect.Array:
		if !n.IsSequence() {
			return fmt.Errorf("%w: %s node into %s", ErrUnmarshal, n.Kind(), rv.Type())
		}
		i := 0
		it := n.Iter()
		for it.Next() {
			if i >= rv.Len() {
				break
			}
			if err := unmarshalValue(it.Value(), rv.Index(i)); err != nil {
				return err
			}
			i++
		}
		return nil
	case reflect.Map:
		return unmarshalMap(n, rv)
	case reflect.Struct:
		return unmarshalStruct(n, rv)
	default:
		return fmt.Errorf("%w: unsupported target type %s", ErrUnmarshal, rv.Type())
	}
}

func unmarshalMap(n *node.Node, rv reflect.Value) error {
	if !n.IsMap() {
		return fmt.Errorf("%w: %s node into %s", ErrUnmarshal, n.Kind(), rv.Type())
	}
	res := reflect.MakeMapWithSize(rv.Type(), n.Size())
	keyTy := rv.Type().Key()
	valTy := rv.Type().Elem()
	it := n.Iter()
	for it.Next() {
		k, v := it.Entry()
		kv := reflect.New(keyTy).Elem()
		if err := unmarshalValue(k, kv); err != nil {
			return fmt.Errorf("%w: map key %q", ErrUnmarshal, k.Content())
		}
		vv := reflect.New(valTy).Elem()
		if err := unmarshalValue(v, vv); err != nil {
			return err
		}
		// duplicate keys collapse here, last one wins
		res.SetMapIndex(kv, vv)
	}
	rv.Set(res)
	return nil
}

func unmarshalStruct(n *node.Node, rv reflect.Value) error {
	if !n.IsMap() {
		return fmt.Errorf("%w: %s node into %s", ErrUnmarshal, n.Kind(), rv.Type())
	}
	it := n.Iter()
	for it.Next() {
		k, v := it.Entry()
		if !k.IsScalar() {
			continue
		}
		if !setStructKey(rv, k.Scalar(), v) {
			continue
		}
	}
	return nil
}

// setStructKey assigns v to the field named key, descending into untagged
// embedded structs. It reports whether a field matched; decode errors on a
// matched field are reported as a skip to keep partial documents loadable.
func setStructKey(rv reflect.Value, key string, v *node.Node) bool {
	ty := rv.Type()
	if f, ok := fieldByOpt(ty, key); ok {
		fv := rv.FieldByIndex(f.Index)
		return unmarshalValue(v, fv) == nil
	}
	for i := 0; i < ty.NumField(); i++ {
		f := ty.Field(i)
		if !f.Anonymous || f.Tag.Get("treedoc") != "" {
			continue
		}
		ev := rv.Field(i)
		for ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				ev.Set(reflect.New(ev.Type().Elem()))
			}
			ev = ev.Elem()
		}
		if ev.Kind() != reflect.Struct {
			continue
		}
		if setStructKey(ev, key, v) {
			return true
		}
	}
	return false
}

func scalarErr(n *node.Node, rv reflect.Value) error {
	if !n.IsScalar() {
		return fmt.Errorf("%w: %s node into %s", ErrUnmarshal, n.Kind(), rv.Type())
	}
	return fmt.Errorf("%w: scalar %q into %s", ErrUnmarshal, n.Scalar(), rv.Type())
}

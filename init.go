package wavesynth

import (
	"fmt"
	"reflect"
)

// Params are the rendering parameters shared by every unit in a patch.
type Params struct {
	SampleRate float64
}

func (p *Params) InitAudio(q Params) { *p = q }

// An Initer receives the rendering Params before the first sample is pulled.
type Initer interface {
	InitAudio(Params)
}

var initerType = reflect.TypeOf((*Initer)(nil)).Elem()

// Init hands p to x if it is an Initer.  Otherwise it descends into the
// exported fields, slice and array elements and interface values of x and
// does the same for each.  Nil pointers are skipped.
//
// Init panics if it reaches a value whose pointer is an Initer but which it
// cannot take the address of, such as a struct passed by value.  The message
// names the path to that value.
func Init(x interface{}, p Params) {
	if x == nil {
		return
	}
	w := initWalker{params: p}
	if err := w.walk(reflect.ValueOf(x), reflect.TypeOf(x).String()); err != nil {
		panic("wavesynth.Init: " + err.Error())
	}
}

type initWalker struct {
	params Params
}

func (w initWalker) walk(v reflect.Value, path string) error {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return w.walk(v.Elem(), path)
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
	}

	if x, ok := asIniter(v); ok {
		x.InitAudio(w.params)
		return nil
	}
	if v.Kind() != reflect.Ptr && reflect.PtrTo(v.Type()).Implements(initerType) {
		return fmt.Errorf("%s: %s is not addressable and only *%[2]s implements Initer", path, v.Type())
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if err := w.walk(v.Field(i), path+"."+t.Field(i).Name); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := w.walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func asIniter(v reflect.Value) (Initer, bool) {
	if v.CanAddr() {
		v = v.Addr()
	}
	x, ok := v.Interface().(Initer)
	return x, ok
}

// Package dbg gives pointers short pet names for debug output.
//
// Hull points are compared by identity, and two samples at the same spot print
// the same coordinates, so coordinates alone can't say which one a trace is
// talking about. A name like "TidyOtter" can.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

const nilName = "Ø"

// Names live for the whole process. Only debug output asks for them.
var names = map[interface{}]string{}

func init() {
	// A fixed sequence would suggest names are stable across runs, and they
	// aren't: they depend on the order things get printed in.
	petname.NonDeterministicMode()
}

// The name for obj, made up the first time it is asked for.
func Name(obj interface{}) string {
	if isNil(obj) {
		return nilName
	}
	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

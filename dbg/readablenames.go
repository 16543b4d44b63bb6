package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, which are a lot easier
// to tell apart than hex addresses when reading debug logs or rendered scenes.
// It leaks memory for every pointer it names, so keep it to debugging.

var (
	memoMutex sync.Mutex
	memo      map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable name for obj for the lifetime of the process. Nil
// pointers are named "Ø". Values that aren't pointers have no identity to
// name, so they are just formatted.
func Name(obj interface{}) string {
	value := reflect.ValueOf(obj)
	if !value.IsValid() {
		return "Ø"
	}
	if value.Kind() != reflect.Ptr {
		return fmt.Sprint(obj)
	}
	if value.IsNil() {
		return "Ø"
	}

	memoMutex.Lock()
	defer memoMutex.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

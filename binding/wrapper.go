// Package main is the cgo export surface for driving the solver from
// a host process (desktop/web shell), mirroring the teacher's
// binding/wrapper.go four-function shape: create a context once,
// query it repeatedly, let the caller free returned strings, release
// the context on shutdown.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/fenwicklabs/lexigram/driver"
	"github.com/fenwicklabs/lexigram/puzzle"
)

var (
	wordContext *puzzle.WordContext
	liveDriver  *driver.Driver
)

// queryResult is the JSON shape returned by Query: rendered solution
// strings plus any non-fatal warning (spec.md §6's "Solution
// rendering" and §7's warning channel).
type queryResult struct {
	Solutions []string `json:"solutions"`
	Warning   string   `json:"warning,omitempty"`
	Exhausted bool     `json:"exhausted"`
}

//export CreateContext
func CreateContext(path *C.char) C.int {
	goPath := C.GoString(path)
	ctx, err := puzzle.LoadWordContext(goPath)
	if err != nil {
		return -1
	}
	wordContext = ctx
	liveDriver = driver.New(ctx, nil)
	return 0
}

//export Query
func Query(text *C.char, max C.int) *C.char {
	if liveDriver == nil {
		return C.CString(`{"solutions":[],"warning":"context not initialized","exhausted":true}`)
	}
	goText := C.GoString(text)
	result := queryResult{}
	if err := liveDriver.ChangeText(goText); err != nil {
		result.Warning = liveDriver.Warning()
		result.Exhausted = true
		out, _ := json.Marshal(result)
		return C.CString(string(out))
	}

	n := int(max)
	if n <= 0 {
		n = driver.DefaultChunkSize
	}
	solutions, exhausted := liveDriver.LoadMore(n)
	rendered := make([]string, len(solutions))
	for i, s := range solutions {
		rendered[i] = s.Render()
	}
	result.Solutions = rendered
	result.Warning = liveDriver.Warning()
	result.Exhausted = exhausted

	out, err := json.Marshal(result)
	if err != nil {
		return C.CString(`{"solutions":[],"warning":"internal: failed to marshal result","exhausted":true}`)
	}
	return C.CString(string(out))
}

//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export ReleaseContext
func ReleaseContext() {
	liveDriver = nil
	wordContext = nil
}

func main() {}

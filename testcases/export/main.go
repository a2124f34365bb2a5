// Command export writes the test cases as JSON requests, for use with
// cmd/routeheat and other consumers of the wire format.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/testcases"
)

const outDir = "testdata/requests"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			req := tc.Request()
			if !finite(req.Routes) {
				// JSON has no representation for NaN and infinities.
				fmt.Fprintf(os.Stderr, "skipping %s: non-finite values\n", name)
				continue
			}
			if err := writeRequest(filepath.Join(outDir, name+".json"), req); err != nil {
				panic(err)
			}
		}
	}
}

func finite(b heatmap.Batch) bool {
	for _, v := range b {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

func writeRequest(fname string, req heatmap.Request) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return heatmap.EncodeRequest(f, req)
}

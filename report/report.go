package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/encrouter/route"
)

// Separator closes every solution block.
var Separator = strings.Repeat("-", 60)

// Write renders solutions to w.
func Write(w io.Writer, solutions []*route.Route) error {
	bw := bufio.NewWriter(w)
	for _, s := range solutions {
		if s == nil {
			continue
		}
		fmt.Fprintf(bw, "INITIAL SEED: %d\n", s.InitialSeed)
		if len(s.Log) > 0 {
			fmt.Fprintln(bw, s.Log.String())
		} else {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s\n\n", s)
		fmt.Fprintln(bw, Separator)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

// WriteFile renders solutions to the file at path, replacing it.
func WriteFile(path string, solutions []*route.Route) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	return Write(f, solutions)
}

// Command woc scores the structural vulnerability of vertices in an
// information-flow graph: (m,k)-observer status, S, D, π and the h-measure.
//
//	woc score --dataset florentine --vertex Medici
//	woc observer Medici --m 3 --k 5
//	woc prune --graph net.yaml --threshold 1 > core.yaml
//	woc report --graph core.yaml --out sullivan.xlsx
package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := execute(newRootCmd(a), a); err != nil {
		os.Exit(1)
	}
}

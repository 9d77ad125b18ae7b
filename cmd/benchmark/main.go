package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/patchbay/wire"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100

	profile = flag.String("profile", "default.pgo", "write a CPU profile to this file, empty to disable")
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
	benchmarkBindChain(true)
	benchmarkReentrant(true)
}

func addOne(v int) int {
	return v + 1
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// w sinks on one signal, each behind a chain of h maps
func benchmarkPropagate(shouldRender bool) {
	tbl := newTable("Signal fan-out through Map chains")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := wire.NewSignal[int]()
			total := 0
			for i := 0; i < w; i++ {
				var last wire.Source[int] = src
				for j := 0; j < h; j++ {
					last = wire.Map(last, addOne)
				}
				last.Connect(func(v int) {
					total += v
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Send(i)
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// h variables bound two-way in a line, alternately set from each end
func benchmarkBindChain(shouldRender bool) {
	tbl := newTable("Two-way binding chains")

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		connector := wire.NewConnector()
		vars := make([]*wire.Variable[int], h+1)
		for i := range vars {
			vars[i] = wire.NewVariable(0)
		}
		for i := 1; i < len(vars); i++ {
			wire.BindIn[int](connector, vars[i-1], vars[i])
		}

		for i := 0; i < iters; i++ {
			end := vars[0]
			if i%2 == 1 {
				end = vars[len(vars)-1]
			}
			start := time.Now()
			end.SetValue(i)
			tach.AddTime(time.Since(start))
		}
		connector.Disconnect()

		appendCalc(tbl, fmt.Sprintf("bind chain: %d", h), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// a sink that re-sends into its own signal h times per outer send
func benchmarkReentrant(shouldRender bool) {
	tbl := newTable("Reentrant sends")

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		src := wire.NewSignal[int]()
		src.Connect(func(v int) {
			if v > 0 {
				src.Send(v - 1)
			}
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			src.Send(h)
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("reentrant depth: %d", h), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

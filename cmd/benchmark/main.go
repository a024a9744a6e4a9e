package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/trackparty/observer"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagation()
}

func benchmarkPropagation() {
	tbl := table.NewWriter()
	tbl.SetTitle("Observer Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sys := observer.NewSystem(func(owner any, phase string, err error) {
				log.Panicf("%s: %v", phase, err)
			})
			state := observer.RecordFromMap(sys, map[string]any{"n": 0})
			observer.Observe(sys, state, true)

			runs := 0
			for i := 0; i < w; i++ {
				last := observer.Computed(sys, nil, func() (any, error) {
					return state.Get("n").(int) + 1, nil
				})
				for j := 0; j < h; j++ {
					prev := last
					last = observer.Computed(sys, nil, func() (any, error) {
						return prev.Value().(int) + 1, nil
					})
				}
				tail := last
				observer.NewWatcher(sys, nil, func() (any, error) {
					runs++
					return tail.Value(), nil
				}, nil, observer.WatcherOptions{Sync: true})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				state.Set("n", i+1)
				tach.AddTime(time.Since(start))
			}
			if runs < iters {
				log.Panicf("expected at least %d watcher runs, got %d", iters, runs)
			}

			m := tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("propagate: %dx%d", w, h),
				m.Time.Avg, m.Time.Min, m.Time.P75, m.Time.P99, m.Time.Max,
			})
		}
	}
	tbl.Render()
}

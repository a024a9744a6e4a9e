package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/trackparty/observer"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
)

type churnConfig struct {
	name       string // friendly name for the scenario, should be unique
	records    int    // records hanging off the root
	keys       int    // tracked keys per record
	listLen    int    // length of the per-record list
	iterations int64  // churn operations per run
}

func main() {
	cmd := &cli.Command{
		Name:  "stress",
		Usage: "Churn observed state and report throughput",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per scenario, best run is reported",
				Value: 5,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	repeats := int(cmd.Uint(repeatsKey))

	cfgs := []churnConfig{
		{name: "small component", records: 10, keys: 5, listLen: 10, iterations: 100_000},
		{name: "wide record", records: 100, keys: 20, listLen: 0, iterations: 50_000},
		{name: "list heavy", records: 10, keys: 2, listLen: 1_000, iterations: 20_000},
		{name: "dynamic keys", records: 50, keys: 0, listLen: 0, iterations: 50_000},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{
		"scenario", "size", "ops", "time", "opsPerMs", "triggers",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' scenario", cfg.name)

		best := time.Hour
		var bestTriggers int64
		for i := 0; i < repeats; i++ {
			triggers, duration := churnOnce(cfg)
			if duration < best {
				best = duration
				bestTriggers = triggers
			}
		}

		opsPerMs := float64(cfg.iterations) / (float64(best) / float64(time.Millisecond))
		tbl.Append([]string{
			cfg.name,
			fmt.Sprintf("%dr x %dk x %dl", cfg.records, cfg.keys, cfg.listLen),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best),
			humanize.Comma(int64(opsPerMs)),
			humanize.Comma(bestTriggers),
		})
	}
	tbl.Render()
	return nil
}

func churnOnce(cfg churnConfig) (triggers int64, duration time.Duration) {
	sys := observer.NewSystem(func(owner any, phase string, err error) {
		log.Panicf("%s: %v", phase, err)
	})

	root := observer.NewRecord(sys)
	for r := 0; r < cfg.records; r++ {
		child := map[string]any{}
		for k := 0; k < cfg.keys; k++ {
			child[fmt.Sprintf("k%d", k)] = 0
		}
		if cfg.listLen > 0 {
			items := make([]any, cfg.listLen)
			for i := range items {
				items[i] = i
			}
			child["items"] = items
		}
		rec := observer.RecordFromMap(sys, child)
		observer.Set(sys, root, fmt.Sprintf("r%d", r), rec)
	}
	observer.Observe(sys, root, false)

	// deep traversal subscribes the watcher to the whole tree
	w := observer.NewWatcher(sys, nil, func() (any, error) {
		triggers++
		return root, nil
	}, nil, observer.WatcherOptions{Sync: true, Deep: true})
	defer w.Teardown()

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		rec := root.Get(fmt.Sprintf("r%d", i%int64(cfg.records))).(*observer.Record)
		switch {
		case cfg.listLen > 0 && i%3 == 0:
			list := rec.Get("items").(*observer.List)
			list.Push(int(i))
			list.Pop()
		case cfg.keys > 0:
			rec.Set(fmt.Sprintf("k%d", i%int64(cfg.keys)), int(i))
		default:
			key := fmt.Sprintf("d%d", i%8)
			observer.Set(sys, rec, key, int(i))
			if i%16 == 15 {
				observer.Del(sys, rec, key)
			}
		}
	}
	return triggers, time.Since(start)
}

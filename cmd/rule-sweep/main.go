package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lifegrid/internal/sims/threshold"
	"lifegrid/internal/sweep"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) fields() (map[string]string, error) {
	out := map[string]string{}
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}

func main() {
	steps := flag.Int("steps", 100, "generations to simulate per seed")
	seeds := flag.Int("seeds", 8, "seeds evaluated per rule set")
	workers := flag.Int("workers", runtime.NumCPU(), "rule sets evaluated in parallel")
	top := flag.Int("top", 10, "results to print")
	starveMax := flag.Int("starvation-max", 4, "largest starvation threshold tried")
	overMax := flag.Int("overpopulation-max", 8, "largest overpopulation threshold tried")
	birthMax := flag.Int("birth-max", 8, "largest birth threshold tried")
	var overrides kvList
	flag.Var(&overrides, "set", "base setting override in key=value form (repeatable)")
	flag.Parse()

	fields, err := overrides.fields()
	if err != nil {
		log.Fatal(err)
	}
	base, err := threshold.ParseSettings(fields)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sweep.Config{
		Base:           base,
		Starvation:     sweep.Range{Min: 0, Max: *starveMax},
		Overpopulation: sweep.Range{Min: 0, Max: *overMax},
		Birth:          sweep.Range{Min: 1, Max: *birthMax},
		Seeds:          *seeds,
		Steps:          *steps,
		Workers:        *workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Base settings %v\n", base.Fields())
	fmt.Printf("Sweeping %d rule sets on %dx%d (chance %.2f, %d seeds, %d steps, %d workers)\n",
		len(sweep.Candidates(cfg)), base.Width, base.Height, base.SurvivalChance, *seeds, *steps, *workers)

	start := time.Now()
	results, err := sweep.Run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
}

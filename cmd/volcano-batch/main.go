package main

import (
	"flag"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"synthvolcano/internal/batch"
	"synthvolcano/internal/core"
	"synthvolcano/internal/volcano"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	def := volcano.DefaultConfig()
	count := flag.Int("count", 8, "number of volcanoes to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generators")
	seed := flag.Int64("seed", def.Seed, "seed of the first volcano; instance i uses seed+i")
	size := flag.Int("size", def.Size, "side length of the elevation raster")
	angle := flag.Float64("angle", def.AngleToSensor, "sensor look angle in radians")
	verbose := flag.Bool("v", false, "print the full parameter listing of every volcano")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	settings := map[string]string{
		"seed":  strconv.FormatInt(*seed, 10),
		"size":  strconv.Itoa(*size),
		"angle": strconv.FormatFloat(*angle, 'g', -1, 64),
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q: expected key=value", kv)
			continue
		}
		settings[parts[0]] = parts[1]
	}
	cfg := volcano.FromMap(settings)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("generating %d volcanoes (%d workers, size %d, seed %d)", *count, *workers, cfg.Size, cfg.Seed)

	start := time.Now()
	stageTotals := map[string]time.Duration{}
	all := batch.Run(cfg, *count, *workers, func(v *volcano.Volcano, s batch.Summary) {
		if s.Err != nil {
			log.Printf("#%d seed=%d failed: %v", s.Index, s.Seed, s.Err)
			return
		}
		log.Printf("#%d seed=%d height=%.0f base=%dx%d crater=%dx%d peak=%.1f range=%d took %s",
			s.Index, s.Seed, s.Params.Height, s.Params.BaseLongAxis, s.Params.BaseShortAxis,
			s.Params.CraterLongAxis, s.Params.CraterShortAxis, s.Stats.Peak, s.RangeWidth,
			total(s.Timings).Round(time.Millisecond))
		if *verbose {
			log.Printf("#%d parameters:\n%s", s.Index, s.Params)
		}
		for _, st := range s.Timings {
			stageTotals[st.Stage] += st.Duration
		}
	})

	ok := len(all) - batch.Failures(all)
	log.Printf("done in %s: %d ok, %d failed", time.Since(start).Round(time.Millisecond), ok, len(all)-ok)
	if ok == 0 {
		return
	}
	for _, stage := range []string{volcano.StageElevation, volcano.StageReflectance, volcano.StageProjection} {
		log.Printf("  %-12s mean %s", stage, (stageTotals[stage] / time.Duration(ok)).Round(time.Microsecond))
	}
}

func total(timings []core.StageTiming) time.Duration {
	var sum time.Duration
	for _, st := range timings {
		sum += st.Duration
	}
	return sum
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/bindery/ecs"
)

// Churn component set. A mix of value and pointer types so both copy and
// alias paths get exercised, plus one Releasable type for the dispose path.
type position struct{ x, y float64 }

type velocity struct{ dx, dy float64 }

type label string

type buffer struct {
	data     []byte
	releases int
}

func (b *buffer) Release() { b.releases++ }

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The number of entities churned per cycle.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("verbose", false, "Log every lifecycle operation to stderr.")
	flag.Parse()

	log.Println("Starting registry stress test...")

	opts := []ecs.Option{ecs.WithCapacity(*entityCount)}
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
		opts = append(opts, ecs.WithLogger(logger))
	}
	world := ecs.NewWorld(opts...)

	report := &Report{
		Duration: *duration,
		Entities: *entityCount,

		GCPauseMetrics: *gcPauseMetrics,
		CycleTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn cycles for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalCycles int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			cycleStart := time.Now()
			runCycle(world, *entityCount)
			report.CycleTime.Samples = append(report.CycleTime.Samples, time.Since(cycleStart))
			totalCycles++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalCycles = totalCycles
	report.EntitiesIssued = world.EntityCount()
	report.PooledBuffers = ecs.PoolSize[*buffer](world)
	report.CycleTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// runCycle drives one full lifecycle pass: create, bind (reusing pooled
// instances where available), query, then release everything back.
func runCycle(world *ecs.World, entityCount int) {
	entities := make([]ecs.EntityID, entityCount)
	for i := range entities {
		e := world.CreateEntity()
		entities[i] = e

		mustBind(ecs.Bind(world, e, position{x: rand.Float64(), y: rand.Float64()}))
		if i%2 == 0 {
			mustBind(ecs.Bind(world, e, velocity{dx: rand.Float64(), dy: rand.Float64()}))
		}
		if i%5 == 0 {
			mustBind(ecs.Bind(world, e, label(fmt.Sprintf("entity-%d", e))))
		}

		buf := ecs.Unbound[*buffer](world)
		if buf == nil {
			buf = &buffer{data: make([]byte, 256)}
		}
		mustBind(ecs.Bind(world, e, buf))
	}

	// Touch every binding the way a system pass would.
	var sum float64
	for pos := range ecs.All[position](world) {
		sum += pos.x + pos.y
	}
	_ = sum
	for e := range ecs.Entities[velocity](world) {
		if _, found := ecs.Get[position](world, e); !found {
			log.Fatalf("entity %d has velocity but no position", e)
		}
	}

	for _, e := range entities {
		if !world.ReleaseEntity(e) {
			log.Fatalf("failed to release entity %d", e)
		}
	}
}

func mustBind(ok bool, err error) {
	if err != nil {
		log.Fatalf("bind failed: %v", err)
	}
	if !ok {
		log.Fatal("bind rejected: entity not issued")
	}
}

// Command hive-stress exercises the storage core under sustained churn:
// each frame a slice of the population is destroyed and recreated, a mover
// system walks the Position/Velocity filter, and a decay system removes
// expired Lifetime components. It prints a report on exit.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/hivelib/hive"
)

type Position struct{ X, Y float64 }
type Velocity struct{ DX, DY float64 }
type Lifetime struct{ Remaining float64 }
type Tag struct{ Kind uint8 }

type moverSystem struct{}

func (moverSystem) Update(w *hive.World, dt float64) {
	hive.Each2(w, func(_ hive.Entity, p *Position, v *Velocity) {
		p.X += v.DX * dt
		p.Y += v.DY * dt
	})
}

type decaySystem struct {
	expired []hive.Entity
}

func (s *decaySystem) Update(w *hive.World, dt float64) {
	s.expired = s.expired[:0]
	hive.Each[Lifetime](w, func(e hive.Entity, l *Lifetime) {
		l.Remaining -= dt
		if l.Remaining <= 0 {
			s.expired = append(s.expired, e)
		}
	})
	for _, e := range s.expired {
		hive.Remove[Lifetime](w, e)
	}
}

func spawn(w *hive.World, rng *rand.Rand) hive.Entity {
	switch rng.Intn(3) {
	case 0:
		return hive.Create2(w, Position{X: rng.Float64()}, Velocity{DX: rng.Float64()})
	case 1:
		return hive.Create3(w, Position{}, Velocity{DY: rng.Float64()}, Lifetime{Remaining: rng.Float64() * 2})
	default:
		return hive.CreateWith(w, Tag{Kind: uint8(rng.Intn(4))})
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "total run duration")
	entityCount := flag.Int("entities", 10000, "population size")
	churn := flag.Int("churn", 500, "entities destroyed and respawned per frame")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	world := hive.NewWorld(*entityCount * 2)
	scheduler := hive.NewScheduler(world)
	scheduler.Add(moverSystem{})
	scheduler.Add(&decaySystem{})

	log.Printf("populating world with %d entities", *entityCount)
	population := make([]hive.Entity, 0, *entityCount)
	for i := 0; i < *entityCount; i++ {
		population = append(population, spawn(world, rng))
	}

	report := &Report{
		Duration: *duration,
		Entities: *entityCount,
		Churn:    *churn,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("running for %s", *duration)
	start := time.Now()
	last := start
	for time.Since(start) < *duration {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		frameStart := time.Now()
		scheduler.Update(dt)
		for i := 0; i < *churn; i++ {
			i := rng.Intn(len(population))
			world.Destroy(population[i])
			population[i] = spawn(world, rng)
		}
		report.Frames++
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
	}

	report.TotalTime = time.Since(start)
	report.Live = world.Count()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.FrameTime.Finalize()

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("report: %v", err)
	}
}

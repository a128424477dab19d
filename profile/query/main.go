// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/hivelib/hive"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		hive.ResetRegistry()
		w := hive.NewWorld(numEntities)
		batch := hive.NewBuilder2[comp1, comp2](w)
		batch.NewEntities(numEntities)

		query := hive.NewFilter2[comp1, comp2](w)
		for it := 0; it < iters; it++ {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}

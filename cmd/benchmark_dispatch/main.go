package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/patchbay/queue"
	"github.com/delaneyj/patchbay/wire"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-metrics"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting dispatch benchmark, please wait...")
	defer log.Print("Finished dispatch benchmark")

	cfgs := []benchmarkTestConfig{
		{name: "single hop", producers: 1, sinks: 1, layers: 0, values: 200_000},
		{name: "fan-out", producers: 1, sinks: 16, layers: 1, values: 50_000},
		{name: "many producers", producers: 8, sinks: 1, layers: 1, values: 50_000},
		{name: "deep chain", producers: 2, sinks: 2, layers: 50, values: 20_000},
		{name: "wide and deep", producers: 4, sinks: 8, layers: 10, values: 10_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "producers", "sinks", "layers", "nValues",
		"delivered", "time", "deliveryRate", "ordered",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		// warm up
		if _, err := benchmarkRun(&cfg); err != nil {
			log.Fatal(err)
		}

		var best *benchmarkResult
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			res, err := benchmarkRun(&cfg)
			if err != nil {
				log.Fatal(err)
			}
			if best == nil || res.duration < best.duration {
				best = res
			}
		}

		deliveryRate := float64(best.delivered) / (float64(best.duration) / float64(time.Millisecond))

		table.Append([]string{
			cfg.name,                            // test
			fmt.Sprint(cfg.producers),           // producers
			fmt.Sprint(cfg.sinks),               // sinks
			fmt.Sprint(cfg.layers),              // layers
			humanize.Comma(cfg.values),          // nValues
			humanize.Comma(best.delivered),      // delivered
			fmt.Sprint(best.duration),           // time
			humanize.Comma(int64(deliveryRate)), // deliveryRate (per ms)
			fmt.Sprint(best.ordered),            // ordered
		})
	}
	table.Render()
}

type benchmarkTestConfig struct {
	name      string // friendly name for the test, should be unique
	producers int    // independent signals, each sending from its own goroutine
	sinks     int    // dispatched connections per producer
	layers    int    // Map layers between each signal and its Dispatch
	values    int64  // values sent by each producer
}

type benchmarkResult struct {
	delivered int64
	duration  time.Duration
	ordered   bool
}

// fingerprint hashes a sequence of ints so delivery order can be compared
// without keeping the whole sequence.
type fingerprint struct {
	d   *xxhash.Digest
	buf []byte
	n   int64
}

func newFingerprint() *fingerprint {
	return &fingerprint{d: xxhash.New(), buf: make([]byte, 0, 8)}
}

func (f *fingerprint) add(v int) {
	f.buf = binary.LittleEndian.AppendUint64(f.buf[:0], uint64(v))
	f.d.Write(f.buf)
	f.n++
}

func benchmarkRun(cfg *benchmarkTestConfig) (*benchmarkResult, error) {
	q, err := queue.New(queue.WithName(cfg.name), queue.WithMetricSink(&metrics.BlackholeSink{}))
	if err != nil {
		return nil, fmt.Errorf("creating queue: %w", err)
	}
	defer q.Close()

	expected := newFingerprint()
	for i := 0; i < int(cfg.values); i++ {
		expected.add(i + cfg.layers)
	}

	connector := wire.NewConnector()
	defer connector.Disconnect()

	signals := make([]*wire.Signal[int], cfg.producers)
	prints := make([]*fingerprint, 0, cfg.producers*cfg.sinks)
	for p := range signals {
		signals[p] = wire.NewSignal[int]()
		var src wire.Source[int] = signals[p]
		for l := 0; l < cfg.layers; l++ {
			src = wire.Map(src, func(v int) int { return v + 1 })
		}
		dispatched := wire.Dispatch(src, q)
		for s := 0; s < cfg.sinks; s++ {
			fp := newFingerprint()
			prints = append(prints, fp)
			dispatched.Connect(fp.add).PutInto(connector)
		}
	}

	start := time.Now()
	var wg sync.WaitGroup
	for _, sig := range signals {
		wg.Add(1)
		go func(sig *wire.Signal[int]) {
			defer wg.Done()
			for i := 0; i < int(cfg.values); i++ {
				sig.Send(i)
			}
		}(sig)
	}
	wg.Wait()
	if err := q.Flush(context.Background()); err != nil {
		return nil, fmt.Errorf("flushing queue: %w", err)
	}
	res := &benchmarkResult{
		duration: time.Since(start),
		ordered:  true,
	}

	want := expected.d.Sum64()
	for _, fp := range prints {
		res.delivered += fp.n
		if fp.n != cfg.values || fp.d.Sum64() != want {
			res.ordered = false
		}
	}
	return res, nil
}

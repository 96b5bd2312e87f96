// Command ldpcsim is a thin frame-error-rate simulation front end for
// the ldpc package, kept outside the core library. It loads a mother
// matrix and an optional rate-adaption schedule, runs a fixed number of
// encode/flip/decode trials under a binary-symmetric channel, and
// reports the observed frame error rate.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/qkdcore/ldpc4qkd/channel"
	"github.com/qkdcore/ldpc4qkd/format"
	"github.com/qkdcore/ldpc4qkd/ldpc"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Scenario is the YAML scenario file shape: channel bit-flip
// probability, trial/iteration budgets, RNG seed, and file paths.
type Scenario struct {
	MatrixPath   string  `yaml:"matrix_path"`
	SchedulePath string  `yaml:"schedule_path,omitempty"`
	InitialK     int     `yaml:"initial_k"`
	P            float64 `yaml:"p"`
	Frames       int     `yaml:"frames"`
	MaxIter      int     `yaml:"max_iter"`
	Seed         int64   `yaml:"seed"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario file")
	example := flag.Bool("example", false, "run the bundled example matrix instead of -scenario")
	flag.Parse()

	var sc Scenario
	switch {
	case *example:
		sc = Scenario{
			MatrixPath: "testdata/example_h.cscmat",
			P:          1.0 / 7.0,
			Frames:     200,
			MaxIter:    ldpc.DefaultIMax,
			Seed:       1,
		}
	case *scenarioPath != "":
		data, err := os.ReadFile(*scenarioPath)
		if err != nil {
			log.Fatalf("read scenario: %v", err)
		}
		if err := yaml.Unmarshal(data, &sc); err != nil {
			log.Fatalf("parse scenario: %v", err)
		}
	default:
		log.Fatal("either -scenario or -example is required")
	}

	runID := uuid.New()
	log.Printf("run %s: loading mother matrix from %s", runID, sc.MatrixPath)

	mm, err := format.ReadCSCMat(sc.MatrixPath)
	if err != nil {
		log.Fatalf("load matrix: %v", err)
	}

	var scheduleRows []int
	if sc.SchedulePath != "" {
		sched, err := format.ReadScheduleCSV(sc.SchedulePath, mm.M())
		if err != nil {
			log.Fatalf("load schedule: %v", err)
		}
		for i := 0; i < sched.KMax(); i++ {
			a, b := sched.Pair(i)
			scheduleRows = append(scheduleRows, a, b)
		}
	}

	code, err := ldpc.NewFromAdjacency(mm.MotherAdjacency(), scheduleRows, sc.InitialK)
	if err != nil {
		log.Fatalf("build code: %v", err)
	}

	opts := ldpc.DefaultDecodeOptions()
	if sc.MaxIter > 0 {
		opts.IMax = sc.MaxIter
	}

	rng := rand.New(rand.NewSource(sc.Seed))
	errorsByFrame := make([]float64, sc.Frames)
	failures := 0
	for f := 0; f < sc.Frames; f++ {
		x := make([]ldpc.Bit, code.Cols())
		for i := range x {
			x[i] = ldpc.Bit(rng.Intn(2))
		}
		s, err := code.EncodeAtCurrentRate(x)
		if err != nil {
			log.Fatalf("encode: %v", err)
		}

		received := channel.FlipBits(rng, x, sc.P)
		llrs := channel.LLRsForBSC(received, sc.P)

		xHat, ok, _, err := code.DecodeAtCurrentRate(llrs, s, opts)
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		if !ok || !bitsMatch(xHat, x) {
			failures++
			errorsByFrame[f] = 1
		}
	}

	mean, stddev := stat.MeanStdDev(errorsByFrame, nil)
	log.Printf("run %s: frames=%d failures=%d FER=%.4f (stddev %.4f)", runID, sc.Frames, failures, mean, stddev)

	if failures > 0 {
		os.Exit(1)
	}
}

func bitsMatch(a, b []ldpc.Bit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

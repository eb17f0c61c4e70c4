/*

Mhchain samples the posterior distribution of normal-model parameters
from observed data using Metropolis-Hastings MCMC.

The basic usage looks like this:

	mhchain data.txt

, this will sample the posterior of the mean of the data (the noise
standard deviation is fixed, see -sigma) and print the accepted
samples.

You can sample both the mean and the standard deviation:

	mhchain -model meansd data.txt

To see all the options run:

	mhchain -h

*/
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/bayeskit/mhchain/checkpoint"
	"github.com/bayeskit/mhchain/mh"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("mhchain")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("mhchain", "Metropolis-Hastings sampler for normal models").Version(version)

	// input data
	dataFileName = app.Arg("data", "observed values, whitespace separated").Required().ExistingFile()

	// model
	model = app.Flag("model", "model to sample (mean: posterior of the mean, "+
		"meansd: posterior of the mean and the log standard deviation)").
		Default("mean").Enum("mean", "meansd")
	sigma     = app.Flag("sigma", "known noise standard deviation for the mean model").Default("1").Float64()
	priorMean = app.Flag("priormean", "mean of the normal prior").Default("0").Float64()
	priorSD   = app.Flag("priorsd", "standard deviation of the normal prior").Default("100").Float64()

	// sampler parameters
	samples    = app.Flag("samples", "total number of samples, including the initial state").Default("10000").Int()
	burnIn     = app.Flag("burnin", "fraction of the run to discard from the output").Default("0").Float64()
	mode       = app.Flag("mode", "output mode (split: accepted/rejected candidates, chain: full chain)").Default("split").Enum("split", "chain")
	proposalSD = app.Flag("sd", "proposal standard deviation").Default("1").Float64()
	accept     = app.Flag("accept", "report acceptance rate every N iterations").Default("200").Int()
	quiet      = app.Flag("quiet", "disable acceptance rate reports").Bool()

	// technical
	seed = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	outF     = app.Flag("out", "write samples to a file").String()
	jsonF    = app.Flag("json", "write json summary to a file").String()
	checkpF  = app.Flag("checkpoint", "bolt database file for chain checkpoints").String()
	plotF    = app.Flag("plot", "write a histogram of the first state component to a png file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// readData reads whitespace separated floats from a file.
func readData(fn string) ([]float64, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	var result []float64
	for scanner.Scan() {
		x, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return result, err
		}
		result = append(result, x)
	}
	return result, scanner.Err()
}

// writeStates writes one state per line.
func writeStates(f *os.File, states []mh.State) {
	for _, s := range states {
		fmt.Fprintln(f, s)
	}
}

// writeChain writes the full chain with iteration numbers.
func writeChain(f *os.File, chain []mh.State) {
	fmt.Fprintln(f, "iteration\tstate")
	for i, s := range chain {
		fmt.Fprintf(f, "%d\t%s\n", i, s)
	}
}

func run() (summary *RunSummary) {
	startTime := time.Now()
	summary = &RunSummary{
		Model:   *model,
		Samples: *samples,
		BurnIn:  *burnIn,
	}

	data, err := readData(*dataFileName)
	if err != nil {
		log.Fatal(err)
	}
	if len(data) == 0 {
		log.Fatal("No data values")
	}
	log.Infof("Read %d values", len(data))

	m, err := newNormModel(*model, *sigma, *priorMean, *priorSD)
	if err != nil {
		log.Fatal(err)
	}
	initial := m.Initial()

	var db *bolt.DB
	var cp *checkpoint.CheckpointIO
	if *checkpF != "" {
		db, err = bolt.Open(*checkpF, 0666, nil)
		if err != nil {
			log.Fatal("Error opening checkpoint database:", err)
		}
		defer db.Close()
		cp = checkpoint.NewCheckpointIO(db, []byte(*model), 30)
		state, err := cp.GetState()
		if err != nil {
			log.Fatal("Error reading checkpoint:", err)
		}
		if state != nil && !state.Final {
			log.Noticef("Resuming from checkpoint position (iter=%d)", state.Iter)
			if state.Scalar {
				initial = mh.Scalar(state.State[0])
			} else {
				initial = mh.Vector(state.State)
			}
		}
	}

	sampler := mh.New(mh.NormalProposal(*proposalSD), m.Scorer(data))
	sampler.AccPeriod = *accept
	sampler.Quiet = *quiet
	if cp != nil {
		sampler.SetCheckpointIO(cp)
	}

	f := os.Stdout
	if *outF != "" {
		f, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating output file:", err)
		}
		defer f.Close()
	}

	var accepted []mh.State
	switch *mode {
	case "split":
		sink := mh.NewSplit()
		err = sampler.Run(initial, *samples, *burnIn, sink)
		if err != nil {
			log.Fatal(err)
		}
		accepted = sink.Accepted()
		log.Noticef("%d accepted, %d rejected candidates past burn-in",
			len(sink.Accepted()), len(sink.Rejected()))
		writeStates(f, accepted)
	case "chain":
		sink := mh.NewFullChain()
		err = sampler.Run(initial, *samples, *burnIn, sink)
		if err != nil {
			log.Fatal(err)
		}
		accepted = sink.Chain()
		writeChain(f, sink.Chain())
	}

	summary.Accepted = sampler.Accepted()
	summary.Rejected = sampler.Rejected()

	if len(accepted) > 0 {
		mean, sd := statesMeanSD(accepted)
		for i := range mean {
			log.Noticef("component %d: mean=%f, sd=%f", i, mean[i], sd[i])
		}
		summary.Mean = mean
		summary.SD = sd
	}

	if *plotF != "" {
		if err := saveHistogram(accepted, *plotF); err != nil {
			log.Error("Error saving histogram:", err)
		}
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "mhchain")
	logging.SetLevel(level, "mh")
	logging.SetLevel(level, "checkpoint")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)
	rand.Seed(*seed)

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args
	summary.Seed = *seed

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}

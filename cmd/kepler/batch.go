package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/nominalsys/kepler/internal/metrics"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	elementColumns = []string{"id", "a", "e", "i", "raan", "argp", "nu"}
	stateColumns   = []string{"id", "rx", "ry", "rz", "vx", "vy", "vz"}
)

// batchOptions configures a batch run.
type batchOptions struct {
	inverse bool // states to elements
	deg     bool
	workers int
	μ       float64
	tol     kepler.Tolerances
}

func (o batchOptions) direction() string {
	if o.inverse {
		return "rv2coe"
	}
	return "coe2rv"
}

type batchJob struct {
	idx    int
	line   int
	record []string
}

type batchResult struct {
	record []string
	err    error
}

var batchFlags struct {
	in, out, textfile string
	inverse, deg      bool
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a CSV file of element sets (or states) concurrently",
	Long: `batch reads a CSV file with the header id,a,e,i,raan,argp,nu and writes the states
id,rx,ry,rz,vx,vy,vz,class. With --inverse the columns are swapped and the elements are written.
Rows which cannot be converted are logged and left out of the output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := conf.Body()
		if err != nil {
			return err
		}
		in, err := os.Open(batchFlags.in)
		if err != nil {
			return errors.Wrap(err, "batch input")
		}
		defer in.Close()
		var out io.Writer = cmd.OutOrStdout()
		if batchFlags.out != "" && batchFlags.out != "-" {
			f, err := os.Create(batchFlags.out)
			if err != nil {
				return errors.Wrap(err, "batch output")
			}
			defer f.Close()
			out = f
		}
		opts := batchOptions{
			inverse: batchFlags.inverse,
			deg:     batchFlags.deg,
			workers: conf.Workers,
			μ:       body.GM,
			tol:     conf.Tolerances,
		}
		rec := metrics.New()
		start := time.Now()
		n, failed, err := runBatch(cmd.Context(), in, out, opts, rec, log.With(logger, "in", batchFlags.in))
		rec.ObserveBatch(opts.direction(), start)
		if batchFlags.textfile != "" {
			if werr := rec.WriteTextfile(batchFlags.textfile); werr != nil {
				level.Error(logger).Log("msg", "could not write metrics", "err", werr)
			}
		}
		if err != nil {
			return err
		}
		level.Info(logger).Log("body", body.Name, "rows", n, "failed", failed, "took", time.Since(start))
		if failed > 0 {
			return fmt.Errorf("%d of %d rows failed", failed, n)
		}
		return nil
	},
}

func init() {
	fl := batchCmd.Flags()
	fl.StringVar(&batchFlags.in, "in", "", "input CSV file")
	fl.StringVar(&batchFlags.out, "out", "-", "output CSV file")
	fl.StringVar(&batchFlags.textfile, "metrics-textfile", "", "write the conversion metrics to this file")
	fl.BoolVar(&batchFlags.inverse, "inverse", false, "convert states to elements")
	fl.BoolVar(&batchFlags.deg, "deg", false, "angles in degrees")
	fl.Int("workers", 4, "number of conversion workers")
	mustBind("batch.workers", fl.Lookup("workers"))
	batchCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(batchCmd)
}

// runBatch converts every row of in and writes the results to out in the input order.
// It returns the number of rows read and how many of them failed.
func runBatch(ctx context.Context, in io.Reader, out io.Writer, opts batchOptions, rec *metrics.Recorder, logger log.Logger) (n, failed int, err error) {
	inCols, outCols := elementColumns, append(stateColumns, "class")
	if opts.inverse {
		inCols, outCols = stateColumns, append(elementColumns, "p", "class")
	}
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return 0, 0, errors.Wrap(err, "reading header")
	}
	cols, err := columnIndex(header, inCols)
	if err != nil {
		return 0, 0, err
	}
	var jobs []batchJob
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, errors.Wrap(err, "reading rows")
		}
		line, _ := r.FieldPos(0)
		picked := make([]string, len(cols))
		for k, c := range cols {
			picked[k] = record[c]
		}
		jobs = append(jobs, batchJob{idx: len(jobs), line: line, record: picked})
	}

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	results := make([]batchResult, len(jobs))
	queue := make(chan batchJob)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				results[job.idx] = convertRecord(job.record, opts, rec)
			}
		}()
	}
feed:
	for _, job := range jobs {
		select {
		case queue <- job:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return len(jobs), 0, err
	}

	cw := csv.NewWriter(out)
	cw.Write(outCols)
	for k, res := range results {
		if res.err != nil {
			failed++
			level.Warn(logger).Log("line", jobs[k].line, "id", jobs[k].record[0], "err", res.err)
			continue
		}
		cw.Write(res.record)
	}
	cw.Flush()
	return len(jobs), failed, errors.Wrap(cw.Error(), "writing output")
}

// columnIndex returns the position in header of each wanted column.
func columnIndex(header, wanted []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for k, name := range header {
		pos[strings.ToLower(strings.TrimSpace(name))] = k
	}
	idx := make([]int, len(wanted))
	for k, name := range wanted {
		c, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("missing column '%s' in header %v", name, header)
		}
		idx[k] = c
	}
	return idx, nil
}

// convertRecord converts one row, whose first field is the id and the next six the numbers.
func convertRecord(record []string, opts batchOptions, rec *metrics.Recorder) batchResult {
	dir := opts.direction()
	var x [6]float64
	for k := range x {
		f, err := strconv.ParseFloat(strings.TrimSpace(record[k+1]), 64)
		if err != nil {
			rec.Failed(dir, "parse")
			return batchResult{err: errors.Wrapf(err, "column %d", k+1)}
		}
		x[k] = f
	}
	if opts.inverse {
		s := kepler.State{R: [3]float64{x[0], x[1], x[2]}, V: [3]float64{x[3], x[4], x[5]}}
		o, err := kepler.VectorToClassicalTol(s, opts.μ, opts.tol)
		var warn *kepler.ParabolicOrbitWarning
		if err != nil && !errors.As(err, &warn) {
			rec.Failed(dir, failureReason(err))
			return batchResult{err: err}
		}
		rec.Converted(dir, o.Class.String())
		angles := [4]float64{o.I, o.RAAN, o.ArgPeri, o.Nu}
		if opts.deg {
			for k := range angles {
				angles[k] = kepler.Rad2deg(angles[k])
			}
		}
		return batchResult{record: []string{
			record[0], formatFloat(o.A), formatFloat(o.E),
			formatFloat(angles[0]), formatFloat(angles[1]), formatFloat(angles[2]), formatFloat(angles[3]),
			formatFloat(o.P), o.Class.String(),
		}}
	}
	a, e, i, Ω, ω, ν := x[0], x[1], x[2], x[3], x[4], x[5]
	if opts.deg {
		i, Ω, ω, ν = kepler.Deg2rad(i), kepler.Deg2rad(Ω), kepler.Deg2rad(ω), kepler.Deg2rad(ν)
	}
	s, err := kepler.ClassicalToVector(a, e, i, Ω, ω, ν, opts.μ)
	if err != nil {
		rec.Failed(dir, failureReason(err))
		return batchResult{err: err}
	}
	class := kepler.Classify(e, i, opts.tol)
	rec.Converted(dir, class.String())
	return batchResult{record: append(append([]string{record[0]}, stateRecord(s)...), class.String())}
}

func failureReason(err error) string {
	var invalid *kepler.InvalidElementsError
	if errors.As(err, &invalid) {
		return "invalid-elements"
	}
	return "other"
}

func stateRecord(s kepler.State) []string {
	return []string{
		formatFloat(s.R[0]), formatFloat(s.R[1]), formatFloat(s.R[2]),
		formatFloat(s.V[0]), formatFloat(s.V[1]), formatFloat(s.V[2]),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

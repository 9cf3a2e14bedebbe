package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"distlab/adapters/excel"
	"distlab/domain/dist"
	"distlab/engine/bayes"
	"distlab/engine/estimate"
	"distlab/engine/fitcheck"
	"distlab/engine/generate"
	"distlab/internal/rng"
	"distlab/ports"
	"distlab/reports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "distlab-cli",
		Short: "distlab CLI for one-shot generation, estimation and Bayes error runs",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newEstimateCmd(),
		newErrorCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// paramFlags is the shared distribution parameter flag set
type paramFlags struct {
	kind  string
	n     int
	p     float64
	a, b  float64
	m     float64
	sigma float64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "distribution family: binomial, uniform or normal")
	cmd.Flags().IntVar(&f.n, "n", 10, "binomial trial count")
	cmd.Flags().Float64Var(&f.p, "p", 0.5, "binomial success probability")
	cmd.Flags().Float64Var(&f.a, "a", 0, "uniform lower bound")
	cmd.Flags().Float64Var(&f.b, "b", 1, "uniform upper bound")
	cmd.Flags().Float64Var(&f.m, "m", 0, "normal mean")
	cmd.Flags().Float64Var(&f.sigma, "sigma", 1, "normal standard deviation")
}

func (f *paramFlags) params() (dist.Params, error) {
	kind, err := dist.ParseKind(f.kind)
	if err != nil {
		return dist.Params{}, err
	}
	switch kind {
	case dist.KindBinomial:
		return dist.NewBinomial(f.n, f.p)
	case dist.KindUniform:
		return dist.NewUniform(f.a, f.b)
	default:
		return dist.NewNormal(f.m, f.sigma)
	}
}

func source(seed int64) ports.RandomSource {
	if seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.New()
}

func newGenerateCmd() *cobra.Command {
	var flags paramFlags
	var sampleSize int
	var seed int64
	var xlsxOut string
	var fit bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample batch and print its estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params()
			if err != nil {
				return err
			}
			result, err := generate.Generate(source(seed), params, sampleSize)
			if err != nil {
				return err
			}
			est, err := estimate.Estimate(result)
			if err != nil {
				return err
			}
			fmt.Println(reports.EstimateReport(est))

			if fit {
				report, err := fitcheck.Check(result)
				if err != nil {
					return err
				}
				fmt.Println(report.Description)
			}
			if xlsxOut != "" {
				if err := excel.WriteResult(xlsxOut, result, est); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", xlsxOut)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&sampleSize, "samples", 1000, "sample size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write result workbook to this path")
	cmd.Flags().BoolVar(&fit, "fit", false, "run a chi-square goodness-of-fit check")
	return cmd
}

func newEstimateCmd() *cobra.Command {
	var sampleSize int
	var seed int64

	cmd := &cobra.Command{
		Use:   "estimate-all",
		Short: "Run the standard three-distribution comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			binomial, _ := dist.NewBinomial(10, 0.5)
			uniform, _ := dist.NewUniform(0, 1)
			normal, _ := dist.NewNormal(0, 1)
			requests := []estimate.Request{
				{Params: binomial, SampleSize: sampleSize},
				{Params: uniform, SampleSize: sampleSize},
				{Params: normal, SampleSize: sampleSize},
			}

			seq := int64(0)
			combined, err := estimate.EstimateAll(func() ports.RandomSource {
				if seed != 0 {
					seq++
					return rng.NewSeeded(seed + seq)
				}
				return rng.New()
			}, requests)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(combined, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&sampleSize, "samples", 1000, "sample size per distribution")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	return cmd
}

func newErrorCmd() *cobra.Command {
	var aFlags, bFlags paramFlags
	var priorA float64

	cmd := &cobra.Command{
		Use:   "error",
		Short: "Compute the two-class Bayes misclassification error",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only one param set per class on the command line; class B
			// flags are prefixed to keep them apart.
			paramsA, err := aFlags.params()
			if err != nil {
				return err
			}
			paramsB, err := bFlags.params()
			if err != nil {
				return err
			}
			classA := bayes.Class{Name: "A", Params: paramsA, Prior: priorA}
			classB := bayes.Class{Name: "B", Params: paramsB, Prior: 1 - priorA}

			_, details, total, err := bayes.MisclassificationError(classA, classB)
			if err != nil {
				return err
			}
			fmt.Println(reports.ErrorReport(details, total))
			return nil
		},
	}
	aFlags.register(cmd)
	cmd.Flags().StringVar(&bFlags.kind, "b-kind", "", "class B family")
	cmd.Flags().IntVar(&bFlags.n, "b-n", 10, "class B binomial trial count")
	cmd.Flags().Float64Var(&bFlags.p, "b-p", 0.5, "class B binomial success probability")
	cmd.Flags().Float64Var(&bFlags.a, "b-a", 0, "class B uniform lower bound")
	cmd.Flags().Float64Var(&bFlags.b, "b-b", 1, "class B uniform upper bound")
	cmd.Flags().Float64Var(&bFlags.m, "b-m", 0, "class B normal mean")
	cmd.Flags().Float64Var(&bFlags.sigma, "b-sigma", 1, "class B normal standard deviation")
	cmd.Flags().Float64Var(&priorA, "prior-a", 0.5, "class A prior (class B gets the complement)")
	return cmd
}

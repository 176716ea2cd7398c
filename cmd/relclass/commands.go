// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/binrel/relation"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// Closure kinds accepted by --kind.
var closures = map[string]func(relation.Matrix) (*relation.Dense, error){
	"reflexive":            relation.ReflexiveClosure,
	"symmetric":            relation.SymmetricClosure,
	"transitive":           relation.TransitiveClosure,
	"reflexive-transitive": relation.ReflexiveTransitiveClosure,
	"equivalence":          relation.EquivalenceClosure,
}

// classifyReport is the --output yaml document of the classify command.
type classifyReport struct {
	Size       int      `yaml:"size"`
	Properties []string `yaml:"properties"`
	Cycle      []int    `yaml:"cycle,omitempty"`
}

// extremalReport is the --output yaml document of the extremal command.
type extremalReport struct {
	Maxima    []int `yaml:"maxima"`
	Minima    []int `yaml:"minima"`
	Majorants []int `yaml:"majorants"`
	Minorants []int `yaml:"minorants"`
}

// newRootCmd builds the command tree. Every call returns fresh commands and
// flag state, so tests can execute trees side by side.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "relclass",
		Short: "Classify and transform binary relations given as 0/1 rows",
		Long: `relclass reads a square relation as positional rows of '0'/'1'
characters (row i, column j is "i is related to j") and classifies,
closes, narrows or inspects it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		newClassifyCmd(),
		newClosureCmd(),
		newExtremalCmd(),
		newNarrowCmd(),
	)

	return root
}

func newClassifyCmd() *cobra.Command {
	var (
		workers int
		acyclic bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "classify ROW...",
		Short: "Print every property the relation has",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--parallel must be >= 1, got %d", workers)
			}
			d, err := parseRows(args)
			if err != nil {
				return err
			}

			opts := []relation.Option{relation.WithParallel(workers)}
			if acyclic {
				opts = append(opts, relation.WithAcyclicity())
			}
			slog.Debug("classifying", slog.Int("size", d.Size()), slog.Int("workers", workers), slog.Bool("acyclic", acyclic))

			props, err := relation.Classify(cmd.Context(), d, opts...)
			if err != nil {
				return err
			}

			report := classifyReport{Size: props.Size, Properties: props.Names()}
			if acyclic && !props.Acyclic {
				if report.Cycle, err = relation.FindCycle(d); err != nil {
					return err
				}
			}
			slog.Debug("classified", slog.Int("properties", len(report.Properties)))

			if output == outputYAML {
				return writeYAML(cmd.OutOrStdout(), report)
			}
			w := cmd.OutOrStdout()
			if len(report.Properties) == 0 {
				fmt.Fprintln(w, "(none)")
			}
			for _, name := range report.Properties {
				fmt.Fprintln(w, name)
			}
			if report.Cycle != nil {
				fmt.Fprintf(w, "cycle: %v\n", report.Cycle)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "parallel", "p", relation.DefaultWorkers, "goroutines evaluating the primitive predicates")
	cmd.Flags().BoolVar(&acyclic, "acyclic", false, "also check acyclicity and print a cycle if one exists")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text|yaml")

	return cmd
}

func newClosureCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "closure ROW...",
		Short: "Print the closure of the relation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closure, ok := closures[kind]
			if !ok {
				return fmt.Errorf("unknown --kind %q (want %s)", kind, closureKinds())
			}
			d, err := parseRows(args)
			if err != nil {
				return err
			}

			out, err := closure(d)
			if err != nil {
				return err
			}
			slog.Debug("closure computed", slog.String("kind", kind), slog.Int("added", out.Count()-d.Count()))
			fmt.Fprint(cmd.OutOrStdout(), formatRows(out))

			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "transitive", "closure kind: "+closureKinds())

	return cmd
}

func newExtremalCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extremal ROW...",
		Short: "Print maxima, minima, majorants and minorants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			d, err := parseRows(args)
			if err != nil {
				return err
			}

			var report extremalReport
			if report.Maxima, err = relation.Maxima(d); err != nil {
				return err
			}
			if report.Minima, err = relation.Minima(d); err != nil {
				return err
			}
			if report.Majorants, err = relation.Majorants(d); err != nil {
				return err
			}
			if report.Minorants, err = relation.Minorants(d); err != nil {
				return err
			}

			if output == outputYAML {
				return writeYAML(cmd.OutOrStdout(), report)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "maxima: %v\n", report.Maxima)
			fmt.Fprintf(w, "minima: %v\n", report.Minima)
			fmt.Fprintf(w, "majorants: %v\n", report.Majorants)
			fmt.Fprintf(w, "minorants: %v\n", report.Minorants)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text|yaml")

	return cmd
}

func newNarrowCmd() *cobra.Command {
	var (
		policy string
		keep   string
	)

	cmd := &cobra.Command{
		Use:   "narrow ROW...",
		Short: "Restrict the relation to the elements named by --keep (1-based)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := parseKeep(keep)
			if err != nil {
				return err
			}
			d, err := parseRows(args)
			if err != nil {
				return err
			}

			var out *relation.Dense
			switch policy {
			case "resize":
				out, err = relation.Narrow(d, positions)
			case "preserve":
				out, err = relation.NarrowPreserve(d, positions)
			default:
				return fmt.Errorf("unknown --policy %q (want resize|preserve)", policy)
			}
			if err != nil {
				return err
			}
			slog.Debug("narrowed", slog.String("policy", policy), slog.Int("size", out.Size()))
			fmt.Fprint(cmd.OutOrStdout(), formatRows(out))

			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "resize", "resize (k×k result) or preserve (n×n result)")
	cmd.Flags().StringVar(&keep, "keep", "", "comma-separated 1-based positions to keep, e.g. 1,3")
	_ = cmd.MarkFlagRequired("keep")

	return cmd
}

// checkOutput rejects unknown --output values.
func checkOutput(output string) error {
	if output != outputText && output != outputYAML {
		return fmt.Errorf("unknown --output %q (want %s|%s)", output, outputText, outputYAML)
	}

	return nil
}

// writeYAML encodes v as a YAML document with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// closureKinds lists the --kind values in a stable order.
func closureKinds() string {
	return strings.Join([]string{"reflexive", "symmetric", "transitive", "reflexive-transitive", "equivalence"}, "|")
}

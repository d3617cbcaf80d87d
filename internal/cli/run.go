// File: internal/cli/run.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/momentics/hioload-sync/adapters"
	"github.com/momentics/hioload-sync/pipeline"
)

// intFlags maps flag names to the config keys they seed.
var intFlags = map[string]string{
	"producers":   pipeline.KeyProducers,
	"consumers":   pipeline.KeyConsumers,
	"items":       pipeline.KeyItems,
	"batch":       pipeline.KeyBatch,
	"buffer-size": pipeline.KeyBufferSize,
	"rounds":      pipeline.KeyRounds,
}

func addCommonFlags(flags *pflag.FlagSet) {
	def := pipeline.DefaultConfig()
	flags.Int("buffer-size", def.BufferSize, "Payload bytes per message")
	flags.Bool("pin", false, "Lock stage goroutines to OS threads")
	flags.Bool("stats", false, "Print queue counters and debug probes after the run")
}

// loadConfig copies the flags that were registered on cc into a control
// store and returns the validated pipeline config.
func loadConfig(cc *cobra.Command, ctrl *adapters.ControlAdapter) (pipeline.Config, error) {
	flags := cc.Flags()
	values := map[string]any{}

	var merr error
	for name, key := range intFlags {
		if flags.Lookup(name) == nil {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		values[key] = v
	}
	if flags.Lookup("shutdown") != nil {
		v, err := flags.GetString("shutdown")
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		values[pipeline.KeyShutdown] = v
	}
	pin, err := flags.GetBool("pin")
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	values[pipeline.KeyPin] = pin

	if merr != nil {
		return pipeline.Config{}, fmt.Errorf("invalid argument: %w", merr)
	}

	if err := ctrl.SetConfig(values); err != nil {
		return pipeline.Config{}, err
	}
	return pipeline.FromStore(ctrl.Config())
}

func printStats(w io.Writer, stats map[string]any) error {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v\n", k, stats[k])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// NewFanoutCmd runs producers and consumers around one queue.
func NewFanoutCmd() *cobra.Command {
	def := pipeline.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "fanout",
		Short: "Run producers and consumers around a blocking queue",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			ctrl := adapters.NewControlAdapter()
			cfg, err := loadConfig(cc, ctrl)
			if err != nil {
				return err
			}

			report, err := pipeline.Fanout(cc.Context(), cfg, ctrl, slog.Default())
			if err != nil {
				return err
			}

			out := cc.OutOrStdout()
			fmt.Fprintf(out, "produced=%d consumed=%d dropped=%d elapsed=%s\n",
				report.Produced, report.Consumed, report.Dropped, report.Elapsed)
			for i, n := range report.PerConsumer {
				fmt.Fprintf(out, "consumer[%d]=%d\n", i, n)
			}
			if stats, _ := cc.Flags().GetBool("stats"); stats {
				return printStats(out, ctrl.Stats())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("producers", def.Producers, "Number of producer goroutines")
	flags.Int("consumers", def.Consumers, "Number of consumer goroutines")
	flags.Int("items", def.Items, "Messages per producer")
	flags.Int("batch", def.Batch, "Messages per Buffer call (1 uses Push)")
	flags.String("shutdown", def.Shutdown.String(), "Shutdown protocol (drain, urgent, stop)")
	addCommonFlags(flags)

	return cmd
}

// NewPingPongCmd bounces one buffer between two stages.
func NewPingPongCmd() *cobra.Command {
	def := pipeline.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "pingpong",
		Short: "Pass one buffer between an I/O stage and a worker stage",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			ctrl := adapters.NewControlAdapter()
			cfg, err := loadConfig(cc, ctrl)
			if err != nil {
				return err
			}

			report, err := pipeline.PingPong(cc.Context(), cfg, ctrl, slog.Default())
			if err != nil {
				return err
			}

			out := cc.OutOrStdout()
			fmt.Fprintf(out, "rounds=%d mismatches=%d elapsed=%s\n",
				report.Rounds, report.Mismatches, report.Elapsed)
			if stats, _ := cc.Flags().GetBool("stats"); stats {
				return printStats(out, ctrl.Stats())
			}
			return nil
		},
	}

	cmd.Flags().Int("rounds", def.Rounds, "Number of round trips")
	addCommonFlags(cmd.Flags())

	return cmd
}

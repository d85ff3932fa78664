package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/condor/sage-replay-reader/pkg/mappics"
	"github.com/condor/sage-replay-reader/pkg/sage"
	"github.com/condor/sage-replay-reader/pkg/source"
)

type decodeOptions struct {
	variant string
	json    bool
	indent  bool
	mappics string
}

func newDecodeCmd(g *globalOptions) *cobra.Command {
	opts := &decodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode <file|url>...",
		Short: "Decode one or more replays",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, g, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.variant, "variant", "", "force a variant token instead of using the file extension")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a summary")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "indent JSON output")
	cmd.Flags().StringVar(&opts.mappics, "mappics", "", "map picture directory (overrides the settings file)")
	return cmd
}

func runDecode(cmd *cobra.Command, g *globalOptions, opts *decodeOptions, args []string) error {
	cfg := g.cfg
	if cmd.Flags().Changed("json") {
		cfg.JSON = opts.json
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = opts.indent
	}
	if opts.mappics != "" {
		cfg.MapPicsDir = opts.mappics
	}

	forced := false
	var variant sage.Variant
	if opts.variant != "" {
		v, err := sage.ParseVariant(opts.variant)
		if err != nil {
			return err
		}
		variant, forced = v, true
	}

	decoder := sage.NewDecoder(
		sage.WithMapPictures(mappics.Dir(cfg.MapPicsDir)),
		sage.WithLogger(log.Logger),
	)
	client := &http.Client{Timeout: cfg.Timeout}
	out := cmd.OutOrStdout()

	failed := 0
	for _, ref := range args {
		src := source.Open(ref, client, cfg.MaxSize)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		data, err := src.Bytes(ctx)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("replay", ref).Msg("could not read replay")
			failed++
			continue
		}

		var meta *sage.ReplayMetadata
		if forced {
			meta, err = decoder.DecodeVariant(data, src.Name(), variant)
		} else {
			meta, err = decoder.Decode(data, src.Name())
		}
		if err != nil {
			log.Error().Err(err).Str("replay", ref).Msg("could not decode replay")
			failed++
			continue
		}

		if cfg.JSON {
			b, err := meta.ToJSON(cfg.Indent)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			continue
		}
		writeSummary(out, meta)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(args))
	}
	return nil
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the supported game variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, v := range sage.Variants() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-14s *.%s%s\n", v.Token(), v, v.Token(), sage.ReplaySuffix)
			}
		},
	}
}

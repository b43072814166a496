package cmd

import (
	"context"
	"io"
	"math"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/service/icon"
)

// maxRandomSeed --randomで選ばれるシードの上限
const maxRandomSeed = 10_000_000

// generateCommand アイコン生成コマンド
func generateCommand() *cobra.Command {
	var (
		opts   jazzicon.Options
		seed   int64
		random bool
		format string
	)

	cmd := cobra.Command{
		Use:   "generate",
		Short: "Generate an icon and print its description",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case cmd.Flags().Changed("seed"):
				opts.Seed = &seed
			case random:
				opts = opts.WithSeed(randomSeed())
			}
			if err := validateOptions(opts, c.requestLimits()); err != nil {
				return err
			}

			logger := getCLILogger()
			defer logger.Sync()

			svc, err := icon.NewService(provideIconServiceConfig(&c), logger)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), svc, opts, format)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&seed, "seed", 0, "integer seed")
	flags.StringVar(&opts.Address, "address", "", "derive the seed from this address")
	flags.BoolVar(&random, "random", false, "use a random seed")
	flags.Float64Var(&opts.Diameter, "diameter", 0, "icon diameter (default from config)")
	flags.IntVar(&opts.ShapeCount, "shapes", 0, "number of shapes (default from config)")
	flags.StringSliceVar(&opts.Colors, "colors", nil, "color palette (default from config)")
	flags.StringVarP(&format, "format", "o", formatJSON, "output format (json|yaml)")
	cmd.MarkFlagsMutuallyExclusive("seed", "address", "random")
	cmd.MarkFlagsOneRequired("seed", "address", "random")

	return &cmd
}

func runGenerate(ctx context.Context, w io.Writer, svc icon.Service, opts jazzicon.Options, format string) error {
	spec, err := svc.Generate(ctx, opts)
	if err != nil {
		return err
	}
	return writeOutput(w, format, spec)
}

// randomSeed [0, maxRandomSeed]の範囲のシードを返します
func randomSeed() int64 {
	return int64(math.Round(rand.Float64() * maxRandomSeed))
}

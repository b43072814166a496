package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/service/icon"
)

// sampleAddresses デモ用のウォレットアドレス
var sampleAddresses = []string{
	"0x742d35Cc6634C0532925a3b8D4C9db96590e4CAF",
	"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
	"0x8ba1f109551bD432803012645Hac136c",
	"0x1234567890123456789012345678901234567890",
	"0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
	"0x9876543210987654321098765432109876543210",
}

type sample struct {
	Address string             `json:"address" yaml:"address"`
	Seed    uint32             `json:"seed" yaml:"seed"`
	Icon    *jazzicon.IconSpec `json:"icon" yaml:"icon"`
}

// samplesCommand サンプルアドレスのアイコン出力コマンド
func samplesCommand() *cobra.Command {
	var format string

	cmd := cobra.Command{
		Use:   "samples",
		Short: "Print icons for built-in sample addresses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := getCLILogger()
			defer logger.Sync()

			svc, err := icon.NewService(provideIconServiceConfig(&c), logger)
			if err != nil {
				return err
			}
			return runSamples(cmd.Context(), cmd.OutOrStdout(), svc, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatYAML, "output format (json|yaml)")

	return &cmd
}

func runSamples(ctx context.Context, w io.Writer, svc icon.Service, format string) error {
	samples := make([]sample, 0, len(sampleAddresses))
	for _, addr := range sampleAddresses {
		seed, err := jazzicon.SeedFromAddress(addr)
		if err != nil {
			return err
		}
		spec, err := svc.Generate(ctx, jazzicon.Options{Address: addr})
		if err != nil {
			return err
		}
		samples = append(samples, sample{Address: addr, Seed: seed, Icon: spec})
	}
	return writeOutput(w, format, samples)
}

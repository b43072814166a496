package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/service/icon"
)

type batchResult struct {
	Request jazzicon.Options   `json:"request" yaml:"request"`
	Icon    *jazzicon.IconSpec `json:"icon" yaml:"icon"`
}

// batchCommand YAMLで与えた複数リクエストの一括生成コマンド
func batchCommand() *cobra.Command {
	var (
		file        string
		concurrency int
		format      string
	)

	cmd := cobra.Command{
		Use:   "batch",
		Short: "Generate icons for a YAML list of requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := getCLILogger()
			defer logger.Sync()

			var r io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			svc, err := icon.NewService(provideIconServiceConfig(&c), logger)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), cmd.OutOrStdout(), r, svc, batchOptions{
				limits:      c.requestLimits(),
				concurrency: concurrency,
				format:      format,
				logger:      logger,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "-", "request YAML file path (- for stdin)")
	flags.IntVar(&concurrency, "concurrency", 4, "number of parallel generations")
	flags.StringVarP(&format, "format", "o", formatYAML, "output format (json|yaml)")

	return &cmd
}

type batchOptions struct {
	limits      requestLimits
	concurrency int
	format      string
	logger      *zap.Logger
}

func runBatch(ctx context.Context, w io.Writer, r io.Reader, svc icon.Service, o batchOptions) error {
	var requests []jazzicon.Options
	if err := yaml.NewDecoder(r).Decode(&requests); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode requests: %w", err)
	}

	errs := vd.Errors{}
	for i, req := range requests {
		if err := validateOptions(req, o.limits); err != nil {
			errs[fmt.Sprintf("%d", i)] = err
		}
	}
	if err := errs.Filter(); err != nil {
		return err
	}

	results := make([]batchResult, len(requests))
	eg, ctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		eg.SetLimit(o.concurrency)
	}
	for i, req := range requests {
		eg.Go(func() error {
			spec, err := svc.Generate(ctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = batchResult{Request: req, Icon: spec}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	o.logger.Info("batch generated", zap.Int("count", len(results)))

	return writeOutput(w, o.format, results)
}

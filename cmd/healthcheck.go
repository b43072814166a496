package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// healthStatus GET /api/v1/versionのレスポンス
type healthStatus struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}

// healthcheckCommand ヘルスチェックコマンド
func healthcheckCommand() *cobra.Command {
	var (
		host    string
		port    int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check that the icon API server is serving",
		Run: func(cmd *cobra.Command, _ []string) {
			logger := getCLILogger()
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if port == 0 {
				port = c.Port
			}
			baseURL := fmt.Sprintf("http://%s:%d", host, port)
			status, err := checkHealth(ctx, http.DefaultClient, baseURL)
			if err != nil {
				logger.Fatal("healthcheck failed", zap.String("url", baseURL), zap.Error(err))
			}
			logger.Info("healthy", zap.String("version", status.Version), zap.String("revision", status.Revision))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&host, "host", "localhost", "server host")
	flags.DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")
	flags.IntVar(&port, "port", 0, "server port (default: port in config)")

	return cmd
}

// checkHealth サーバーのバージョンAPIが応答するかを確認します
func checkHealth(ctx context.Context, client *http.Client, baseURL string) (*healthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/version", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	var status healthStatus
	if err := jsoniter.ConfigFastest.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("invalid version response: %w", err)
	}
	if len(status.Version) == 0 {
		return nil, errors.New("empty version in response")
	}
	return &status, nil
}

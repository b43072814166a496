package cmd

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // pprof init
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/traPtitech/jazzicon/logging"
)

var (
	Version  = "UNKNOWN"
	Revision = "UNKNOWN"
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// rootコマンドはダミー。コマンドとしては使用しない
var rootCommand = &cobra.Command{
	Use:          "jazzicon",
	Short:        "Deterministic jazzicon identicon generator",
	SilenceUsage: true,
	// 全コマンド共通の前処理
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// enable pprof http handler
		if c.Pprof {
			go func() { _ = http.ListenAndServe("0.0.0.0:6060", nil) }()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCommand.AddCommand(
		serveCommand(),
		generateCommand(),
		samplesCommand(),
		batchCommand(),
		confCommand(),
		versionCommand(),
		healthcheckCommand(),
	)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")

	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")
	flags.Bool("pprof", false, "expose pprof http interface")
	bindPFlag(flags, "pprof")
}

func initConfig() {
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("JAZZICON")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
}

// Execute コマンドを実行します
func Execute() error {
	return rootCommand.Execute()
}

// getLogger サーバー用ロガーを返します
func getLogger() *zap.Logger {
	logger, err := logging.New(logging.Config{
		ServiceName:    "jazzicon",
		ServiceVersion: fmt.Sprintf("%s.%s", Version, Revision),
		Development:    c.DevMode,
		Level:          c.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

// getCLILogger CLIコマンド用ロガーを返します
func getCLILogger() *zap.Logger {
	level := c.LogLevel
	if len(level) == 0 && !c.DevMode {
		level = "info"
	}
	logger, err := logging.New(logging.Config{
		Development: true,
		Level:       level,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func bindPFlag(flags *pflag.FlagSet, key string) {
	if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(err)
	}
}

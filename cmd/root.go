package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/candidate"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/screening"
	"github.com/spigell/resume-scorer/internal/textsource"
)

const (
	app = "resume-scorer"
)

type Config struct {
	Extraction *ExtractionConfig `mapstructure:"extraction"`
	Vocabulary *VocabularyConfig `mapstructure:"vocabulary"`
	Screening  *screening.Config `mapstructure:"screening"`
	Batch      *BatchConfig      `mapstructure:"batch"`
}

type ExtractionConfig struct {
	MaxFileSizeMB int `mapstructure:"max-file-size-mb"`
	PreviewLength int `mapstructure:"preview-length"`
}

type VocabularyConfig struct {
	Skills   []string `mapstructure:"skills"`
	Keywords []string `mapstructure:"keywords"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scorer extracts features from resumes and scores them against job descriptions",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetDefault("extraction.max-file-size-mb", textsource.DefaultMaxFileSizeMB)
	viper.SetDefault("extraction.preview-length", textsource.DefaultPreviewLength)
	viper.SetDefault("batch.concurrency", candidate.DefaultConcurrency)

	if err := viper.BindEnv("extraction.max-file-size-mb", "MAX_FILE_SIZE_MB"); err != nil {
		log.Fatalf("binding MAX_FILE_SIZE_MB environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// .env is optional.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Extraction == nil {
		config.Extraction = &ExtractionConfig{}
	}
	if config.Vocabulary == nil {
		config.Vocabulary = &VocabularyConfig{}
	}
	if config.Screening == nil {
		config.Screening = &screening.Config{}
	}
	if config.Batch == nil {
		config.Batch = &BatchConfig{}
	}

	return config, nil
}

// setup builds the logger and reads the config shared by all commands.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func newAnalyzer(config *Config, logger *zap.Logger) *analysis.Analyzer {
	a := analysis.New(analysis.Vocabulary{
		Skills:   config.Vocabulary.Skills,
		Keywords: config.Vocabulary.Keywords,
	})
	logger.Debug("using vocabulary", zap.Strings("skills", a.Skills()), zap.Strings("keywords", a.Keywords()))

	return a
}

func newExtractor(config *Config) *textsource.Extractor {
	return textsource.New(config.Extraction.MaxFileSizeMB, config.Extraction.PreviewLength)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

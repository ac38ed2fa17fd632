package configure

import (
	"bytes"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func checkErr(err error) {
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
}

func New() *Config {
	pflag.String("config", "config.yaml", "Config file location")
	pflag.Bool("noheader", false, "Disable the startup header")
	pflag.String("log_level", "info", "Log level (debug, info, warn, error)")
	pflag.String("working_dir", ".", "Directory the icon paths are resolved against")
	pflag.Parse()

	cfg, err := Load(pflag.CommandLine)
	checkErr(err)

	initLogging(cfg.LogLevel, cfg.NoLogs)

	return cfg
}

// Load layers the defaults, the optional config file, LOGO_* environment variables and
// explicitly set flags, from lowest to highest precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	config := viper.New()
	config.SetConfigType("yaml")

	b, err := json.Marshal(Default())
	if err != nil {
		return nil, err
	}

	tmp := viper.New()
	tmp.SetConfigType("json")
	if err := tmp.ReadConfig(bytes.NewBuffer(b)); err != nil {
		return nil, err
	}
	if err := config.MergeConfigMap(tmp.AllSettings()); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := config.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	config.SetConfigFile(config.GetString("config"))
	if err := config.MergeInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	config.SetEnvPrefix("LOGO")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AllowEmptyEnv(true)
	config.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows, nested keys have to be bound.
	for _, key := range envKeys {
		if err := config.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := config.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var envKeys = []string{
	"log_level",
	"config",
	"noheader",
	"nologs",
	"working_dir",
	"aws.access_token",
	"aws.secret_key",
	"aws.region",
	"aws.bucket",
	"aws.key_folder",
	"rmq.server_url",
	"rmq.result_queue_name",
	"rmq.update_queue_name",
}

func Default() Config {
	cfg := Config{
		LogLevel:   "info",
		Config:     "config.yaml",
		WorkingDir: ".",
	}
	cfg.Rmq.UpdateQueueName = "logo-animator-updates"
	cfg.Rmq.ResultQueueName = "logo-animator-results"

	return cfg
}

type Config struct {
	LogLevel string `json:"log_level,omitempty" mapstructure:"log_level,omitempty"`
	Config   string `json:"config,omitempty" mapstructure:"config,omitempty"`
	NoHeader bool   `json:"noheader,omitempty" mapstructure:"noheader,omitempty"`
	NoLogs   bool   `json:"nologs,omitempty" mapstructure:"nologs,omitempty"`

	// Aws
	Aws struct {
		AccessToken string `json:"access_token,omitempty" mapstructure:"access_token,omitempty"`
		SecretKey   string `json:"secret_key,omitempty" mapstructure:"secret_key,omitempty"`
		Region      string `json:"region,omitempty" mapstructure:"region,omitempty"`
		Bucket      string `json:"bucket,omitempty" mapstructure:"bucket,omitempty"`
		KeyFolder   string `json:"key_folder,omitempty" mapstructure:"key_folder,omitempty"`
	} `json:"aws,omitempty" mapstructure:"aws,omitempty"`

	Rmq struct {
		ServerURL       string `json:"server_url,omitempty" mapstructure:"server_url,omitempty"`
		ResultQueueName string `json:"result_queue_name,omitempty" mapstructure:"result_queue_name,omitempty"`
		UpdateQueueName string `json:"update_queue_name,omitempty" mapstructure:"update_queue_name,omitempty"`
	} `json:"rmq,omitempty" mapstructure:"rmq,omitempty"`

	WorkingDir string `json:"working_dir,omitempty" mapstructure:"working_dir,omitempty"`
}

package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/simulation"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sourcing",
	Short: "NPI sourcing simulation and fuzzy supplier evaluation",
	Long: `sourcing simulates the supplier sourcing process of a new product
introduction (NPI) project and evaluates suppliers with a Mamdani fuzzy
inference engine, either prioritizing implementation speed or spend
reduction.

Price statistics are confidential, so they are read from the environment
or a config file rather than shipped as constants: set
AVG_PRICE_{HIGH,MEDIUM,LOW}_COMPLEXITY, STDEV_PRICE_{HIGH,MEDIUM,LOW}_COMPLEXITY
and MINIMUM_PRICE before running a simulation.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sourcing.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Standard deviations default to 1 so that only the means are strictly
	// required.
	viper.SetDefault("stdev_price_high_complexity", 1)
	viper.SetDefault("stdev_price_medium_complexity", 1)
	viper.SetDefault("stdev_price_low_complexity", 1)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sourcing")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}

// simulationConfig assembles the price statistics from configuration.
func simulationConfig() simulation.Config {
	return simulation.Config{
		Price: map[entities.Complexity]simulation.PriceStats{
			entities.HighComplexity: {
				Mean:   viper.GetFloat64("avg_price_high_complexity"),
				StdDev: viper.GetFloat64("stdev_price_high_complexity"),
			},
			entities.MediumComplexity: {
				Mean:   viper.GetFloat64("avg_price_medium_complexity"),
				StdDev: viper.GetFloat64("stdev_price_medium_complexity"),
			},
			entities.LowComplexity: {
				Mean:   viper.GetFloat64("avg_price_low_complexity"),
				StdDev: viper.GetFloat64("stdev_price_low_complexity"),
			},
		},
		MinimumPrice: viper.GetFloat64("minimum_price"),
	}
}

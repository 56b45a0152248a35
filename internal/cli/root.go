package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "posterms",
	Short: "posterms - which words define a group of documents?",
	Long: `posterms computes tf-idf tables over a grouped text corpus and fits a
cross-validated LASSO logistic regression to find the lemmas that most
strongly predict membership in one group.

Corpus layout: one subdirectory per group, one .txt file per document.

The numbers it prints are corpus statistics, not judgments: a high
coefficient means "this word separates the groups in THIS corpus".`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("posterms v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.posterms.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// initConfig reads in config file and environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".posterms.yaml"))
		}
	}

	viper.SetEnvPrefix("POSTERMS")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults take over.
	_ = viper.ReadInConfig()
}

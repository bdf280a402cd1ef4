// @title         hrboard API
// @version       1.0
// @description   Приём резюме, оценка кандидатов LLM-моделью под выбранную вакансию и канбан-доска рекрутера.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDebug bool
	flagJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "hrboard",
	Short: "Resume intake, LLM evaluation and recruiter pipeline board",
	Long: `hrboard parses uploaded resumes, evaluates candidates against a job role with an LLM
and keeps them on a three-stage recruiter board. Configuration comes from the
environment or a .env file in the working directory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "json format for logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

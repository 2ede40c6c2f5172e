package main

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/leodahal4/portfolio/internal/config"
	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/web"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page to static files",
	Long:  "Renders the portfolio with every section revealed into a directory that can be served by any static file host.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "dist", "Output directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	site := content.Default()
	if err := site.Validate(); err != nil {
		return errors.Wrap(err, "portfolio content")
	}

	session, err := sessionFactory(cfg, site, schedule.RealClock())("static")
	if err != nil {
		return err
	}
	defer session.Close()

	if err := web.WriteSite(renderOutput, session); err != nil {
		return err
	}
	log.Printf("Rendered site to %s", renderOutput)
	return nil
}

package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"

	"github.com/leodahal4/portfolio/internal/config"
	"github.com/leodahal4/portfolio/internal/contact"
	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/page"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/skills"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	Long:          "Serves the portfolio page with its scroll reveals, tabbed panels and contact form, or renders it to static files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Additional .env file to load")
}

func main() {
	log.SetPrefix("[PORTFOLIO] ")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sessionFactory builds visitor sessions from the configured delays.
func sessionFactory(cfg *config.Config, site content.Site, clock schedule.Clock) page.Factory {
	opts := page.Options{
		Skills: skills.Options{},
		Contact: contact.Options{
			SubmitDelay:       cfg.SubmitDelay,
			ConfirmationDelay: cfg.ConfirmationDelay,
			Deliver: func(f contact.Fields) {
				log.Printf("Contact message from %s (%s): %d characters", f.Name, f.Email, len(f.Message))
			},
		},
	}
	return func(id string) (*page.Session, error) {
		return page.NewSession(id, site, clock, opts)
	}
}

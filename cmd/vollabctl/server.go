package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/config"
	"github.com/investlab/vollab/pkg/db"
	"github.com/investlab/vollab/pkg/server"
	"github.com/investlab/vollab/pkg/server/endpoints"
	"github.com/investlab/vollab/pkg/server/middleware"
	gormstore "github.com/investlab/vollab/pkg/server/store/gorm"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the vollab API server",
	Long: `Run the vollab API server.

Requires DATABASE_URL and VOLLAB_API_SECRET. By default, database
migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			os.Exit(1)
		}

		auth, err := middleware.NewJWTAuthenticator()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		srv := server.NewServer(
			cfg,
			database,
			gormstore.NewOptionsStore(database),
			gormstore.NewRatesStore(database),
			gormstore.NewHealthStore(database),
		)

		// Data endpoints require a bearer token; status stays open.
		srv.Router.Use(func(next http.Handler) http.Handler {
			return authExcept(auth, next, "/", "/health")
		})
		endpoints.RegisterAll(srv)

		log.Printf("Listening on %s", cfg.ListenAddress)

		errChan := make(chan error, 1)
		go func() { errChan <- srv.Start() }()

		// `vollabctl config apply` sends SIGHUP to request a reload.
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)

		for {
			select {
			case err := <-errChan:
				fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
				os.Exit(1)
			case <-sigChan:
				log.Println("Reloading configuration...")
				if err := config.Reload(); err != nil {
					log.Printf("Configuration reload failed: %v", err)
					continue
				}
				next := config.Get()
				if err := next.Validate(); err != nil {
					log.Printf("Reloaded configuration is invalid, keeping current: %v", err)
					continue
				}
				// Handlers hold the original pointer.
				*cfg = *next
				log.Println("Configuration reloaded")
			}
		}
	},
}

// authExcept applies the JWT middleware to every path except the listed
// public ones.
func authExcept(auth *middleware.JWTAuthenticator, next http.Handler, public ...string) http.Handler {
	publicPaths := make(map[string]bool, len(public))
	for _, p := range public {
		publicPaths[p] = true
	}
	protected := auth.Middleware(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	})
}

func init() {
	serverCmd.Flags().Bool("no-migrate", false, "skip database migrations on startup")
	rootCmd.AddCommand(serverCmd)
}

package cmd

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"localserve/core/browser"
	"localserve/core/config"
	"localserve/core/logger"
	"localserve/core/server"
	"localserve/feature/livereload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the static file server",
	Long: `Starts the HTTP server over the root directory, prints the serving URLs
and opens the homepage in the default browser. Runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		applyFlags(cmd, cfg)

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Resolve the port. Bind failures fall back to the scan range and
		// finally to OS assignment, so this never errors.
		cfg.Server.Port = server.FreePort(cfg.Server.Port)

		// 4. Bind the listener before printing anything: when FreePort
		// delegated to the OS (port 0) the URLs must carry the port that
		// was actually assigned.
		ln, err := net.Listen("tcp", cfg.Server.Addr())
		if err != nil {
			logg.Fatal("Failed to bind listen address", zap.String("addr", cfg.Server.Addr()), zap.Error(err))
		}
		cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port

		// 5. Build the Fiber app serving the root directory
		app := server.New(cfg.Server, logg, os.Stdout)

		// 6. Live reload (opt-in)
		feat := livereload.NewFeature(cfg.Server.Root, cfg.Livereload, logg)
		if feat.IsEnabled() {
			if err := feat.Load(app); err != nil {
				logg.Fatal("Failed to load live reload", zap.Error(err))
			}
			defer feat.Close()
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listener(ln); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		fmt.Printf("Serving at: %s\n", cfg.Server.BaseURL())
		fmt.Printf("Homepage:   %s\n", cfg.Server.HomepageURL())

		// 8. Open the default browser. Best effort: in a headless environment
		// the URLs above are still printed for manual use.
		if cfg.Server.OpenBrowser {
			if err := browser.Open(cfg.Server.HomepageURL()); err != nil {
				logg.Debug("Browser launch failed", zap.Error(err))
			}
		}

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nShutting down...")
		_ = app.Shutdown()
	},
}

// applyFlags overrides loaded configuration with flags the user set
// explicitly, so config and environment keep their defaults otherwise.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("root") {
		cfg.Server.Root, _ = cmd.Flags().GetString("root")
	}
	if cmd.Flags().Changed("no-browser") {
		noBrowser, _ := cmd.Flags().GetBool("no-browser")
		cfg.Server.OpenBrowser = !noBrowser
	}
	if cmd.Flags().Changed("livereload") {
		cfg.Livereload.Enabled, _ = cmd.Flags().GetBool("livereload")
	}
}

func init() {
	startCmd.Flags().Int("port", 8000, "Port to serve on (0 chooses a free port)")
	startCmd.Flags().String("root", ".", "Directory to serve")
	startCmd.Flags().Bool("no-browser", false, "Do not open the homepage in a browser")
	startCmd.Flags().Bool("livereload", false, "Reload connected pages when served files change")

	RootCmd.AddCommand(startCmd)
}

package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firegrid/internal/config"
	"github.com/vovakirdan/firegrid/internal/platform/logging"
	"github.com/vovakirdan/firegrid/internal/platform/tui"
	"github.com/vovakirdan/firegrid/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the firegrid SSH server",
	Long: `Start an SSH server that lets users edit scenarios remotely.

Each SSH connection gets its own editor on a fresh grid. Passing a scenario
name as the SSH command opens it from the library instead. Exports are saved
to the server's scenario library.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.firegrid/host_key

Examples:
  firegrid serve                           # Listen on :23235 with auto-generated key
  firegrid serve --ssh :2222               # Listen on port 2222
  firegrid serve --host-key ./my_host_key  # Use specific host key
  firegrid serve --db ./scenarios.db       # Use specific library

Users can connect with:
  ssh localhost -p 23235
  ssh localhost -p 23235 -t ridge`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closer, err := logging.New(cfg.Log, logging.Options{Prefix: "firegrid-ssh"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	mode, _ := cfg.ViewMode() // Validated by loadConfig
	hostKey := cfg.SSH.HostKeyPath
	if hostKey != "" {
		if hostKey, err = config.ExpandPath(hostKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = cfg.SSH.Address
	srvCfg.HostKeyPath = hostKey
	if d := cfg.SSH.IdleTimeout(); d > 0 {
		srvCfg.IdleTimeout = d
	}
	srvCfg.GridWidth, srvCfg.GridHeight = cfg.Grid.Width, cfg.Grid.Height
	srvCfg.ViewMode = mode
	srvCfg.Theme = tui.DefaultTheme().WithOverrides(cfg.View.Palette)
	srvCfg.MoistureStep = cfg.Moisture.Step
	srvCfg.MoistureBigStep = cfg.Moisture.BigStep

	// Open scenario storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scenario library, exports disabled", "error", err)
		store = nil
	}

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting firegrid SSH server on %s\n", srvCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(srvCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}

// port returns the port of a listen address for the connect hint.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil && p != "" {
		return p
	}
	return "23235"
}

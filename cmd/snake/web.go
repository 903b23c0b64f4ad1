package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/web"
)

var (
	flagWebAddr     string
	flagMaxSessions int
	flagQR          bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve Snake to browsers",
	Long: `Start an HTTP server with a canvas page. Every browser tab plays
its own game; the server runs the game and streams frames over a websocket.

Examples:
  snake web                    # Listen on :8080
  snake web --addr :9000       # Listen on port 9000
  snake web --qr               # Print a QR code of the LAN address`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 64, "Maximum concurrent games (0 = unlimited)")
	webCmd.Flags().BoolVar(&flagQR, "qr", false, "Print a QR code linking to the game")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "snake-web")

	server := web.NewServer(web.ServerConfig{
		Address:     flagWebAddr,
		MaxSessions: flagMaxSessions,
		Seed:        flagSeed,
	}, cfg, logger)

	url := gameURL(flagWebAddr)
	fmt.Printf("Starting Snake web server, open %s\n", url)
	if flagQR {
		qr, err := web.QRCode(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Print(qr)
		}
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// gameURL returns a URL other devices on the network can open. An empty
// host resolves to the first non-loopback IPv4 address.
func gameURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
		if ip := lanIP(); ip != "" {
			host = ip
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

func lanIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		if ipn, ok := a.(*net.IPNet); ok && !ipn.IP.IsLoopback() && ipn.IP.To4() != nil {
			return ipn.IP.String()
		}
	}
	return ""
}

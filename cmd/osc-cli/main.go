// Command osc-cli is an interactive client for OSC cameras.
//
// Usage:
//
//	osc-cli [flags]
//
// Flags:
//
//	-endpoint string      Camera base URL (default "http://192.168.1.1")
//	-config string        YAML configuration file
//	-user string          Digest authentication user (client mode)
//	-password string      Digest authentication password (client mode)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  File or directory to capture protocol events to (CBOR)
//	-metrics-addr string  Address to serve Prometheus metrics on
//	-discover             List cameras found via mDNS and exit
//
// Examples:
//
//	# Talk to a camera in access point mode
//	osc-cli
//
//	# Client mode, capturing the protocol for osc-log
//	osc-cli -endpoint http://192.168.0.20 -user THETAYR14010001 -password 14010001 \
//	    -protocol-log camera.osclog
//
//	# One capture file per session under captures/
//	osc-cli -protocol-log captures/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theta-osc/osc-go/cmd/osc-cli/interactive"
	"github.com/theta-osc/osc-go/pkg/discovery"
	osclog "github.com/theta-osc/osc-go/pkg/log"
	"github.com/theta-osc/osc-go/pkg/osc"
	"github.com/theta-osc/osc-go/pkg/theta"
)

// discoverTimeout bounds the mDNS browse of -discover and the discover
// command.
const discoverTimeout = 3 * time.Second

func main() {
	var (
		configFile  = flag.String("config", "", "YAML configuration file")
		endpoint    = flag.String("endpoint", "", "Camera base URL (default \""+theta.DefaultEndpoint+"\")")
		user        = flag.String("user", "", "Digest authentication user (client mode)")
		password    = flag.String("password", "", "Digest authentication password (client mode)")
		logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error (default \"info\")")
		protocolLog = flag.String("protocol-log", "", "File or directory to capture protocol events to (CBOR)")
		metricsAddr = flag.String("metrics-addr", "", "Address to serve Prometheus metrics on, e.g. :9100")
		discover    = flag.Bool("discover", false, "List cameras found via mDNS and exit")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Endpoint = *endpoint
		case "user":
			cfg.Username = *user
		case "password":
			cfg.Password = *password
		case "log-level":
			cfg.LogLevel = *logLevel
		case "protocol-log":
			cfg.ProtocolLog = *protocolLog
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := setupLogging(cfg.LogLevel, os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *discover {
		services, err := discoverCameras(ctx)
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		printProbes(ctx, services)
		return
	}

	camCfg := cfg.CameraConfig()
	camCfg.Logger = logger

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := osc.NewMetrics(reg)
		if err != nil {
			log.Fatalf("Failed to register metrics: %v", err)
		}
		camCfg.Metrics = metrics
		go serveMetrics(cfg.MetricsAddr, reg)
	}

	cam, err := theta.New(camCfg)
	if err != nil {
		log.Fatalf("Failed to create camera client: %v", err)
	}
	log.Printf("Camera endpoint: %s (session %s)", cam.Endpoint(), cam.Client().SessionID())

	var protoLoggers []osclog.Logger
	if cfg.LogLevel == "debug" {
		protoLoggers = append(protoLoggers, osclog.NewSlogAdapter(logger))
	}
	if cfg.ProtocolLog != "" {
		fileLogger, err := openProtocolLog(cfg.ProtocolLog, cam.Client().SessionID())
		if err != nil {
			log.Fatalf("Failed to open protocol log: %v", err)
		}
		defer fileLogger.Close()
		protoLoggers = append(protoLoggers, fileLogger)
		log.Printf("Capturing protocol events to %s", fileLogger.Path())
	}
	if len(protoLoggers) > 0 {
		cam.Client().SetProtocolLogger(osclog.NewMultiLogger(protoLoggers...))
	}

	shell := interactive.New(cam, os.Stdout, discoverCameras)
	if err := shell.Attach(); err != nil {
		log.Fatalf("Failed to start shell: %v", err)
	}
	// Redirect log output through readline to avoid interfering with input
	log.SetOutput(shell.Stdout())
	cam.Client().SetLogger(setupLogging(cfg.LogLevel, shell.Stdout()))
	go shell.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Context was cancelled (e.g., by interactive quit command)
	}
	cancel()
}

// setupLogging configures the standard logger flags and returns the
// operational slog logger writing to w.
func setupLogging(level string, w io.Writer) *slog.Logger {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var slogLevel slog.Level
	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
		slogLevel = slog.LevelDebug
	case "warn":
		log.SetFlags(log.Ltime)
		slogLevel = slog.LevelWarn
	case "error":
		log.SetFlags(log.Ltime)
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel}))
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	log.Printf("Serving metrics on %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Metrics server failed: %v", err)
	}
}

func discoverCameras(ctx context.Context) ([]*discovery.CameraService, error) {
	ctx, cancel := context.WithTimeout(ctx, discoverTimeout)
	defer cancel()

	browser := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
	defer browser.Stop()

	ch, err := browser.Browse(ctx)
	if err != nil {
		return nil, err
	}
	return discovery.Collect(ctx, ch), nil
}

// printProbes fetches /osc/info from every service and prints one line
// per camera.
func printProbes(ctx context.Context, services []*discovery.CameraService) {
	if len(services) == 0 {
		fmt.Println("No cameras found")
		return
	}
	results := discovery.ProbeAll(ctx, services, func(ctx context.Context, svc *discovery.CameraService) (theta.Info, error) {
		cam, err := theta.New(theta.Config{Endpoint: svc.Endpoint()})
		if err != nil {
			return theta.Info{}, err
		}
		return cam.Info(ctx)
	}, discovery.DefaultProbeConcurrency)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-24s %-28s error: %v\n", r.Service.InstanceName, r.Service.Endpoint(), r.Err)
			continue
		}
		fmt.Printf("%-24s %-28s %s %s (fw %s)\n",
			r.Service.InstanceName, r.Service.Endpoint(), r.Value.Manufacturer, r.Value.Model, r.Value.FirmwareVersion)
	}
}

// openProtocolLog opens path as a capture file, or a per-session file
// inside it when path is a directory or ends in a separator.
func openProtocolLog(path, sessionID string) (*osclog.FileLogger, error) {
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return osclog.NewSessionFileLogger(path, sessionID)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return osclog.NewSessionFileLogger(path, sessionID)
	}
	return osclog.NewFileLogger(path)
}

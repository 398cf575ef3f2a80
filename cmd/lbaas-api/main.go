package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/cloudnetlab/lbaas/pkg/metrics"
	"github.com/cloudnetlab/lbaas/pkg/netapi"
	"github.com/cloudnetlab/lbaas/pkg/provisioning"
	"github.com/cloudnetlab/lbaas/pkg/server"
	"github.com/cloudnetlab/lbaas/pkg/store/memstore"
	"github.com/cloudnetlab/lbaas/pkg/version"
)

var (
	configPath     string
	listenAddress  string
	metricsAddress string
)

func main() {
	cmd := &cobra.Command{
		Use:   "lbaas-api",
		Short: "Control-plane resource API for load balancers",
		Run: func(_ *cobra.Command, _ []string) {
			handle()
		},
		Version: version.Version,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the server configuration file.")
	cmd.PersistentFlags().StringVar(&listenAddress, "listen", "", "API listen address. Overrides the configuration file.")
	cmd.PersistentFlags().StringVar(&metricsAddress, "metrics-address", "",
		"The TCP network address for the prometheus listener (example: `:8080`). "+
			"The default is empty string, which means the listener is disabled.")

	klog.InitFlags(nil)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	pflag.CommandLine.AddFlagSet(cmd.PersistentFlags())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func handle() {
	configReader := io.Reader(strings.NewReader(""))
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			klog.Fatalf("failed to open config: %v", err)
		}
		defer f.Close()
		configReader = f
	}
	cfg, err := server.ReadConfig(configReader)
	if err != nil {
		klog.Fatalf("failed to read config: %v", err)
	}
	if listenAddress != "" {
		cfg.ListenAddress = listenAddress
	}
	if metricsAddress != "" {
		cfg.MetricsAddress = metricsAddress
	}

	// The store and network fabric are capability boundaries. This binary
	// ships with the in-memory store and the noop fabric; production
	// deployments swap in real implementations.
	svc := provisioning.NewService(memstore.New(), netapi.NewNoopClient())
	srv := server.NewServer(svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gCtx, cfg, srv.Router())
	})
	if cfg.MetricsAddress != "" {
		g.Go(func() error {
			return metrics.Run(gCtx, cfg.MetricsAddress)
		})
	}

	if err := g.Wait(); err != nil {
		klog.Fatalf("server failed: %v", err)
	}
}

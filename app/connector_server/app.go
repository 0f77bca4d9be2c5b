package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/inoova/shipping-connector/pkg/config"
	"github.com/inoova/shipping-connector/pkg/connector/api"
	"github.com/inoova/shipping-connector/pkg/connector/auth"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/client"
	"github.com/inoova/shipping-connector/pkg/connector/i18n"
	"github.com/inoova/shipping-connector/pkg/connector/panel"
	"github.com/inoova/shipping-connector/pkg/connector/storage/postgres"
	"github.com/inoova/shipping-connector/pkg/connector/tracking"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	"github.com/sirupsen/logrus"
)

const appName string = "shipping-connector"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the API server, the webhook processor and the tracking updater"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Tracker struct {
		Once bool `long:"once" help:"Refresh one batch and exit"`
	} `cmd:"" help:"Refresh the shipping status of tracked Delivery Notes"`
	CreateAPIKey struct {
		Name string `arg:"" help:"Name of the application the key is issued to"`
	} `cmd:"" name:"create-api-key" help:"Issue a new API key"`
	CreateShipment struct {
		DeliveryNote string `arg:"" help:"Name of the submitted Delivery Note"`
		URL          string `long:"url" help:"Base URL of the connector" default:"http://localhost:8080"`
		APIKey       string `long:"api-key" help:"API key string" env:"CONNECTOR_API_KEY"`
		Lang         string `long:"lang" help:"Language of the messages" default:"en"`
	} `cmd:"" name:"create-shipment" help:"Create the shipment of a Delivery Note through a running connector"`
	TrackingURL struct {
		TrackingNumber string `arg:"" help:"Tracking number"`
		Carrier        string `long:"carrier" help:"Carrier code (GLS, BRT, DHL, UPS)" default:"GLS"`
	} `cmd:"" name:"tracking-url" help:"Print the public tracking page of a package"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"path" default:"config.yaml"`
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	case "tracker":
		a.runTracker(cli)
	case "create-api-key <name>":
		a.runCreateAPIKey(cli)
	case "create-shipment <delivery-note>":
		a.runCreateShipment(cli)
	case "tracking-url <tracking-number>":
		fmt.Println(carrier.TrackingURL(cli.TrackingURL.Carrier, cli.TrackingURL.TrackingNumber))
	default:
	}
}

func (a *App) loadConfig(cli CLI) Config {
	var appConfig Config
	if err := config.FromFile(cli.Config, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}
	return appConfig
}

func (a *App) initExporter(ctx context.Context, endpoint string) func() {
	if endpoint == "" {
		return func() {}
	}

	exporter, err := otlp_util.InitExporter(
		otlp_util.WithContext(ctx),
		otlp_util.WithEndPoint(endpoint),
		otlp_util.WithServiceName(appName),
		otlp_util.WithInSecure(),
		otlp_util.WithErrorHandler(func(err error) {
			logrus.Warnf("OTLP error: %v", err)
		}),
	)
	if err != nil {
		logrus.Errorf("failed to initialize OTLP exporter: %v", err)
		os.Exit(128)
	}
	return func() { _ = exporter.Shutdown(ctx) }
}

func (a *App) trackerConfig(appConfig Config) tracking.Config {
	return tracking.Config{
		Database:      appConfig.Database,
		CheckInterval: appConfig.Tracker.CheckInterval,
		BatchSize:     appConfig.Tracker.BatchSize,
		RatePerSecond: appConfig.Tracker.RatePerSecond,
	}
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	appConfig := a.loadConfig(cli)
	shutdownExporter := a.initExporter(ctx, appConfig.OTLPEndpoint)
	defer shutdownExporter()

	apiConfig := api.APIConfig{
		Database:        appConfig.Database,
		LocalAddress:    net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(appConfig.Server.Port)),
		GLS:             appConfig.GLS,
		DefaultLanguage: appConfig.Locale,
	}
	apiServer, err := api.NewAPIWithConfig(apiConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processorConfig := webhook.Config{
		Database:      appConfig.Database,
		CheckInterval: appConfig.Webhook.CheckInterval,
		BatchSize:     appConfig.Webhook.BatchSize,
		Timeout:       appConfig.Webhook.Timeout,
		MaxRetry:      appConfig.Webhook.MaxRetry,
	}
	processor, err := webhook.NewProcessorWithConfig(processorConfig)
	if err != nil {
		logrus.Errorf("failed to create webhook processor: %v", err)
		os.Exit(128)
	}

	var updater *tracking.Updater
	if *appConfig.Tracker.Enabled {
		updater, err = tracking.NewUpdaterWithConfig(
			a.trackerConfig(appConfig),
			carrier.NewRegistryWithConfig(appConfig.GLS),
			tracking.WithPublisher(apiServer.Publisher()),
		)
		if err != nil {
			logrus.Errorf("failed to create tracking updater: %v", err)
			os.Exit(128)
		}
	}

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()
		processor.Run(ctx)
	}(wg)

	if updater != nil {
		wg.Add(1)
		go func(wg *sync.WaitGroup) {
			defer wg.Done()
			updater.Run(ctx)
		}(wg)
	}

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runMigrate(cli CLI) {
	appConfig := a.loadConfig(cli)

	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
		}
	})

	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: appConfig.Database.Database,
		Host:     appConfig.Database.Host,
		Port:     strconv.Itoa(appConfig.Database.Port),
		User:     appConfig.Database.User,
		Password: appConfig.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// The migrator would otherwise try to dump the schema after Up.
	migrator.SchemaPath = ""

	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func (a *App) runTracker(cli CLI) {
	ctx := context.Background()

	appConfig := a.loadConfig(cli)
	shutdownExporter := a.initExporter(ctx, appConfig.OTLPEndpoint)
	defer shutdownExporter()

	updater, err := tracking.NewUpdaterWithConfig(a.trackerConfig(appConfig), carrier.NewRegistryWithConfig(appConfig.GLS))
	if err != nil {
		logrus.Errorf("failed to create tracking updater: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cli.Tracker.Once {
		updated, err := updater.RunOnce(ctx)
		if err != nil {
			logrus.Errorf("failed to update tracking status: %v", err)
			os.Exit(1)
		}
		logrus.Infof("%d delivery notes updated", updated)
		return
	}

	updater.Run(ctx)
	logrus.Info("tracking updater stopped")
}

func (a *App) runCreateAPIKey(cli CLI) {
	ctx := context.Background()

	appConfig := a.loadConfig(cli)
	dbStorage, err := postgres.NewStorageWithConfig(appConfig.Database)
	if err != nil {
		logrus.Errorf("failed to create database connection: %v", err)
		os.Exit(128)
	}
	defer dbStorage.Close()

	authenticator := auth.NewAPIKeyAuthenticator(dbStorage)
	key, keyString, err := authenticator.CreateAPIKey(ctx, time.Now().Unix(), cli.CreateAPIKey.Name, "cli")
	if err != nil {
		logrus.Errorf("failed to create API key: %v", err)
		os.Exit(1)
	}

	logrus.Infof("API key %s issued to %q", key.ID, key.Name)
	fmt.Println(keyString)
}

func (a *App) runCreateShipment(cli CLI) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args := cli.CreateShipment
	tr, err := i18n.Load(args.Lang)
	if err != nil {
		logrus.Warnf("unsupported language %q, falling back to English: %v", args.Lang, err)
		tr = i18n.English()
	}

	c := client.NewClient(args.URL, client.WithAPIKey(args.APIKey))
	host := &consoleHost{
		out:    os.Stdout,
		ext:    panel.NewDeliveryNoteExtension(c, panel.WithTranslator(tr)),
		loader: c,
		name:   args.DeliveryNote,
	}

	note, err := c.GetDeliveryNote(ctx, args.DeliveryNote)
	if err != nil {
		logrus.Errorf("failed to get delivery note: %v", err)
		os.Exit(1)
	}

	if err := host.ext.Invoke(ctx, host, note, panel.ActionCreateShipment); err != nil {
		logrus.Errorf("failed to create shipment: %v", err)
		os.Exit(1)
	}
	if host.failed {
		os.Exit(1)
	}
}

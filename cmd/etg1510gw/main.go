// Command etg1510gw queries an EtherCAT main device through its Mailbox
// Gateway: it discovers the ETG.1510 object dictionary over the SDO
// Information Service and reads the diagnosis objects back via SDO Upload.
package main

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/samsamfire/etg1510gw/pkg/config"
	"github.com/samsamfire/etg1510gw/pkg/discovery"
	"github.com/samsamfire/etg1510gw/pkg/iteration"
	"github.com/samsamfire/etg1510gw/pkg/mailbox"
	"github.com/samsamfire/etg1510gw/pkg/metrics"
	"github.com/samsamfire/etg1510gw/pkg/od"
	"github.com/samsamfire/etg1510gw/pkg/sdo"
	log "github.com/sirupsen/logrus"
)

const programName = "etg1510gw"
const programDesc = "ETG.1510 diagnostic client for EtherCAT Mailbox Gateways"

var cli struct {
	Host        string        `arg:"" optional:"" help:"IPv4 address of the Mailbox Gateway."`
	Port        int           `help:"Mailbox Gateway UDP port (default 34980)."`
	Timeout     time.Duration `help:"Per-request timeout (default 3s)."`
	Config      string        `help:"INI settings file; flags override its values." type:"path"`
	LogLevel    string        `default:"info" enum:"debug,info,warn,error" help:"Log verbosity."`
	Index       string        `help:"Fetch a single index (e.g. 0xA000) and exit."`
	Watch       []string      `help:"Iterate these indices forever with pacing (e.g. 0xA000,0xF120)."`
	Interval    time.Duration `help:"Pacing delay between watch passes (default 300ms)."`
	MetricsAddr string        `help:"Serve Prometheus metrics on this address."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	settings := config.Default()
	if cli.Config != "" {
		settings, err = config.Load(cli.Config)
		ctx.FatalIfErrorf(err)
	}
	if cli.Host != "" {
		settings.Host = cli.Host
	}
	if cli.Port != 0 {
		settings.Port = cli.Port
	}
	if cli.Timeout != 0 {
		settings.Timeout = cli.Timeout
	}
	if cli.Interval != 0 {
		settings.PollInterval = cli.Interval
	}

	if net.ParseIP(settings.Host) == nil {
		log.Errorf("mailbox gateway address is missing or invalid: %q", settings.Host)
		os.Exit(255)
	}

	os.Exit(run(settings))
}

func run(settings *config.Settings) int {
	if cli.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(cli.MetricsAddr); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	session, err := mailbox.NewSession(settings.Host, settings.Port, settings.Timeout)
	if err != nil {
		log.Errorf("session: %v", err)
		return 255
	}

	catalogue := od.DefaultCatalogue()
	registry := od.NewRegistry()
	driver := discovery.New(sdo.NewController(session, true), catalogue, registry)

	ctx := context.Background()
	if err := driver.Discover(ctx); err != nil {
		log.Errorf("discovery: %v", err)
		return 1
	}

	watchList, err := watchIndices(settings)
	if err != nil {
		log.Errorf("watch list: %v", err)
		return 1
	}
	cursor := iteration.New(sdo.NewController(session, false), catalogue, registry, watchList)

	switch {
	case cli.Index != "":
		indices, err := config.ParseIndices(cli.Index)
		if err != nil || len(indices) != 1 {
			log.Errorf("invalid index %q", cli.Index)
			return 1
		}
		container, err := cursor.Get(ctx, indices[0])
		if err != nil {
			log.Errorf("fetch x%x: %v", indices[0], err)
			return 1
		}
		log.Infof("index x%x:\n%s", indices[0], spew.Sdump(container))
	case cli.Watch != nil:
		watchForever(ctx, cursor, settings.PollInterval)
	default:
		if err := dumpOnce(ctx, cursor); err != nil {
			log.Errorf("dump: %v", err)
			return 1
		}
	}
	return 0
}

// watchIndices resolves the watch list from the --watch flag, falling back
// to the settings file. nil means the whole registry.
func watchIndices(settings *config.Settings) ([]uint16, error) {
	var watchList []uint16
	for _, raw := range cli.Watch {
		indices, err := config.ParseIndices(raw)
		if err != nil {
			return nil, err
		}
		watchList = append(watchList, indices...)
	}
	if watchList == nil && len(settings.WatchIndices) > 0 {
		watchList = settings.WatchIndices
	}
	return watchList, nil
}

// dumpOnce walks one full pass and dumps every container.
func dumpOnce(ctx context.Context, cursor *iteration.Cursor) error {
	for {
		item, err := cursor.Next(ctx)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		log.Infof("index x%x:\n%s", item.Index, spew.Sdump(item.Container))
	}
}

// watchForever re-runs the cursor to completion and sleeps between passes.
// Per-index failures are logged and the walk continues.
func watchForever(ctx context.Context, cursor *iteration.Cursor, interval time.Duration) {
	for {
		start := time.Now()
		for {
			item, err := cursor.Next(ctx)
			if err != nil {
				log.Warnf("watch: %v", err)
				continue
			}
			if item == nil {
				break
			}
			log.Debugf("index x%x updated:\n%s", item.Index, spew.Sdump(item.Container))
		}
		metrics.LastPollDuration.Set(time.Since(start).Seconds())
		time.Sleep(interval)
	}
}

package commands

import (
	"io"
	"os"
	"time"

	"github.com/akasprzok/ragbadge/internal/prometheus"
	"github.com/akasprzok/ragbadge/internal/scales"
	"github.com/sirupsen/logrus"
)

// ClientFactory opens a Prometheus client for a URL.
type ClientFactory func(url string) (prometheus.Client, error)

// Context carries the shared, read-only dependencies of every command.
type Context struct {
	Timeout   time.Duration
	Resolver  *scales.Resolver
	Scales    *scales.Scales
	Log       *logrus.Logger
	Out       io.Writer
	In        io.Reader
	NewClient ClientFactory
}

type CLI struct {
	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel string        `name:"log-level" help:"Log level." default:"warn" enum:"debug,info,warn,error" env:"RAGBADGE_LOG_LEVEL"`
	Buckets  string        `name:"buckets" help:"YAML file of extra status buckets." type:"existingfile" env:"RAGBADGE_BUCKETS"`

	Resolve     ResolveCmd     `cmd:"" help:"Resolve codes to colors."`
	Scale       ScaleCmd       `cmd:"" help:"Look codes up in a named scale."`
	Scales      ScalesCmd      `cmd:"" help:"List named scales."`
	Legend      LegendCmd      `cmd:"" help:"Browse every code interactively."`
	Export      ExportCmd      `cmd:"" help:"Export the status table and named scales."`
	Chart       ChartCmd       `cmd:"" help:"Bar chart of codes read from stdin, one per line."`
	Query       QueryCmd       `cmd:"" help:"Instant query, colored by a label."`
	QueryRange  QueryRangeCmd  `cmd:"" help:"Range query, colored by a label."`
	Values      ValuesCmd      `cmd:"" help:"Label values as badges."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

// NewContext builds the resolver and logger from the global flags.
func (c *CLI) NewContext() (*Context, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	resolver := scales.DefaultResolver()
	if c.Buckets != "" {
		resolver, err = scales.NewResolverWithFile(c.Buckets)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"file": c.Buckets,
			"keys": resolver.Table().Len(),
		}).Debug("loaded extra buckets")
	}

	return &Context{
		Timeout:   c.Timeout,
		Resolver:  resolver,
		Scales:    scales.DefaultScales(),
		Log:       log,
		Out:       os.Stdout,
		In:        os.Stdin,
		NewClient: prometheus.NewClient,
	}, nil
}

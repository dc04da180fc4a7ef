package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/broady/eventbrite"
	"github.com/broady/eventbrite/middleware"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Globals are the flags shared by every command.
type Globals struct {
	AppKey  string `help:"Application key." env:"EVENTBRITE_APP_KEY" name:"app-key"`
	UserKey string `help:"User key." env:"EVENTBRITE_USER_KEY" name:"user-key"`
	Host    string `help:"API host." env:"EVENTBRITE_HOST" default:"www.eventbrite.com"`
	Format  string `help:"Output format." enum:"json,yaml" default:"json" short:"o"`
	Debug   bool   `help:"Log requests and responses to stderr."`

	out io.Writer `kong:"-"`
}

func (g *Globals) client() *eventbrite.Client {
	level := slog.LevelWarn
	if g.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return eventbrite.NewClient(g.AppKey, g.UserKey).
		WithHost(g.Host).
		WithLogger(logger).
		WithInterceptor(middleware.LoggingInterceptor(logger))
}

// run executes fn with a configured client and prints its result.
func (g *Globals) run(fn func(ctx context.Context, c *eventbrite.Client) (any, error)) (err error) {
	if g.AppKey == "" || g.UserKey == "" {
		return fmt.Errorf("both --app-key and --user-key (or EVENTBRITE_APP_KEY and EVENTBRITE_USER_KEY) are required")
	}
	c := g.client()
	defer c.Close()

	res, err := fn(context.Background(), c)
	if err != nil {
		return err
	}
	return g.print(res)
}

func (g *Globals) print(v any) error {
	switch g.Format {
	case "yaml":
		enc := yaml.NewEncoder(g.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(g.out, "%s\n", data)
		return err
	}
}

type CLI struct {
	Globals

	Version   VersionCmd   `cmd:"" help:"Print version information."`
	Methods   MethodsCmd   `cmd:"" help:"List the API operations known to the client."`
	Event     EventCmd     `cmd:"" help:"Event operations."`
	Organizer OrganizerCmd `cmd:"" help:"Organizer operations."`
	User      UserCmd      `cmd:"" help:"User operations."`
}

type VersionCmd struct {
	Verbose bool `help:"Print build details in the output format." short:"v"`
}

func (c *VersionCmd) Run(g *Globals) error {
	if c.Verbose {
		return g.print(readBuildInfo(debug.ReadBuildInfo()))
	}
	fmt.Fprintln(g.out, Version())
	return nil
}

type MethodsCmd struct{}

func (c *MethodsCmd) Run(g *Globals) error {
	for _, m := range eventbrite.Catalog() {
		status := "supported"
		if !m.Supported() {
			status = "unsupported: " + m.Unsupported
		}
		fmt.Fprintf(g.out, "%-24s %-11s %s\n", m.Name, m.Group, status)
	}
	return nil
}

func main() {
	cli := &CLI{}
	cli.out = os.Stdout
	ctx := kong.Parse(cli,
		kong.Name("eventbrite"),
		kong.Description("Command-line access to the Eventbrite JSON API."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

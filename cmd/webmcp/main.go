package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webmcp"
	"github.com/fwojciec/webmcp/goquery"
	webmcphttp "github.com/fwojciec/webmcp/http"
	webmcpmcp "github.com/fwojciec/webmcp/mcp"
	"github.com/fwojciec/webmcp/opengraph"
	"github.com/fwojciec/webmcp/readability"
	webmcpslog "github.com/fwojciec/webmcp/slog"
	"github.com/fwojciec/webmcp/trafilatura"
	"github.com/fwojciec/webmcp/yaml"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// shutdownTimeout bounds graceful shutdown of the HTTP transport.
const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the stdio transport. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Path to a YAML configuration file." env:"WEBMCP_CONFIG" placeholder:"PATH"`

	Transport string        `enum:"stdio,http" default:"stdio" env:"WEBMCP_TRANSPORT" help:"MCP transport (${enum})."`
	Addr      string        `default:"127.0.0.1:8080" env:"WEBMCP_ADDR" help:"Listen address for the http transport."`
	Timeout   time.Duration `default:"30s" env:"WEBMCP_TIMEOUT" help:"Timeout per outbound HTTP request."`
	UserAgent string        `default:"${user_agent}" env:"WEBMCP_USER_AGENT" help:"User-Agent sent with outbound requests."`

	SearchURL   string  `name:"search-url" default:"${search_url}" env:"WEBMCP_SEARCH_URL" help:"DuckDuckGo HTML endpoint."`
	Region      string  `default:"${region}" env:"WEBMCP_REGION" help:"Search region (kl parameter)."`
	Concurrency int     `default:"1" env:"WEBMCP_CONCURRENCY" help:"Concurrent result page fetches per search."`
	Extractor   string  `enum:"heuristic,readability,trafilatura" default:"heuristic" env:"WEBMCP_EXTRACTOR" help:"Content extractor (${enum})."`
	RateLimit   float64 `default:"0" env:"WEBMCP_RATE_LIMIT" help:"Requests per second per host, 0 for unlimited."`

	MaxBodyBytes int64 `default:"${max_body_bytes}" env:"WEBMCP_MAX_BODY_BYTES" help:"Maximum response body size read per request."`

	LogLevel  string `enum:"debug,info,warn,error" default:"info" env:"WEBMCP_LOG_LEVEL" help:"Log level (${enum})."`
	LogFormat string `enum:"text,json" default:"text" env:"WEBMCP_LOG_FORMAT" help:"Log format (${enum})."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

// Run parses args and serves MCP until ctx is done or the stdio client
// disconnects.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("webmcp"),
		kong.Description("MCP server providing web search and URL inspection tools"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Configuration(yaml.Loader),
		kong.Vars{
			"version":        version,
			"user_agent":     webmcp.DefaultUserAgent,
			"search_url":     webmcp.DefaultSearchEndpoint,
			"region":         webmcp.DefaultRegion,
			"max_body_bytes": fmt.Sprint(webmcphttp.DefaultMaxBodyBytes),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}
	if exited {
		// --help or --version
		return nil
	}

	logger := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	server := newServer(cli, logger)

	logger.Info("starting webmcp",
		"version", version,
		"transport", cli.Transport,
		"extractor", cli.Extractor,
	)

	switch cli.Transport {
	case "http":
		return serveHTTP(ctx, server, cli.Addr, logger)
	default:
		return server.Run(ctx, &mcp.IOTransport{
			Reader: io.NopCloser(m.Stdin),
			Writer: nopWriteCloser{stdout},
		})
	}
}

// newServer wires the services behind the MCP surface.
func newServer(cli *CLI, logger *slog.Logger) *webmcpmcp.Server {
	opts := []webmcphttp.Option{
		webmcphttp.WithTimeout(cli.Timeout),
		webmcphttp.WithUserAgent(cli.UserAgent),
		webmcphttp.WithMaxBodyBytes(cli.MaxBodyBytes),
	}
	if cli.RateLimit > 0 {
		opts = append(opts, webmcphttp.WithLimiter(webmcphttp.NewDomainLimiter(cli.RateLimit)))
	}
	fetcher := webmcpslog.NewLoggingFetcher(webmcphttp.NewFetcher(opts...), logger)

	content := webmcphttp.NewContentFetcher(fetcher, newExtractor(cli.Extractor))

	searcher := webmcphttp.NewSearcher(fetcher, goquery.NewResultParser(), content)
	searcher.Endpoint = cli.SearchURL
	searcher.Region = cli.Region
	searcher.Concurrency = cli.Concurrency

	inspector := webmcphttp.NewInspector(fetcher, content, opengraph.NewParser())

	return webmcpmcp.NewServer(
		webmcpslog.NewLoggingSearcher(searcher, logger),
		webmcpslog.NewLoggingInspector(inspector, logger),
		version,
	)
}

// newExtractor returns the content extractor registered under name.
func newExtractor(name string) webmcp.TextExtractor {
	switch name {
	case "readability":
		return readability.NewTextExtractor()
	case "trafilatura":
		return trafilatura.NewTextExtractor()
	default:
		return goquery.NewTextExtractor()
	}
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// serveHTTP serves the streamable HTTP transport until ctx is done.
func serveHTTP(ctx context.Context, server *webmcpmcp.Server, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

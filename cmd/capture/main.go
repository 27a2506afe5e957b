// capture is a command-line interface to the capture.page API.
//
// Usage:
//
//	capture url <image|pdf|content|metadata|animated> <target>
//	capture image <target> [-o file]
//	capture pdf <target> [-o file]
//	capture animated <target> [-o file]
//	capture content <target> [--field text|html|markdown]
//	capture metadata <target>
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	capture "github.com/porticus-lab/go-capture"
)

var version = "dev"

var (
	cfgFile   string
	apiKey    string
	apiSecret string
	edge      bool
	timeout   time.Duration
	verbose   bool

	output string
	field  string

	full     bool
	delay    int
	selector string
	format   string
	extra    []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "capture",
		Short:   "Take screenshots, PDFs, and page content via the capture.page API",
		Version: version,
		Long: `capture builds signed request URLs for the capture.page API and fetches
the results. Credentials come from --key/--secret, the CAPTURE_KEY and
CAPTURE_SECRET environment variables, or a YAML config file
(~/.config/capture/config.yaml), in that order.`,
		Example: `  # Print a signed screenshot URL without fetching it
  capture url image https://example.com --full

  # Save a full-page screenshot
  capture image https://example.com --full --delay 3 -o shot.png

  # Render a PDF in landscape via a raw API option
  capture pdf https://example.com --opt landscape=true -o page.pdf

  # Extract readable text
  capture content https://example.com --field text

  # Dump page metadata as JSON
  capture metadata https://example.com`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to YAML config file")
	pf.StringVar(&apiKey, "key", "", "API key (or CAPTURE_KEY)")
	pf.StringVar(&apiSecret, "secret", "", "API secret (or CAPTURE_SECRET)")
	pf.BoolVar(&edge, "edge", false, "use the edge host instead of the CDN host")
	pf.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log request details to stderr")

	pf.BoolVar(&full, "full", false, "capture the full scrollable page")
	pf.IntVar(&delay, "delay", 0, "seconds to wait before capturing")
	pf.StringVar(&selector, "selector", "", "CSS selector to clip the capture to")
	pf.StringVar(&format, "format", "", "output format (png, jpeg, webp; A4, Letter for pdf)")
	pf.StringArrayVar(&extra, "opt", nil, "raw API option as key=value (repeatable)")

	rootCmd.AddCommand(urlCmd(), binaryCmd("image", "Capture a screenshot"),
		binaryCmd("pdf", "Render a page as PDF"),
		binaryCmd("animated", "Record an animated capture"),
		contentCmd(), metadataCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func urlCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "url <kind> <target>",
		Short:     "Build a signed request URL without fetching it",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"image", "pdf", "content", "metadata", "animated"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			var u string
			switch args[0] {
			case "image":
				u, err = c.BuildImageURL(args[1], captureOptions())
			case "pdf":
				u, err = c.BuildPDFURL(args[1], captureOptions())
			case "content":
				u, err = c.BuildContentURL(args[1], captureOptions())
			case "metadata":
				u, err = c.BuildMetadataURL(args[1], captureOptions())
			case "animated":
				u, err = c.BuildAnimatedURL(args[1], captureOptions())
			default:
				return fmt.Errorf("unknown endpoint kind %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Println(u)
			return nil
		},
	}
}

// binaryCmd builds the image, pdf, and animated subcommands, which differ
// only in the fetch method they call.
func binaryCmd(kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind + " <target>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, log, err := newClient(cmd)
			if err != nil {
				return err
			}
			opts := captureOptions()

			start := time.Now()
			var res *capture.Result
			switch kind {
			case "image":
				res, err = c.FetchImage(context.Background(), args[0], opts)
			case "pdf":
				res, err = c.FetchPDF(context.Background(), args[0], opts)
			case "animated":
				res, err = c.FetchAnimated(context.Background(), args[0], opts)
			}
			if err != nil {
				return err
			}
			log.Info().
				Str("endpoint", kind).
				Str("contentType", res.ContentType()).
				Int("bytes", res.Len()).
				Dur("elapsed", time.Since(start)).
				Msg("capture complete")

			return writePayload(res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write payload to file (default: stdout)")
	return cmd
}

func contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content <target>",
		Short: "Extract rendered page content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, log, err := newClient(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := c.FetchContent(context.Background(), args[0], captureOptions())
			if err != nil {
				return err
			}
			log.Info().
				Str("endpoint", "content").
				Bool("success", res.Success).
				Dur("elapsed", time.Since(start)).
				Msg("capture complete")

			switch field {
			case "html":
				fmt.Println(res.HTML)
			case "markdown":
				fmt.Println(res.Markdown)
			case "text", "":
				fmt.Println(res.TextContent)
			default:
				return fmt.Errorf("unknown field %q (want text, html, or markdown)", field)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "text", "which field to print: text, html, or markdown")
	return cmd
}

func metadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata <target>",
		Short: "Extract page metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, log, err := newClient(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := c.FetchMetadata(context.Background(), args[0], captureOptions())
			if err != nil {
				return err
			}
			log.Info().
				Str("endpoint", "metadata").
				Bool("success", res.Success).
				Dur("elapsed", time.Since(start)).
				Msg("capture complete")

			out, err := json.MarshalIndent(res.Metadata, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

// newClient resolves credentials and client configuration and returns the
// client plus a logger. The logger never receives credentials or signed
// URLs, only endpoint names and sizes.
func newClient(cmd *cobra.Command) (*capture.Client, zerolog.Logger, error) {
	log := zerolog.New(io.Discard)
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	creds, err := resolveCredentials(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, log, err
	}
	if apiKey != "" {
		creds.Key = apiKey
	}
	if apiSecret != "" {
		creds.Secret = apiSecret
	}

	opts := []capture.Option{capture.WithTimeout(timeout)}
	if edge || creds.Edge {
		opts = append(opts, capture.WithEdge())
	}
	return capture.New(creds.Key, creds.Secret, opts...), log, nil
}

// captureOptions assembles the option set from the capture flags.
func captureOptions() capture.RequestOptions {
	opts := capture.RequestOptions{}
	if full {
		opts["full"] = capture.Bool(true)
	}
	if delay > 0 {
		opts["delay"] = capture.Int(delay)
	}
	if selector != "" {
		opts["selector"] = capture.String(selector)
	}
	if format != "" {
		opts["format"] = capture.String(format)
	}
	for _, kv := range extra {
		k, v, ok := splitOption(kv)
		if ok {
			opts[k] = v
		}
	}
	return opts
}

func writePayload(res *capture.Result) error {
	if output == "" || output == "-" {
		_, err := res.WriteTo(os.Stdout)
		return err
	}
	return res.WriteToFile(output, 0o644)
}

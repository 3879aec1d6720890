package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/appraisal"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/source"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/source/manifest"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/source/textlist"
	"github.com/spf13/cobra"
)

const defaultSNSURL = "https://sns-sdk-proxy.bonfida.workers.dev"

// errSomeFailed marks a run where at least one name could not be appraised.
var errSomeFailed = errors.New("one or more names failed")

type cli struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	asJSON   bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "retailstar",
		Short:         "Appraise .sol domain names",
		Long:          "Scores .sol names for brandability, meme potential and value, and estimates a SOL price band.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDefaultLogger(logger.New(&logger.Config{
				Level:       c.logLevel,
				Format:      "text",
				Output:      c.errOut,
				ServiceName: "retailstar-cli",
			}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		c.appraiseCmd(),
		c.batchCmd(),
		c.cardCmd(),
		c.reportCmd(),
		c.ownerCmd(),
		c.categoriesCmd(),
	)
	return root
}

func (c *cli) appraiseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appraise <name> [name...]",
		Short: "Appraise one or more names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewAppraisalService(nil, nil, nil, &service.AppraisalConfig{Workers: 1})
			res, err := svc.AppraiseBatch(commandContext(cmd), args)
			if err != nil {
				return err
			}
			return c.printBatch(res)
		},
	}
}

func (c *cli) batchCmd() *cobra.Command {
	var file string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch --file names.txt|watchlist.jsonl",
		Short: "Appraise every name in a file, one per line",
		Long:  "Reads names from a text file (or - for stdin), one per line, or from a .jsonl watchlist of {\"name\": ...} entries. Blank lines and lines starting with # are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := openSource(file, cmd.InOrStdin())
			items, err := source.Drain(commandContext(cmd), src, 500)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no names found in %s", file)
			}
			names := source.Names(items)

			start := time.Now()
			svc := service.NewAppraisalService(nil, nil, nil, &service.AppraisalConfig{Workers: workers})
			res, err := svc.AppraiseBatch(commandContext(cmd), names)
			if err != nil {
				return err
			}
			logger.With(logger.Fields{"source": src.GetSourceID()}).
				WithCount(res.Total).
				WithDuration(time.Since(start).Milliseconds()).
				Info(commandContext(cmd), "Batch finished")
			return c.printBatch(res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one name per line, - for stdin")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of concurrent workers")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *cli) cardCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "card <name>",
		Short: "Render a PNG summary card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := appraisal.Appraise(args[0])
			if err != nil {
				return err
			}
			data, err := service.RenderCard(b)
			if err != nil {
				return err
			}
			if out == "" {
				out = b.Name + ".png"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write card: %w", err)
			}
			fmt.Fprintf(c.out, "wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <name>.png)")
	return cmd
}

func (c *cli) reportCmd() *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Print the full breakdown as markdown or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := appraisal.Appraise(args[0])
			if err != nil {
				return err
			}
			if !asHTML {
				_, err = io.WriteString(c.out, service.ReportMarkdown(b))
				return err
			}
			page, err := service.RenderReportHTML(b)
			if err != nil {
				return err
			}
			_, err = c.out.Write(page)
			return err
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "render HTML instead of markdown")
	return cmd
}

func (c *cli) ownerCmd() *cobra.Command {
	var baseURL string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "owner <name>",
		Short: "Look up the registered owner of a .sol name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := service.NewSNSClient(&service.SNSConfig{BaseURL: baseURL, Timeout: timeout})
			owner, err := client.ResolveOwner(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(owner)
			}
			fmt.Fprintf(c.out, "%s\t%s\n", owner.Domain, owner.Owner)
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "sns-url", envOr("SNS_BASE_URL", defaultSNSURL), "SNS SDK proxy base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "lookup timeout")
	return cmd
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List appraisal categories and their semantic values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := appraisal.Categories()
			if c.asJSON {
				return c.printJSON(cats)
			}
			tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tSEMANTIC VALUE")
			for _, cat := range cats {
				fmt.Fprintf(tw, "%s\t%.0f\n", cat.Name, cat.SemanticValue)
			}
			return tw.Flush()
		},
	}
}

func (c *cli) printBatch(res *service.BatchResult) error {
	if c.asJSON {
		if err := c.printJSON(res); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSCORE\tTIER\tBRAND\tMEME\tVALUE\tEST. SOL\tCATEGORIES")
		for _, item := range res.Items {
			if item.Result == nil {
				fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t-\t-\terror: %s\n", item.Input, item.Error)
				continue
			}
			b := item.Result.Breakdown
			fmt.Fprintf(tw, "%s%s\t%.1f\t%s\t%.1f\t%.1f\t%.1f\t%g-%g\t%s\n",
				b.Name, appraisal.DomainSuffix, b.FinalScore, b.Tier,
				b.Brandability, b.Meme, b.Value,
				b.SolEstimateLow, b.SolEstimateHigh, joinCategories(b.Categories))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if len(res.Items) == 1 && res.Items[0].Result != nil {
			fmt.Fprintf(c.out, "\n%s\n", res.Items[0].Result.Quip.Text)
		}
	}

	if res.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeFailed, res.Failed, res.Total)
	}
	return nil
}

func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinCategories(cats []appraisal.Category) string {
	if len(cats) == 0 {
		return "-"
	}
	parts := make([]string, len(cats))
	for i, cat := range cats {
		parts[i] = string(cat)
	}
	return strings.Join(parts, ",")
}

// openSource picks the adapter for path by extension.
// openSource picks an adapter by file name; "-" reads names from stdin.
func openSource(path string, stdin io.Reader) source.Source {
	if path == "-" {
		return textlist.NewReaderAdapter("stdin", stdin)
	}
	if manifest.IsManifest(path) {
		return manifest.NewAdapter(path)
	}
	return textlist.NewAdapter(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// commandContext is the command's context tagged with the cli component.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.SetComponent(ctx, "cli")
}

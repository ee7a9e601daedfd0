package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"recurrent/internal/config"
	"recurrent/internal/ics"
	appLog "recurrent/internal/log"
	"recurrent/internal/recurrent"
	"recurrent/internal/rule"
	"recurrent/internal/translate"
	"recurrent/internal/web"
)

type flagConfig struct {
	configPath string
	listen     string
	now        string
	logLevel   string
	format     bool
	cron       string
	preview    int
	ics        bool
	xcal       bool
	summary    string
	describe   string
	serve      bool
}

func main() {
	flags := parseFlags()

	conf := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		conf = loaded
	}
	// CLI flags override the config file.
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.now != "" {
		conf.Reference = flags.now
	}
	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}
	level, err := appLog.ParseLevel(conf.LogLevel)
	if err != nil {
		appLog.Error("bad log level", err)
		os.Exit(2)
	}
	appLog.SetLevel(level)
	if _, _, err := conf.ReferenceTime(); err != nil {
		appLog.Error("bad reference time", err, "now", conf.Reference)
		os.Exit(2)
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var tr translate.Translator
	if conf.Translator.Enabled {
		d, err := translate.LoadDictionary(conf.Translator.Dictionary)
		if err != nil {
			appLog.Error("failed to load dictionary", err, "path", conf.Translator.Dictionary)
			os.Exit(1)
		}
		tr = d
		defer tr.Close()
	}

	if flags.serve {
		appLog.Info("effective config",
			"listen", conf.Listen,
			"reference", conf.Reference,
			"fallback", conf.Fallback,
			"translator", conf.Translator.Enabled,
		)
		if err := web.StartServer(ctx, conf, tr); err != nil {
			appLog.Error("server failed", err)
			os.Exit(1)
		}
		appLog.Info("recurrent exiting")
		return
	}

	if err := run(ctx, os.Stdout, conf, tr, flags, strings.Join(flag.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "recurrent:", err)
		os.Exit(1)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to config file (created with defaults if missing)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.StringVar(&cfg.now, "now", "", "Reference time as "+config.ReferenceLayout+" (default: current time)")
	flag.StringVar(&cfg.logLevel, "log-level", "", "debug, info, warn or error")
	flag.BoolVar(&cfg.format, "format", false, "Treat the argument as an RRULE block and print it in English")
	flag.StringVar(&cfg.cron, "cron", "", "Convert a cron spec instead of English text")
	flag.IntVar(&cfg.preview, "preview", 0, "Also list the next N instances")
	flag.BoolVar(&cfg.ics, "ics", false, "Print the rule as an iCalendar VEVENT")
	flag.BoolVar(&cfg.xcal, "xcal", false, "Print the rule as xCal")
	flag.StringVar(&cfg.summary, "summary", "", "SUMMARY for -ics/-xcal output")
	flag.StringVar(&cfg.describe, "describe", "", "Describe the events of a calendar file or URL")
	flag.BoolVar(&cfg.serve, "serve", false, "Serve the HTTP API")

	flag.Parse()

	return cfg
}

func newSession(conf *config.Config) (*recurrent.Session, error) {
	var opts []recurrent.Option
	ref, ok, err := conf.ReferenceTime()
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, recurrent.WithReference(ref))
	}
	if !conf.Fallback {
		opts = append(opts, recurrent.WithFallback(nil))
	}
	return recurrent.New(opts...), nil
}

func run(ctx context.Context, w io.Writer, conf *config.Config, tr translate.Translator, flags flagConfig, text string) error {
	sess, err := newSession(conf)
	if err != nil {
		return err
	}

	if flags.describe != "" {
		return describe(ctx, w, conf, sess, flags.describe)
	}

	var o recurrent.Outcome
	switch {
	case flags.cron != "":
		if o, err = sess.ParseCron(flags.cron); err != nil {
			return err
		}
	case flags.format:
		r, err := rule.Read(text)
		if err != nil {
			return err
		}
		o = recurrent.Outcome{Kind: recurrent.Recurring, Rule: r}
	default:
		if strings.TrimSpace(text) == "" {
			return errors.New("nothing to parse")
		}
		if o, err = (recurrent.Auto{Session: sess, Translator: tr}).Parse(ctx, text); err != nil {
			return err
		}
		if o.Kind == recurrent.None {
			return recurrent.ErrNoMatch
		}
	}

	summary := flags.summary
	if summary == "" {
		summary = conf.ICS.Summary
	}
	switch {
	case flags.ics && o.Kind == recurrent.Recurring:
		fmt.Fprint(w, ics.Export(o.Rule, summary, sess.Reference()))
		return nil
	case flags.xcal && o.Kind == recurrent.Recurring:
		out, err := ics.ExportXCal(o.Rule, summary, sess.Reference())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	case flags.ics && o.Kind == recurrent.Absolute:
		fmt.Fprint(w, ics.ExportAt(o.Stamp(), summary))
		return nil
	case flags.xcal:
		return errors.New("only recurrences can be exported as xcal")
	}

	fmt.Fprintln(w, o.String())
	fmt.Fprintln(w, sess.Format(o))
	if flags.preview > 0 && o.Kind == recurrent.Recurring {
		occ, err := ics.Preview(o.Rule, sess.Reference(), flags.preview, conf.ICS.MaxOccurrences)
		if err != nil {
			return err
		}
		for _, oc := range occ {
			fmt.Fprintln(w, "  "+oc.Label)
		}
	}
	return nil
}

func describe(ctx context.Context, w io.Writer, conf *config.Config, sess *recurrent.Session, src string) error {
	var body []byte
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		res, err := ics.NewFetcher(conf.ICS.CacheDir).Fetch(fetchCtx, src)
		if err != nil {
			return err
		}
		body = res.Body
	} else {
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		body = data
	}
	events, err := ics.Describe(body, sess.Formatter())
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\n", ev.Summary, ev.Text)
	}
	return nil
}

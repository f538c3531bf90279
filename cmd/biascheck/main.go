package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCLI().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "biascheck:", err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:    "biascheck",
		Usage:   "score job adverts for gendered language and suggest neutral rewrites",
		Version: version,
		Commands: []*cli.Command{
			analyzeCommand(),
			rewriteCommand(),
			industriesCommand(),
		},
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "score a job advert",
		ArgsUsage: "FILE|-",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "lexicon, contextual, sentiment or ensemble"},
			&cli.StringFlag{Name: "industry", Aliases: []string{"i"}, Usage: "compare against an industry benchmark"},
			&cli.BoolFlag{Name: "json", Usage: "print the full result as JSON"},
		},
		Action: runAnalyze,
	}
}

func rewriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "rewrite",
		Usage:     "rewrite a job advert with neutral wording and rescore it",
		ArgsUsage: "FILE|-",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "lexicon, contextual, sentiment or ensemble"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "rewrite even when the score is under the threshold"},
			&cli.BoolFlag{Name: "json", Usage: "print the improvement report as JSON"},
		},
		Action: runRewrite,
	}
}

func industriesCommand() *cli.Command {
	return &cli.Command{
		Name:   "industries",
		Usage:  "list benchmark industries",
		Action: runIndustries,
	}
}

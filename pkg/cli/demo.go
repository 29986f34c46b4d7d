package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareos/pkg/cli/config"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/taxonomy"
	"github.com/secmon-lab/briareos/pkg/domain/types"
	"github.com/secmon-lab/briareos/pkg/repository/memory"
	"github.com/secmon-lab/briareos/pkg/service/detect"
	"github.com/secmon-lab/briareos/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdDemo() *cli.Command {
	var perfMessages int
	var perfWorkers int
	var taxonomyCfg config.Taxonomy

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "perf-messages",
			Usage:       "Number of messages for the performance run",
			Value:       200,
			Destination: &perfMessages,
		},
		&cli.IntFlag{
			Name:        "perf-workers",
			Usage:       "Concurrent workers for the performance run",
			Value:       8,
			Destination: &perfWorkers,
		},
	}
	flags = append(flags, taxonomyCfg.Flags()...)

	return &cli.Command{
		Name:  "demo",
		Usage: "Run classification scenarios against the built-in catalog",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			tax, err := taxonomyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to build taxonomy")
			}

			uc := usecase.New(memory.New(), detect.New(tax))

			printCatalogSummary(tax)
			if err := runScenarios(ctx, uc); err != nil {
				return err
			}
			if err := runConversation(ctx, uc); err != nil {
				return err
			}
			return runPerformance(ctx, uc, perfMessages, perfWorkers)
		},
	}
}

func printCatalogSummary(tax *taxonomy.Taxonomy) {
	title := color.New(color.FgCyan, color.Bold)
	title.Println("== Catalog")

	byTier := make(map[types.PriorityTier]int)
	for _, id := range tax.PriorityOrder() {
		byTier[tax.Tier(id)]++
	}
	fmt.Printf("%d categories, %d agents\n", len(tax.Categories()), len(types.AllAgentTypes()))
	for _, tier := range types.AllPriorityTiers() {
		fmt.Printf("  %-8s %d\n", tier, byTier[tier])
	}
	fmt.Println()
}

type demoScenario struct {
	name    string
	message string
}

func runScenarios(ctx context.Context, uc *usecase.UseCases) error {
	title := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgRed, color.Bold)

	title.Println("== Detection scenarios")

	scenarios := []demoScenario{
		{"payment delay", "Je n'ai pas été payé depuis 3 mois"},
		{"aggressive user", "Vous êtes nuls, je suis très énervé"},
		{"ambassador application", "Je veux devenir ambassadeur"},
		{"cpf question", "Comment utiliser mon CPF ?"},
		{"course catalog", "Quelles sont vos formations ?"},
		{"quote request", "Je voudrais un devis"},
		{"human contact", "Je souhaite vous téléphoner"},
	}

	for i, sc := range scenarios {
		// Each scenario runs in its own session so context rules from
		// one do not leak into the next
		sessionID := model.SessionID(fmt.Sprintf("demo-%d", i))
		result, err := uc.Classify(ctx, sessionID, sc.message)
		if err != nil {
			return goerr.Wrap(err, "demo scenario failed", goerr.V("scenario", sc.name))
		}

		fmt.Printf("%-24s %q\n", sc.name, sc.message)
		ok.Printf("  -> %s (agent: %s, priority: %s)\n", result.Category, result.Agent, result.Priority)
		if result.Escalate {
			warn.Printf("  !! escalates to %s\n", result.EscalationType)
		}
	}
	fmt.Println()
	return nil
}

func runConversation(ctx context.Context, uc *usecase.UseCases) error {
	title := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	title.Println("== Conversation with follow-up context")

	conversation := []string{
		"Quelles sont vos formations ?",
		"Je suis intéressé par la formation marketing",
		"Je n'ai pas reçu mon paiement",
		"Ça fait 3 semaines que j'attends",
	}

	sessionID := model.SessionID("demo-conversation")
	for i, message := range conversation {
		result, err := uc.Classify(ctx, sessionID, message)
		if err != nil {
			return goerr.Wrap(err, "demo conversation failed", goerr.V("turn", i+1))
		}
		fmt.Printf("%d. %q\n", i+1, message)
		faint.Printf("   -> %s via %s\n", result.Category, result.Agent)
	}
	fmt.Println()
	return nil
}

func runPerformance(ctx context.Context, uc *usecase.UseCases, messages, workers int) error {
	title := color.New(color.FgCyan, color.Bold)
	title.Println("== Performance")

	corpus := []string{
		"Je n'ai pas été payé depuis 2 mois",
		"Je veux devenir ambassadeur",
		"Comment utiliser mon CPF ?",
		"Quelles sont vos formations ?",
		"Bonjour, j'ai une question",
	}

	startTime := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < messages; i++ {
		sessionID := model.SessionID(fmt.Sprintf("perf-%d", i))
		message := corpus[i%len(corpus)]
		eg.Go(func() error {
			_, err := uc.Classify(ctx, sessionID, message)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "performance run failed")
	}

	elapsed := time.Since(startTime)
	perSecond := float64(messages) / elapsed.Seconds()
	fmt.Printf("classified %d messages in %s (%.0f msg/s, %d workers)\n",
		messages, elapsed.Round(time.Millisecond), perSecond, workers)
	return nil
}

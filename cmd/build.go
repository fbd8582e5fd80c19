package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brogergvhs/starsite/internal/config"
	"github.com/brogergvhs/starsite/internal/providers/catalog"
	"github.com/brogergvhs/starsite/internal/providers/duckduckgo"
	"github.com/brogergvhs/starsite/internal/providers/wikipedia"
	"github.com/brogergvhs/starsite/internal/render"
	"github.com/brogergvhs/starsite/internal/site"
	"github.com/brogergvhs/starsite/internal/ui"
	"github.com/brogergvhs/starsite/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagCatalogURL string
	flagRange      string
	flagList       string
	flagFranchise  string

	// output
	flagOutput        string
	flagCharactersDir string
	flagSummaryLimit  int
	flagMaxResults    int
	flagWorkers       int
	flagDryRun        bool

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagTimeout    int
)

func init() {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the landing, catalog and character pages. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runBuild,
	}

	// selection
	buildCmd.Flags().StringVar(&flagCatalogURL, "catalog-url", "", "page listing the characters as <strong>#N: Name</strong> markers")
	buildCmd.Flags().StringVar(&flagRange, "range", "", "only build catalog entries in this index range (e.g. 2-5)")
	buildCmd.Flags().StringVar(&flagList, "list", "", "only build these catalog indices (e.g. 1,3,5)")
	buildCmd.Flags().StringVar(&flagFranchise, "franchise", "", "franchise name used in titles and search queries")

	// output
	buildCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for the generated pages")
	buildCmd.Flags().StringVar(&flagCharactersDir, "characters-dir", "", "subfolder for character pages")
	buildCmd.Flags().IntVar(&flagSummaryLimit, "summary-limit", 0, "maximum character blurb length")
	buildCmd.Flags().IntVar(&flagMaxResults, "max-results", 0, "search results fetched per query")
	buildCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel character lookups (1 = sequential)")
	buildCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "list the characters that would be built, write nothing")

	// headers/auth
	buildCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	buildCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	buildCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	buildCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig:   flagIgnoreConfig,
		Debug:          flagDebug,
		Output:         flagOutput,
		CharactersDir:  flagCharactersDir,
		SummaryLimit:   flagSummaryLimit,
		MaxResults:     flagMaxResults,
		Workers:        flagWorkers,
		TimeoutSeconds: flagTimeout,
		Franchise:      flagFranchise,
		CatalogURL:     flagCatalogURL,
		DefaultRange:   flagRange,
		DefaultList:    flagList,
		Cookie:         flagCookie,
		CookieFile:     flagCookieFile,
		UserAgent:      flagUserAgent,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" {
		fmt.Printf("Config file: %s\n", usedPath)
	}

	fmt.Println("Full config:")
	cfg.Print()
	fmt.Println()

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     cfg.Timeout(),
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		DebugLogger: logSvc,
	})
	if err != nil {
		return err
	}

	renderer, err := render.New(render.DefaultOptions())
	if err != nil {
		return err
	}

	deps := site.Deps{
		Encyclopedia: wikipedia.New(client),
		Searcher:     duckduckgo.New(client),
		Catalog:      catalog.NewScraper(client),
		Renderer:     renderer,
		Log:          logSvc,
	}

	siteCfg := site.Config{
		OutputDir:     cfg.Output,
		CharactersDir: cfg.CharactersDir,
		SummaryLimit:  cfg.SummaryLimit,
		MaxResults:    cfg.MaxResults,
		Workers:       cfg.Workers,
		Franchise:     cfg.Franchise,
		Sections:      cfg.Sections,
		CatalogURL:    cfg.CatalogURL,
		Range:         cfg.DefaultRange,
		List:          cfg.DefaultList,
	}

	ctx := context.Background()

	if flagDryRun {
		chars, err := site.New(siteCfg, deps).Preview(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Dry-run: %d characters selected.\n\n", len(chars))
		for i, c := range chars {
			fmt.Printf("%3d) %s\n    %s\n", i+1, c.Name, c.OutputPath(filepath.Join(cfg.Output, cfg.CharactersDir)))
		}
		return nil
	}

	stopCleanup := util.CleanupOnInterrupt(logSvc, cfg.Output, filepath.Join(cfg.Output, cfg.CharactersDir))
	defer stopCleanup()

	progress := ui.NewProgress(os.Stdout)
	stage := progress.Stage("Characters")
	deps.Progress = stage

	start := time.Now()
	res, err := site.New(siteCfg, deps).Build(ctx)
	if err != nil {
		stage.Abort()
		progress.Wait()
		return err
	}
	progress.Wait()

	fmt.Println()
	ui.BuildSummary{
		Pages:      res.Pages,
		Characters: res.Characters,
		Bytes:      res.Bytes,
		Elapsed:    time.Since(start),
	}.Fprint(os.Stdout)
	fmt.Println("\nAll done.")

	return nil
}

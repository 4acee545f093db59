package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/vidkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/config"
	"github.com/dmitrijs2005/vidkeeper/internal/logging"
	"github.com/dmitrijs2005/vidkeeper/internal/repositories/videos"
	"github.com/dmitrijs2005/vidkeeper/internal/services"
)

// App wires the catalog service to the command-line front-end.
type App struct {
	config  *config.Config
	catalog services.CatalogService
	logger  logging.Logger
	out     io.Writer
	errOut  io.Writer
}

// cmdFlags carries the values of the command flags for one invocation.
type cmdFlags struct {
	title       string
	description string
	uploader    string
	tags        string
	id          int64
	query       string
	demo        bool
	version     bool
}

// NewApp builds an App over the catalog file named in c.
func NewApp(c *config.Config, logger logging.Logger) *App {
	repo := videos.NewJSONFileRepository(c.StoragePath)
	return &App{
		config:  c,
		catalog: services.NewCatalogService(repo),
		logger:  logger,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Run executes one command-line invocation and returns the process exit
// code: 0 on success, 1 on runtime errors, 2 on usage or validation
// errors. args is the command line without the program name.
func (a *App) Run(ctx context.Context, args []string) int {
	command := ""
	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		rest = args[1:]
	}

	fs := flag.NewFlagSet("vidkeeper", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() { a.printUsage(fs) }

	var cf cmdFlags
	fs.StringVar(&cf.title, "title", "", "video title")
	fs.StringVar(&cf.description, "description", "", "video description")
	fs.StringVar(&cf.uploader, "uploader", "", "uploader name")
	fs.StringVar(&cf.tags, "tags", "", "comma separated tags")
	fs.Int64Var(&cf.id, "id", 0, "video id for view/delete")
	fs.StringVar(&cf.query, "query", "", "search query")
	fs.BoolVar(&cf.demo, "demo", false, "run the scripted demo")
	fs.BoolVar(&cf.version, "version", false, "print build information and exit")

	// The config package owns these; they are declared here only so the
	// FlagSet accepts them wherever they appear on the command line.
	fs.String("file", "", "path of the catalog JSON file")
	fs.String("addr", "", "address and port for the form front-end")
	fs.String("c", "", "path of a JSON config file")
	fs.String("config", "", "path of a JSON config file")

	if err := fs.Parse(rest); err != nil {
		return 2
	}

	if cf.version {
		buildinfo.PrintBuildData(a.out)
		return 0
	}

	var err error
	switch command {
	case "":
		if cf.demo {
			err = a.runDemo(ctx)
		} else {
			err = a.runServe(ctx)
		}
	case "upload":
		err = a.runUpload(ctx, cf)
	case "list":
		err = a.runList(ctx)
	case "view":
		err = a.runView(ctx, cf)
	case "delete":
		err = a.runDelete(ctx, cf)
	case "search":
		err = a.runSearch(ctx, cf)
	case "serve":
		err = a.runServe(ctx)
	default:
		fmt.Fprintln(a.errOut, "Unknown command:", command)
		fs.Usage()
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, common.ErrorValidation):
		return 2
	default:
		return 1
	}
}

// reportError prints a user-facing line for err on the error stream.
func (a *App) reportError(err error) {
	fmt.Fprintf(a.errOut, "Error: %v\n", err)
}

func (a *App) printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(a.errOut, "Usage: vidkeeper [command] [flags]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "Commands:")
	fmt.Fprintln(a.errOut, "  upload    add a video (requires -title)")
	fmt.Fprintln(a.errOut, "  list      list all videos")
	fmt.Fprintln(a.errOut, "  view      show one video as JSON (requires -id)")
	fmt.Fprintln(a.errOut, "  delete    remove a video (requires -id)")
	fmt.Fprintln(a.errOut, "  search    find videos by substring (-query)")
	fmt.Fprintln(a.errOut, "  serve     run the form front-end")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "Running without a command starts the form front-end.")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "Example: vidkeeper upload -title 'Morning Jazz' -tags music,live")
}

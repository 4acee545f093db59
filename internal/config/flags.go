package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/vidkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-file string   path of the JSON catalog file (default from Config)
//	-addr string   host:port for the form front-end (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, so the command FlagSet and this one do
// not interfere with each other.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here, in both dash forms.
	args := flagx.FilterArgs(os.Args[1:], []string{"-file", "--file", "-addr", "--addr"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "file", cfg.StoragePath, "path of the catalog JSON file")
	fs.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "address and port for the form front-end")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

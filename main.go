package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivemoreminix/vexed/internal/log"
	"github.com/fivemoreminix/vexed/prefs"
	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type options struct {
	LibraryPath  *flags.Filename `short:"l" long:"library" description:"library folder of VEX files (overrides library_path)"`
	PrefsPath    *flags.Filename `short:"p" long:"prefs" description:"preferences file (.json, .yaml, .toml)"`
	LanguagePath *flags.Filename `short:"L" long:"language" description:"language definition file (.json, .yaml, .toml, .properties)"`
	LogFile      *flags.Filename `long:"log-file" description:"write logs to this file"`
	Verbose      bool            `short:"v" long:"verbose" description:"enable verbose logging"`

	Positional struct {
		Files []flags.Filename `positional-arg-name:"file" required:"0" description:"VEX files to open"`
	} `positional-args:"yes"`
}

// configDir returns the folder of vexed's own files, like the preferences
// and the default library.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vexed")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vexed.log")
}

func main() {
	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
vexed is a terminal editor for libraries of Houdini VEX files (.vfl), with
syntax highlighting.`

	if _, err := fp.Parse(); err != nil {
		os.Exit(1)
	}

	if opts.Verbose {
		log.Debug = true
	}

	logFile := defaultLogFile()
	if opts.LogFile != nil {
		logFile = string(*opts.LogFile)
	}
	if err := log.Open(logFile); err != nil {
		fmt.Fprintf(os.Stderr, "cannot log to %s: %v\n", logFile, err) // Keep going without logs
	}
	defer log.Sync()

	prefsPath := filepath.Join(configDir(), "preferences.json")
	if opts.PrefsPath != nil {
		prefsPath = string(*opts.PrefsPath)
	}
	p, err := prefs.Load(prefsPath)
	if err != nil {
		fatal(err)
	}

	switch {
	case opts.LibraryPath != nil:
		p.LibraryPath = string(*opts.LibraryPath)
	case p.LibraryPath == "":
		p.LibraryPath = filepath.Join(configDir(), "library")
	}
	if err := os.MkdirAll(p.LibraryPath, 0o755); err != nil {
		fatal(err)
	}

	var languagePath string
	if opts.LanguagePath != nil {
		languagePath = string(*opts.LanguagePath)
	}
	lang, err := prefs.LoadLanguage(languagePath)
	if err != nil {
		fatal(err)
	}

	log.L().Info("starting",
		zap.String("prefs", prefsPath),
		zap.String("library", p.LibraryPath),
		zap.String("language", lang.Name))

	if _, err := ClipInitialize(ClipExternal); err != nil {
		log.L().Warn("no system clipboard, using an internal one", zap.Error(err))
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := s.Init(); err != nil {
		fatal(err)
	}
	defer s.Fini() // Useful for handling panics

	app := NewApp(s, p, prefsPath, lang)
	for _, path := range opts.Positional.Files {
		if err := app.OpenFile(string(path)); err != nil {
			log.L().Error("open file", zap.String("path", string(path)), zap.Error(err))
			app.ShowError(err)
		}
	}

	app.Run()
}

func fatal(err error) {
	log.L().Error("fatal", zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

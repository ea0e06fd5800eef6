// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	appDir = "chime"
	// EnvSuffix names the environment variable that isolates the files of
	// one chime environment (e.g. a development build) from another.
	EnvSuffix = "CHIME_ENV"
)

// Paths holds the locations of every file chime reads or writes.
type Paths struct {
	ConfigFile    string
	BoltFile      string
	BadgerDir     string
	LogFile       string
	RecordingsDir string
	IconFile      string
}

type fileNames struct {
	config string
	bolt   string
	badger string
	log    string
}

func names() fileNames {
	n := fileNames{
		config: "config.yml",
		bolt:   "chime.db",
		badger: "badger",
		log:    "chime.log",
	}

	env := strings.TrimSpace(os.Getenv(EnvSuffix))
	if env != "" {
		n.config = fmt.Sprintf("config_%s.yml", env)
		n.bolt = fmt.Sprintf("chime_%s.db", env)
		n.badger = fmt.Sprintf("badger_%s", env)
		n.log = fmt.Sprintf("chime_%s.log", env)
	}

	return n
}

// Resolve computes the application paths from the XDG base directories and
// creates the directories that hold them.
func Resolve() (*Paths, error) {
	n := names()

	configFile, err := xdg.ConfigFile(filepath.Join(appDir, n.config))
	if err != nil {
		return nil, err
	}

	boltFile, err := xdg.DataFile(filepath.Join(appDir, n.bolt))
	if err != nil {
		return nil, err
	}

	logFile, err := xdg.DataFile(filepath.Join(appDir, "log", n.log))
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Dir(boltFile)

	return &Paths{
		ConfigFile:    configFile,
		BoltFile:      boltFile,
		BadgerDir:     filepath.Join(dataDir, n.badger),
		LogFile:       logFile,
		RecordingsDir: filepath.Join(dataDir, "recordings"),
		IconFile:      filepath.Join(dataDir, "icon.png"),
	}, nil
}

// DBPath returns the database location for the given storage backend.
func (p *Paths) DBPath(backend string) string {
	if backend == "badger" {
		return p.BadgerDir
	}

	return p.BoltFile
}

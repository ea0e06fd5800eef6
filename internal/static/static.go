// Package static embeds the built-in alarm sounds into the binary.
package static

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

const soundsDir = "files/sounds"

//go:embed files/sounds/*
var embeddedFiles embed.FS

// SoundPath returns the embedded path of a built-in sound. Sound names are
// case-insensitive.
func SoundPath(name string) string {
	return path.Join(soundsDir, strings.ToLower(name)+".wav")
}

// Sound returns the contents of the named built-in sound.
func Sound(name string) ([]byte, error) {
	return embeddedFiles.ReadFile(SoundPath(name))
}

// SoundFiles lists the file names of every embedded sound.
func SoundFiles() ([]string, error) {
	entries, err := fs.ReadDir(embeddedFiles, soundsDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

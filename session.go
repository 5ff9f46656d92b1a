package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// --- Wire format ---

const sessionVersion = 1

type sessionDTO struct {
	Version int    `json:"version"`
	View    string `json:"view"`
}

// saveSession writes the current view string to the sidecar, replacing
// whatever was there.
func saveSession(path, view string) error {
	dto := sessionDTO{
		Version: sessionVersion,
		View:    view,
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// loadSession reads the view string saved by a previous run.
func loadSession(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return "", err
	}
	if dto.Version != sessionVersion {
		return "", fmt.Errorf("session version %d not supported (want %d)", dto.Version, sessionVersion)
	}
	return dto.View, nil
}

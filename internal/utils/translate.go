package utils

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

var (
	translations     map[string]string
	translationsOnce sync.Once
)

// Tr looks a display name up in the optional translation.json next to
// the binary (month and weekday names, mostly). Unknown keys and a
// missing file both fall back to the input unchanged, so an English
// install needs no translation file at all.
func Tr(key string) string {
	translationsOnce.Do(loadTranslations)
	if v, ok := translations[key]; ok && v != "" {
		return v
	}
	return key
}

func loadTranslations() {
	path := os.Getenv("TRANSLATION_PATH")
	if path == "" {
		path = "translation.json"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &translations); err != nil {
		log.Printf("Ignoring malformed %s: %v", path, err)
	}
}

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"rangi/internal/utils"
)

// Site is the blog-level configuration record. It lives in a JSON file
// next to the database so an admin can read and diff it by hand; every
// save rewrites the whole file.
type Site struct {
	Title           string `json:"title"`
	Desc            string `json:"desc"`
	DispName        string `json:"dispname"`
	MailAddr        string `json:"mailaddr"`
	PPP             int    `json:"ppp"` // posts per page
	DTFormat        string `json:"dtformat"`
	Calendar        string `json:"calendar"`
	AutoApproval    bool   `json:"autoapproval"`
	DisableComments bool   `json:"disablecomments"`
	PwdHash         string `json:"pwd"`
}

var (
	mu      sync.RWMutex
	current *Site
)

// ErrNotInstalled is returned by Get before the first installation.
var ErrNotInstalled = errors.New("config: site not installed")

// DefaultAdminPassword is the password set on installation. The /config
// page nags until it is changed.
const DefaultAdminPassword = "admin"

func path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.json"
}

// Installed reports whether a site configuration exists yet.
func Installed() bool {
	_, err := os.Stat(path())
	return err == nil
}

// Get returns the cached configuration, loading it from disk on first
// use. Every request reads through here, so a reload only happens after
// Save or Reset.
func Get() (*Site, error) {
	mu.RLock()
	if current != nil {
		defer mu.RUnlock()
		return current, nil
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return current, nil
	}

	data, err := os.ReadFile(path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInstalled
		}
		return nil, err
	}
	var s Site
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	current = &s
	return current, nil
}

// Save writes the full record to disk and replaces the cached copy, so
// readers never see a half-saved mixture of old and new fields.
func Save(s *Site) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if err := os.WriteFile(path(), data, 0644); err != nil {
		return err
	}
	current = s
	return nil
}

// Install writes the initial configuration with its documented defaults
// and returns it. Title and description stay empty until the admin
// fills them in on the settings page.
func Install() (*Site, error) {
	hash, err := utils.HashPassword(DefaultAdminPassword)
	if err != nil {
		return nil, err
	}
	s := &Site{
		DispName:        "Admin",
		PPP:             10,
		DTFormat:        "%Y %B %d",
		Calendar:        utils.CalendarJalali,
		AutoApproval:    false,
		DisableComments: false,
		PwdHash:         hash,
	}
	if err := Save(s); err != nil {
		return nil, err
	}
	log.Printf("Site installed, config written to %s", path())
	return s, nil
}

// Reset drops the cached copy. Tests use it between runs against
// different CONFIG_PATH values.
func Reset() {
	mu.Lock()
	current = nil
	mu.Unlock()
}

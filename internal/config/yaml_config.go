package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// HomePage is the page id on which the search bar is shown.
const HomePage = "home"

// SiteConfig represents the structure of the config.yaml file.
// Page content is hierarchical and easier to manage in YAML than env vars.
type SiteConfig struct {
	Pages   []PageConfig  `yaml:"pages"`
	About   AboutConfig   `yaml:"about"`
	Contact ContactConfig `yaml:"contact"`
}

// PageConfig defines a navigable page.
type PageConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// AboutConfig holds the about page copy.
type AboutConfig struct {
	Intro string         `yaml:"intro"`
	Team  []MemberConfig `yaml:"team"`
}

// MemberConfig is a team member listed on the about page.
type MemberConfig struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// ContactConfig holds contact page text.
type ContactConfig struct {
	Acknowledgement string `yaml:"acknowledgement"`
}

// DefaultSiteConfig returns the built-in site content.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Pages: []PageConfig{
			{ID: HomePage, Title: "Home"},
			{ID: "about", Title: "About Us"},
			{ID: "contact", Title: "Contact Us"},
		},
		About: AboutConfig{
			Intro: "We help travellers find beaches, temples and countries worth the trip.",
		},
		Contact: ContactConfig{
			Acknowledgement: "Thank you! Your message has been submitted.",
		},
	}
}

// LoadSiteConfig loads the YAML site configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns the defaults without error if the config file doesn't exist.
func LoadSiteConfig() (*SiteConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return DefaultSiteConfig(), nil
		}
		return nil, err
	}

	return ParseSiteConfig(data)
}

// ParseSiteConfig decodes YAML site config, filling unset sections from the defaults.
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	defaults := DefaultSiteConfig()
	if len(cfg.Pages) == 0 {
		cfg.Pages = defaults.Pages
	}
	if cfg.About.Intro == "" {
		cfg.About.Intro = defaults.About.Intro
	}
	if cfg.Contact.Acknowledgement == "" {
		cfg.Contact.Acknowledgement = defaults.Contact.Acknowledgement
	}
	if cfg.GetPage(HomePage) == nil {
		cfg.Pages = append([]PageConfig{defaults.Pages[0]}, cfg.Pages...)
	}

	return &cfg, nil
}

// GetPage finds a page by its id.
func (c *SiteConfig) GetPage(id string) *PageConfig {
	if c == nil {
		return nil
	}
	for i := range c.Pages {
		if c.Pages[i].ID == id {
			return &c.Pages[i]
		}
	}
	return nil
}

// Package config loads runtime settings from the environment, with an
// optional YAML file overlay for deployments that prefer files over
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every external endpoint and organization constant the
// library's clients need. All fields have working defaults except the
// secrets and connection strings.
type Config struct {
	CrossrefURL string `env:"CROSSREF_URL" envDefault:"https://api.crossref.org" yaml:"crossref_url"`
	DataCiteURL string `env:"DATACITE_URL" envDefault:"https://api.datacite.org" yaml:"datacite_url"`
	PubMedURL   string `env:"PUBMED_URL" envDefault:"https://www.ncbi.nlm.nih.gov/pmc/utils/idconv/v1.0/" yaml:"pubmed_url"`

	PeopleURL    string `env:"PEOPLE_URL" yaml:"people_url"`
	PeopleAPIKey string `env:"PEOPLE_API_KEY" yaml:"people_api_key"`

	OrgsURL string `env:"ORGS_URL" envDefault:"https://services.hhmi.org/IT/WD-hcm/supervisoryorgs" yaml:"orgs_url"`
	OrgName string `env:"ORG_NAME" envDefault:"Janelia" yaml:"org_name"`
	OrgROR  string `env:"ORG_ROR" envDefault:"013sk6x84" yaml:"org_ror"`

	ORCIDLogo string `env:"ORCID_LOGO" envDefault:"https://info.orcid.org/wp-content/uploads/2019/11/orcid_16x16.png" yaml:"orcid_logo"`

	DatabaseURL string `env:"DATABASE_URL" yaml:"database_url"`
	RedisURL    string `env:"REDIS_URL" yaml:"redis_url"`

	// ProjectsFile points at the YAML project-name map, see
	// identity.LoadProjectMap.
	ProjectsFile string `env:"PROJECTS_FILE" yaml:"projects_file"`
}

// Load reads the environment into a Config. When path is non-empty the
// YAML file at that location is applied on top, so file settings win
// over environment variables and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(blob, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return cfg, nil
}

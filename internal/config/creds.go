package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Credentials holds the ESPN session cookies used to authenticate against
// private leagues. Both values come from a logged-in browser session.
type Credentials struct {
	// ESPNS2 is the espn_s2 session cookie.
	ESPNS2 string `envconfig:"ESPN_S2"`

	// SWID is the SWID session cookie, braces included.
	SWID string `envconfig:"SWID"`
}

// LoadCredentials reads ESPN credentials from the environment, with a .env
// file in the working directory taken as a fallback source.
//
// Design decision: Credentials stay out of the league file on purpose. The
// league file is meant to be committed and shared between league members;
// session cookies are per-person secrets.
func LoadCredentials() (*Credentials, error) {
	// A missing .env file is fine; the variables may already be exported.
	_ = godotenv.Load()

	var c Credentials
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}

	if c.ESPNS2 == "" || c.SWID == "" {
		return nil, ErrMissingCredentials
	}

	return &c, nil
}

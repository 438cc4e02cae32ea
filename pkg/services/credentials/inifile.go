package credentials

import (
	"strings"

	"gopkg.in/ini.v1"
)

// LoadProfiles reads an optional credentials file of the form
//
//	[acme]
//	key = sk_live_...
//
// Section names become lowercase account names. Sections without a key are
// skipped. Environment-provided credentials are expected to be overlaid on
// top of the result.
func LoadProfiles(path string) (Credentials, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	creds := Credentials{}
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		key := section.Key("key").String()
		if key == "" {
			continue
		}
		creds[strings.ToLower(section.Name())] = key
	}
	return creds, nil
}

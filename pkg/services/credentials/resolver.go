package credentials

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// EnvPrefix marks environment variables that carry account secrets, e.g.
// STRIPE_KEY_ACME=sk_live_... becomes account "acme".
const EnvPrefix = "STRIPE_KEY_"

// referenceScheme marks a credential value that is not the secret itself but
// a pointer into an external secret store.
const referenceScheme = "sm://"

// Credentials maps a lowercase account name to its API secret (or, before
// resolution, to a secret-store reference).
type Credentials map[string]string

// FromEnviron scans an environ snapshot ("KEY=value" entries, as returned by
// os.Environ) for prefixed variables. Variables with empty values are
// ignored. No matches is not an error; the caller decides how to report an
// empty result.
func FromEnviron(environ []string) Credentials {
	creds := Credentials{}
	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) || value == "" {
			continue
		}
		account := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if account == "" {
			continue
		}
		creds[account] = value
	}
	return creds
}

// Overlay merges other on top of c, with entries in other winning.
func (c Credentials) Overlay(other Credentials) {
	for account, secret := range other {
		c[account] = secret
	}
}

// Names lists the account names in stable sorted order, for menus.
func (c Credentials) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsReference reports whether a credential value points into an external
// secret store instead of being the secret itself.
func IsReference(value string) bool {
	return strings.HasPrefix(value, referenceScheme)
}

// HasReferences reports whether any credential still needs resolution.
func (c Credentials) HasReferences() bool {
	for _, value := range c {
		if IsReference(value) {
			return true
		}
	}
	return false
}

// SecretResolver exchanges a secret-store reference for the plain secret.
type SecretResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// ResolveReferences replaces every reference value in place with the secret
// it points at. A reference that fails to resolve is fatal for the run.
func (c Credentials) ResolveReferences(ctx context.Context, resolver SecretResolver) error {
	for account, value := range c {
		if !IsReference(value) {
			continue
		}
		secret, err := resolver.Resolve(ctx, value)
		if err != nil {
			return fmt.Errorf("resolving secret for account %q: %w", account, err)
		}
		c[account] = secret
	}
	return nil
}

package secret

import (
	"context"
	"fmt"
)

// StaticProvider serves secrets from a fixed in-memory map. Intended for
// tests and local development.
type StaticProvider struct {
	name   string
	values map[string]string
}

// NewStaticProvider creates a provider named name serving values.
func NewStaticProvider(name string, values map[string]string) *StaticProvider {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &StaticProvider{name: name, values: copied}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string {
	return p.name
}

// Resolve returns the value for ref, or an error when ref is unknown.
func (p *StaticProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := p.values[ref]
	if !ok {
		return "", fmt.Errorf("secret %q not found in provider %q", ref, p.name)
	}
	return v, nil
}

// Close is a no-op.
func (p *StaticProvider) Close() error {
	return nil
}

// Ensure StaticProvider implements Provider
var _ Provider = (*StaticProvider)(nil)

package secret

import (
	"context"
	"testing"
)

// TestParseSecretRef tests reference parsing.
func TestParseSecretRef(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantProvider string
		wantRef      string
		wantOK       bool
	}{
		{"full ref", "secretref:vault:redis-password", "vault", "redis-password", true},
		{"ref with colons", "secretref:vault:kv/data/redis:password", "vault", "kv/data/redis:password", true},
		{"not a ref", "plain-value", "", "", false},
		{"missing ref", "secretref:vault:", "", "", false},
		{"missing provider", "secretref::redis-password", "", "", false},
		{"prefix only", "secretref:", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, ref, ok := ParseSecretRef(tt.in)
			if ok != tt.wantOK || provider != tt.wantProvider || ref != tt.wantRef {
				t.Errorf("ParseSecretRef(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.in, provider, ref, ok, tt.wantProvider, tt.wantRef, tt.wantOK)
			}
		})
	}
}

// TestResolver_ResolveValue tests provider-backed resolution.
func TestResolver_ResolveValue(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(true, NewStaticProvider("vault", map[string]string{
		"redis-password": "s3cret",
	}))

	got, err := r.ResolveValue(ctx, "secretref:vault:redis-password")
	if err != nil {
		t.Fatalf("ResolveValue() = %v", err)
	}
	if got != "s3cret" {
		t.Errorf("ResolveValue() = %q, want %q", got, "s3cret")
	}

	// Plain values pass through untouched.
	got, err = r.ResolveValue(ctx, "redis:6379")
	if err != nil || got != "redis:6379" {
		t.Errorf("ResolveValue(plain) = (%q, %v)", got, err)
	}

	// Unknown provider fails.
	if _, err := r.ResolveValue(ctx, "secretref:aws:thing"); err == nil {
		t.Error("ResolveValue(unknown provider) = nil, want error")
	}

	// Unknown ref fails.
	if _, err := r.ResolveValue(ctx, "secretref:vault:missing"); err == nil {
		t.Error("ResolveValue(unknown ref) = nil, want error")
	}
}

// TestResolver_NilReceiver tests that a nil resolver still expands env vars.
func TestResolver_NilReceiver(t *testing.T) {
	t.Setenv("TEST_SECRET_ADDR", "redis:6379")

	var r *Resolver
	got, err := r.ResolveValue(context.Background(), "${TEST_SECRET_ADDR}")
	if err != nil {
		t.Fatalf("ResolveValue() = %v", err)
	}
	if got != "redis:6379" {
		t.Errorf("ResolveValue() = %q", got)
	}
}

// TestResolver_InlineRefs tests resolution of whitespace-delimited refs
// embedded in a larger value.
func TestResolver_InlineRefs(t *testing.T) {
	r := NewResolver(true, NewStaticProvider("vault", map[string]string{
		"token": "tok-123",
	}))

	got, err := r.ResolveValue(context.Background(), "Bearer secretref:vault:token")
	if err != nil {
		t.Fatalf("ResolveValue() = %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("ResolveValue() = %q, want %q", got, "Bearer tok-123")
	}
}

// TestResolver_StrictEmpty tests that strict mode rejects empty secrets.
func TestResolver_StrictEmpty(t *testing.T) {
	strict := NewResolver(true, NewStaticProvider("vault", map[string]string{"empty": ""}))
	if _, err := strict.ResolveValue(context.Background(), "secretref:vault:empty"); err == nil {
		t.Error("strict resolver accepted an empty secret")
	}

	lenient := NewResolver(false, NewStaticProvider("vault", map[string]string{"empty": ""}))
	got, err := lenient.ResolveValue(context.Background(), "secretref:vault:empty")
	if err != nil || got != "" {
		t.Errorf("lenient ResolveValue() = (%q, %v)", got, err)
	}
}

// TestResolver_ResolveMap tests map-wide resolution.
func TestResolver_ResolveMap(t *testing.T) {
	t.Setenv("TEST_SECRET_DB", "2")
	r := NewResolver(true, NewStaticProvider("vault", map[string]string{"pass": "s3cret"}))

	out, err := r.ResolveMap(context.Background(), map[string]string{
		"addr":     "redis:6379",
		"password": "secretref:vault:pass",
		"db":       "${TEST_SECRET_DB}",
	})
	if err != nil {
		t.Fatalf("ResolveMap() = %v", err)
	}
	if out["password"] != "s3cret" || out["db"] != "2" || out["addr"] != "redis:6379" {
		t.Errorf("ResolveMap() = %v", out)
	}

	if _, err := r.ResolveMap(context.Background(), map[string]string{
		"bad": "secretref:vault:missing",
	}); err == nil {
		t.Error("ResolveMap() with a bad ref = nil, want error")
	}
}

package awsconfig

import (
	"context"
	"testing"
)

func TestFromStatic(t *testing.T) {
	cfg := FromStatic("AKIAEXAMPLE", "secret", "token", "us-east-1")

	if cfg.Region != "us-east-1" {
		t.Fatalf("unexpected region: %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error retrieving static credentials: %v", err)
	}
	if creds.AccessKeyID != "AKIAEXAMPLE" || creds.SecretAccessKey != "secret" || creds.SessionToken != "token" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

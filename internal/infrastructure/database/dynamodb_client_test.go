package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfigFromEnv_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials err: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected local credentials, got %q", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	client, err := ConnectDynamoDB(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if client == nil {
		t.Fatalf("expected client")
	}
}

package assets

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewUploaderRequiresBucket(t *testing.T) {
	_, err := NewUploader(context.Background(), Config{}, slog.Default())
	if err == nil {
		t.Fatal("expected error for empty bucket")
	}
}

func TestObjectKey(t *testing.T) {
	key, err := objectKey("Teddy Bear.PNG")
	if err != nil {
		t.Fatalf("objectKey: %v", err)
	}
	if !strings.HasPrefix(key, "uploads/") {
		t.Errorf("key %q missing uploads/ prefix", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key %q should keep lowercased extension", key)
	}

	other, err := objectKey("Teddy Bear.PNG")
	if err != nil {
		t.Fatalf("objectKey: %v", err)
	}
	if key == other {
		t.Error("keys for the same filename should not collide")
	}
}

func TestPublicURL(t *testing.T) {
	u := &Uploader{cfg: Config{Bucket: "shop-assets", Region: "eu-west-1"}}
	got := u.publicURL("uploads/abc.png")
	want := "https://shop-assets.s3.eu-west-1.amazonaws.com/uploads/abc.png"
	if got != want {
		t.Errorf("publicURL = %q, want %q", got, want)
	}

	u.cfg.PublicBaseURL = "https://cdn.example.com/"
	if got := u.publicURL("uploads/abc.png"); got != "https://cdn.example.com/uploads/abc.png" {
		t.Errorf("publicURL with base = %q", got)
	}
}

func TestContentType(t *testing.T) {
	if ct := contentType("photo.jpg"); ct != "image/jpeg" {
		t.Errorf("contentType(.jpg) = %q", ct)
	}
	if ct := contentType("blob.weird"); ct != "application/octet-stream" {
		t.Errorf("contentType fallback = %q", ct)
	}
}

package obsws

import (
	"encoding/base64"
	"testing"
)

func TestBuildAuthResponse(t *testing.T) {
	auth := buildAuthResponse("supersecret", "salt123", "challenge456")

	// The result is base64(sha256(...)): 32 bytes → 44 base64 characters.
	raw, err := base64.StdEncoding.DecodeString(auth)
	if err != nil {
		t.Fatalf("auth response is not valid base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("decoded auth response length = %d, want 32", len(raw))
	}

	// Deterministic for identical inputs.
	if again := buildAuthResponse("supersecret", "salt123", "challenge456"); again != auth {
		t.Error("buildAuthResponse is not deterministic")
	}

	// Sensitive to every input.
	if buildAuthResponse("other", "salt123", "challenge456") == auth {
		t.Error("auth response did not change with password")
	}
	if buildAuthResponse("supersecret", "other", "challenge456") == auth {
		t.Error("auth response did not change with salt")
	}
	if buildAuthResponse("supersecret", "salt123", "other") == auth {
		t.Error("auth response did not change with challenge")
	}
}

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{Type: "SetCurrentProgramScene", Code: 600, Comment: "No source was found"}
	want := "obsws: SetCurrentProgramScene failed with code 600: No source was found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &RequestError{Type: "StartRecord", Code: 500}
	if bare.Error() != "obsws: StartRecord failed with code 500" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

// Package testutil gates analytics store tests on a running Firestore
// emulator.
package testutil

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

// Host and project the analytics tests point their Firestore client at.
const (
	FirestoreEmulatorHost = "127.0.0.1:8200"
	ProjectID             = "forgefolio-test"
)

// SkipIfEmulatorUnavailable skips tests that need the Firestore emulator
// when nothing is listening on its port.
func SkipIfEmulatorUnavailable(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", FirestoreEmulatorHost)
	if err != nil {
		t.Skipf("firestore emulator not reachable on %s", FirestoreEmulatorHost)
	}
	_ = conn.Close()
}

// SetupEmulator points the Firestore client library at the emulator for the
// duration of the test.
func SetupEmulator(t *testing.T) {
	t.Helper()
	t.Setenv("FIRESTORE_EMULATOR_HOST", FirestoreEmulatorHost)
}

// ClearFirestore deletes every document in the emulator project so each test
// starts from an empty database.
func ClearFirestore(t *testing.T) {
	t.Helper()
	url := fmt.Sprintf("http://%s/emulator/v1/projects/%s/databases/(default)/documents",
		FirestoreEmulatorHost, ProjectID)
	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("build clear request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("clear firestore: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear firestore: status %d", resp.StatusCode)
	}
}

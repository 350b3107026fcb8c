package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// telemetryKeys lists the storage.json fields that identify the machine to
// the editor's telemetry, with a generator for each. devDeviceId is a plain
// UUID; the others are 64-char hex digests.
var telemetryKeys = []struct {
	key      string
	generate func() string
}{
	{"telemetry.machineId", newMachineID},
	{"telemetry.devDeviceId", newDeviceID},
	{"telemetry.macMachineId", newMachineID},
	{"storage.serviceMachineId", newMachineID},
}

// IDChange records one rewritten field for display.
type IDChange struct {
	Key string
	Old string
	New string
}

// newMachineID returns a 64-character hex string, the SHA-256 of fresh
// random UUID bytes.
func newMachineID() string {
	id := uuid.New()
	digest := sha256.Sum256(id[:])
	return hex.EncodeToString(digest[:])
}

// newDeviceID returns a random UUIDv4 string.
func newDeviceID() string {
	return uuid.NewString()
}

// ModifyTelemetryIDs overwrites the telemetry identifier fields in the given
// storage.json with freshly generated values, preserving every other key,
// and returns the old and new value of each rewritten field.
func ModifyTelemetryIDs(storagePath string) ([]IDChange, error) {
	raw, err := os.ReadFile(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", storagePath, err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", storagePath, err)
	}

	changes := make([]IDChange, 0, len(telemetryKeys))
	for _, tk := range telemetryKeys {
		old, _ := data[tk.key].(string)
		value := tk.generate()
		data[tk.key] = value
		changes = append(changes, IDChange{Key: tk.key, Old: old, New: value})
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", storagePath, err)
	}
	if err := os.WriteFile(storagePath, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", storagePath, err)
	}
	return changes, nil
}

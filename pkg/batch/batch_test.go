package batch

import "testing"

func TestGeneratePackDryRunReportsAllSuccesses(t *testing.T) {
	batch, err := GeneratePack(Config{PackID: 1, DryRun: true, Strategy: "random-fill"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.SuccessCount != puzzlesPerPack {
		t.Fatalf("expected %d dry-run successes, got %d", puzzlesPerPack, batch.SuccessCount)
	}
	if batch.FailureCount != 0 {
		t.Fatalf("expected no failures in dry-run, got %d", batch.FailureCount)
	}
}

func TestGeneratePackRejectsInvalidPackID(t *testing.T) {
	if _, err := GeneratePack(Config{PackID: 0}); err == nil {
		t.Fatal("expected an error for pack ID 0")
	}
}

func TestTierProgressionHasExpectedLength(t *testing.T) {
	if len(tierProgression) != puzzlesPerPack {
		t.Fatalf("tierProgression has %d entries, want %d", len(tierProgression), puzzlesPerPack)
	}
}

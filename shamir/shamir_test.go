package shamir

import (
	"testing"

	"github.com/ethp2p/linalg/field"
)

func testSecret(t *testing.T, data []byte) field.Element {
	t.Helper()
	return ScalarField().FromBytes(data)
}

// TestSplitAndReconstruct tests the round trip with all shares present
func TestSplitAndReconstruct(t *testing.T) {
	secret := testSecret(t, []byte{0x13, 0x37, 0xC0, 0xDE})

	shares, err := Split(secret, 3, 5)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("Expected 5 shares, got %d", len(shares))
	}
	for i, s := range shares {
		if s.X != i+1 {
			t.Errorf("Share %d has point %d, expected %d", i, s.X, i+1)
		}
		if s.Y == nil {
			t.Errorf("Share %d has no value", i)
		}
	}

	recovered, err := Reconstruct(shares, 3)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if !recovered.Equal(secret) {
		t.Errorf("Expected %s, got %s", secret, recovered)
	}
}

// TestReconstructFromSubsets tests that any threshold shares suffice,
// regardless of which ones and in which order
func TestReconstructFromSubsets(t *testing.T) {
	secret := testSecret(t, []byte{0xAB})

	shares, err := Split(secret, 3, 6)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	subsets := [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{0, 2, 4},
		{5, 1, 3}, // order does not matter
	}
	for _, idx := range subsets {
		subset := []Share{shares[idx[0]], shares[idx[1]], shares[idx[2]]}
		recovered, err := Reconstruct(subset, 3)
		if err != nil {
			t.Fatalf("Reconstruct failed for subset %v: %v", idx, err)
		}
		if !recovered.Equal(secret) {
			t.Errorf("Wrong secret for subset %v: %s", idx, recovered)
		}
	}
}

// TestThresholdOne tests the degenerate constant polynomial
func TestThresholdOne(t *testing.T) {
	secret := testSecret(t, []byte{0x2A})

	shares, err := Split(secret, 1, 3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	// Every share carries the secret itself
	for i, s := range shares {
		if !s.Y.Equal(secret) {
			t.Errorf("Share %d should equal the secret, got %s", i, s.Y)
		}
	}

	recovered, err := Reconstruct(shares[2:], 1)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if !recovered.Equal(secret) {
		t.Errorf("Expected %s, got %s", secret, recovered)
	}
}

// TestSplitValidation tests argument validation on the dealer side
func TestSplitValidation(t *testing.T) {
	secret := testSecret(t, []byte{0x01})

	tests := []struct {
		name             string
		secret           field.Element
		threshold, total int
	}{
		{"nil_secret", nil, 2, 3},
		{"zero_threshold", secret, 0, 3},
		{"total_below_threshold", secret, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Split(tt.secret, tt.threshold, tt.total); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

// TestReconstructValidation tests share validation on the receiving side
func TestReconstructValidation(t *testing.T) {
	secret := testSecret(t, []byte{0x55})
	shares, err := Split(secret, 2, 4)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	tests := []struct {
		name      string
		shares    []Share
		threshold int
	}{
		{"zero_threshold", shares, 0},
		{"too_few_shares", shares[:1], 2},
		{"duplicate_point", []Share{shares[0], shares[0]}, 2},
		{"non_positive_point", []Share{{X: 0, Y: shares[0].Y}, shares[1]}, 2},
		{"missing_value", []Share{{X: 1, Y: nil}, shares[1]}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Reconstruct(tt.shares, tt.threshold); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

// TestTamperedShare tests that a corrupted share changes the result and the
// commitment catches it
func TestTamperedShare(t *testing.T) {
	secret := testSecret(t, []byte{0x77, 0x88})

	shares, err := Split(secret, 2, 3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	commitment, err := Commitment(secret)
	if err != nil {
		t.Fatalf("Commitment failed: %v", err)
	}

	shares[0].Y = shares[0].Y.Add(ScalarField().One())
	recovered, err := Reconstruct(shares, 2)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}
	if recovered.Equal(secret) {
		t.Errorf("A tampered share should corrupt the result")
	}

	ok, err := VerifyCommitment(recovered, commitment)
	if err != nil {
		t.Fatalf("VerifyCommitment failed: %v", err)
	}
	if ok {
		t.Errorf("Commitment should reject the corrupted secret")
	}
}

// TestCommitment tests commitment creation and verification
func TestCommitment(t *testing.T) {
	secret := testSecret(t, []byte{0xDE, 0xAD})
	other := testSecret(t, []byte{0xBE, 0xEF})

	commitment, err := Commitment(secret)
	if err != nil {
		t.Fatalf("Commitment failed: %v", err)
	}

	ok, err := VerifyCommitment(secret, commitment)
	if err != nil {
		t.Fatalf("VerifyCommitment failed: %v", err)
	}
	if !ok {
		t.Errorf("Commitment should verify against its own secret")
	}

	ok, err = VerifyCommitment(other, commitment)
	if err != nil {
		t.Fatalf("VerifyCommitment failed: %v", err)
	}
	if ok {
		t.Errorf("Commitment should not verify against a different secret")
	}

	if _, err := VerifyCommitment(secret, nil); err == nil {
		t.Errorf("Expected an error for a missing commitment")
	}
	if _, err := Commitment(nil); err == nil {
		t.Errorf("Expected an error for a missing secret")
	}
}

// TestCommitmentAcrossReconstruct tests the dealer publishing a commitment
// that the reconstructing side checks
func TestCommitmentAcrossReconstruct(t *testing.T) {
	secret := testSecret(t, []byte{0x42, 0x42, 0x42})

	shares, err := Split(secret, 3, 5)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	commitment, err := Commitment(secret)
	if err != nil {
		t.Fatalf("Commitment failed: %v", err)
	}

	recovered, err := Reconstruct(shares[1:4], 3)
	if err != nil {
		t.Fatalf("Reconstruct failed: %v", err)
	}

	ok, err := VerifyCommitment(recovered, commitment)
	if err != nil {
		t.Fatalf("VerifyCommitment failed: %v", err)
	}
	if !ok {
		t.Errorf("Reconstructed secret should match the published commitment")
	}
}

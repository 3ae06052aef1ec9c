package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard date/time values
	occurredAt := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	recordedAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	entryID := "b7c9a1e2-0f4d-4a6b-9c3e-5d8f7a2b1c0d"

	// Encode the token
	token := EncodeToken(occurredAt, recordedAt, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")

	// Decode the token and verify
	decodedOccurredAt, decodedRecordedAt, decodedEntryID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, occurredAt, decodedOccurredAt, "Occurrence time should match after decode")
	assert.Equal(t, recordedAt, decodedRecordedAt, "Recording time should match after decode")
	assert.Equal(t, entryID, decodedEntryID, "Entry ID should match after decode")

	// Test case 2: Zero time values
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime, entryID)
	decodedZeroOccurred, decodedZeroRecorded, _, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroOccurred, "Zero occurrence time should match after decode")
	assert.Equal(t, zeroTime, decodedZeroRecorded, "Zero recording time should match after decode")

	// Test case 3: Current time values
	now := time.Now().UTC()
	nowToken := EncodeToken(now, now, entryID)
	decodedNowOccurred, decodedNowRecorded, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNowOccurred), "Current occurrence time should match after decode")
	assert.True(t, now.Equal(decodedNowRecorded), "Current recording time should match after decode")
}

func TestEncodeToken_DistinctForSameTimestamps(t *testing.T) {
	occurredAt := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	recordedAt := time.Date(2024, 5, 15, 10, 0, 1, 0, time.UTC)

	first := EncodeToken(occurredAt, recordedAt, "entry-a")
	second := EncodeToken(occurredAt, recordedAt, "entry-b")
	assert.NotEqual(t, first, second, "Entries sharing timestamps should produce distinct tokens")
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err, "Non-base64 input should fail")

	_, _, _, err = DecodeToken("aGVsbG8=") // "hello" - no separator
	assert.Error(t, err, "Token without separator should fail")

	// Two-part token from an older client, missing the entry ID
	legacy := base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|2024-05-15T00:00:00Z"))
	_, _, _, err = DecodeToken(legacy)
	assert.Error(t, err, "Token without entry ID should fail")
}

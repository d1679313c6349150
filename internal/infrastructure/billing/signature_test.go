package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(t *testing.T, payload []byte, secret string, ts time.Time) string {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature_Valid(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	secret := "whsec_test"

	header := signPayload(t, payload, secret, time.Now())

	err := VerifySignature(payload, header, secret, DefaultSignatureTolerance)
	assert.NoError(t, err)
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)

	header := signPayload(t, payload, "whsec_other", time.Now())

	err := VerifySignature(payload, header, "whsec_test", DefaultSignatureTolerance)
	assert.Error(t, err)
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"

	header := signPayload(t, payload, secret, time.Now())

	err := VerifySignature([]byte(`{"id":"evt_2"}`), header, secret, DefaultSignatureTolerance)
	assert.Error(t, err)
}

func TestVerifySignature_ExpiredTimestamp(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"

	header := signPayload(t, payload, secret, time.Now().Add(-10*time.Minute))

	err := VerifySignature(payload, header, secret, DefaultSignatureTolerance)
	assert.Error(t, err)
}

func TestVerifySignature_MissingHeader(t *testing.T) {
	err := VerifySignature([]byte(`{}`), "", "whsec_test", DefaultSignatureTolerance)
	assert.Error(t, err)
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no timestamp", "v1=abcdef"},
		{"no signature", "t=1700000000"},
		{"garbage", "not-a-header"},
		{"bad timestamp", "t=abc,v1=abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature([]byte(`{}`), tt.header, "whsec_test", 0)
			assert.Error(t, err)
		})
	}
}

func TestVerifySignature_MultipleSignatures(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"
	now := time.Now()

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(now.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	valid := hex.EncodeToString(mac.Sum(nil))

	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", now.Unix(), "deadbeef", valid)

	err := VerifySignature(payload, header, secret, DefaultSignatureTolerance)
	assert.NoError(t, err)
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"id": "evt_123",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "mode": "payment", "metadata": {"user_id": "7"}}}
	}`)

	event, err := ParseEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "evt_123", event.ID)
	assert.Equal(t, EventCheckoutSessionCompleted, event.Type)

	var session CheckoutSessionObject
	require.NoError(t, event.DecodeObject(&session))
	assert.Equal(t, "cs_1", session.ID)
	assert.Equal(t, "payment", session.Mode)
	assert.Equal(t, "7", session.Metadata["user_id"])
}

func TestParseEvent_Invalid(t *testing.T) {
	_, err := ParseEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseEvent([]byte(`{"data":{}}`))
	assert.Error(t, err)
}

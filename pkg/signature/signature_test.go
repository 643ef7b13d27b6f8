package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeNice-r/liqpay-go/pkg/signature"
)

func TestSign(t *testing.T) {
	t.Parallel()

	// Reference value produced by the gateway's own scheme:
	// base64(sha1("key" + "PAYLOAD" + "key")).
	const want = "B2iZgWCOStxDH/dc6+VYyqWzTfY="

	got := signature.Sign("key", "PAYLOAD")
	require.Equal(t, want, got)
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	first := signature.Sign("private", "some-encoded-data")

	for i := 0; i < 10; i++ {
		require.Equal(t, first, signature.Sign("private", "some-encoded-data"))
	}
}

func TestSign_KeyOnBothSides(t *testing.T) {
	t.Parallel()

	// The key is concatenated before and after the payload, so moving a
	// byte between key and payload must change the digest.
	require.NotEqual(t, signature.Sign("ab", "cd"), signature.Sign("a", "bcd"))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	sig := signature.Sign("private", "data")

	require.True(t, signature.Verify("private", "data", sig))
	require.False(t, signature.Verify("other", "data", sig))
	require.False(t, signature.Verify("private", "tampered", sig))
	require.False(t, signature.Verify("private", "data", "bogus"))
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	type params struct {
		Amount   int    `json:"amount"`
		Currency string `json:"currency"`
	}

	in := params{Amount: 100, Currency: "USD"}

	data, err := signature.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var out params

	err = signature.Decode(data, &out)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDecode_InvalidBase64(t *testing.T) {
	t.Parallel()

	var out struct{}

	err := signature.Decode("not base64!!!", &out)
	require.Error(t, err)
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/auth"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTokenCommandIssuesVerifiableToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	code, out, errOut := run(t, "token", "--address", addr.Hex(), "--ttl", "1h")
	require.Equal(t, 0, code, errOut)

	id, err := auth.NewVerifier("cli-secret").Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, addr, id.Address)
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	code, _, errOut := run(t, "token", "--address", "0x00000000000000000000000000000000000000aa")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, auth.ErrNoSecret.Error())
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown command", []string{"frobnicate"}, 2},
		{"missing required flag", []string{"supporters"}, 2},
		{"bad migrate direction", []string{"migrate", "sideways"}, 2},
		{"bad status", []string{"campaigns", "--status", "successful"}, 1},
		{"bad viewer", []string{"stats", "--viewer", "alice"}, 1},
		{"create without title", []string{"create", "--creator", "0x00000000000000000000000000000000000000aa"}, 2},
		{"bad goal", []string{"create", "--creator", "0x00000000000000000000000000000000000000aa", "--title", "t", "--description", "d", "--goal", "lots", "--ipfs-hash", "bafy"}, 1},
		{"bad days", []string{"create", "--creator", "0x00000000000000000000000000000000000000aa", "--title", "t", "--description", "d", "--goal", "1", "--days", "0", "--ipfs-hash", "bafy"}, 1},
		{"bad amount", []string{"contribute", "--campaign", "1", "--amount", "ten", "--payer", "0x00000000000000000000000000000000000000aa"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

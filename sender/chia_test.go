package sender

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	memo := "'hello world; rm -rf /'"
	tx := Tx{
		Address: "xch1jhye8dmkhree0zr8t09rlzm9cc82mhuqtp5tlmsj4kuqvs69s2wsl90su4",
		Amount:  "0.000000000001",
		Fee:     "0.000000000001",
	}
	assert.Equal(t, []string{
		"wallet", "send",
		"-t", tx.Address,
		"-a", "0.000000000001",
		"-m", "0.000000000001",
		"--override",
	}, Args(tx))

	tx.Memo = &memo
	args := Args(tx)
	require.Len(t, args, 11)
	assert.Equal(t, "--override", args[8])
	assert.Equal(t, "-e", args[9])
	assert.Equal(t, memo, args[10], "the memo is one argv entry")
}

func TestCommandUsesProgram(t *testing.T) {
	c := &Chia{}
	cmd := c.Command(context.Background(), Tx{Address: "a", Amount: "1", Fee: "2"})
	assert.Equal(t, DefaultProgram, cmd.Args[0])

	c.Program = "/opt/chia/bin/chia"
	cmd = c.Command(context.Background(), Tx{Address: "a", Amount: "1", Fee: "2"})
	assert.Equal(t, "/opt/chia/bin/chia", cmd.Path)
	assert.Equal(t, []string{"/opt/chia/bin/chia", "wallet", "send", "-t", "a", "-a", "1", "-m", "2", "--override"}, cmd.Args)
}

func TestSendRunsProgram(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	script := filepath.Join(t.TempDir(), "chia")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nfor a in \"$@\"; do echo \"$a\"; done\n"), 0o755))

	memo := "a b"
	var out bytes.Buffer
	c := &Chia{Program: script, Stdout: &out}
	require.NoError(t, c.Send(context.Background(), Tx{Address: "addr", Amount: "1", Fee: "2", Memo: &memo}))
	assert.Equal(t, "wallet\nsend\n-t\naddr\n-a\n1\n-m\n2\n--override\n-e\na b\n", out.String())
}

func TestSendReportsFailure(t *testing.T) {
	c := &Chia{Program: filepath.Join(t.TempDir(), "missing")}
	err := c.Send(context.Background(), Tx{Address: "a", Amount: "1", Fee: "1"})
	assert.ErrorIs(t, err, ErrSendFailed)
}

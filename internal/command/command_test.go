// Copryright (C) 2019 Yawning Angel
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/yawning/blockcipher.git/internal/analysis"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{"bcvec"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	require := require.New(t)

	out, _, err := runApp(t, "list")
	require.NoError(err, "list")
	require.Contains(out, "NAME", "list - header")
	require.Contains(out, "AES", "list - AES")
	require.Contains(out, "CAMELLIA", "list - CAMELLIA")

	out, _, err = runApp(t, "--output", "json", "list")
	require.NoError(err, "list - json")
	var infos []AlgorithmInfo
	require.NoError(json.Unmarshal([]byte(out), &infos), "list - json decode")
	require.Len(infos, 2, "list - json")
	require.Equal(16, infos[1].BlockSize, "list - json block size")

	out, _, err = runApp(t, "-o", "yaml", "list")
	require.NoError(err, "list - yaml")
	infos = nil
	require.NoError(yaml.Unmarshal([]byte(out), &infos), "list - yaml decode")
	require.Equal("CAMELLIA", infos[1].Name, "list - yaml name")

	_, _, err = runApp(t, "-o", "xml", "list")
	require.Error(err, "list - bad format")
}

func TestEncryptDecrypt(t *testing.T) {
	require := require.New(t)

	const (
		key = "0123456789abcdeffedcba9876543210"
		pt  = "0123456789abcdeffedcba98765432100123456789abcdeffedcba9876543210"
		ct  = "67673138549669730857065648eabe4367673138549669730857065648eabe43"
	)

	out, _, err := runApp(t, "encrypt", "--alg", "camellia", "--key", key, pt)
	require.NoError(err, "encrypt")
	require.Equal(ct, strings.TrimSpace(out), "encrypt")

	out, _, err = runApp(t, "decrypt", "-a", "CAMELLIA", "-k", key, ct)
	require.NoError(err, "decrypt")
	require.Equal(pt, strings.TrimSpace(out), "decrypt")

	out, _, err = runApp(t, "encrypt", "--key", "000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff")
	require.NoError(err, "encrypt - default AES")
	require.Equal("69c4e0d86a7b0430d8cdb78070b4c55a", strings.TrimSpace(out), "encrypt - default AES")

	_, _, err = runApp(t, "encrypt", "--key", "0011", pt)
	require.Error(err, "encrypt - short key")
	_, _, err = runApp(t, "encrypt", "--key", key, "0011")
	require.Error(err, "encrypt - partial block")
	_, _, err = runApp(t, "encrypt", "--alg", "des", "--key", key, pt)
	require.Error(err, "encrypt - unknown algorithm")
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	out, _, err := runApp(t, "verify", filepath.Join("..", "..", "testdata", "vectors.json"))
	require.NoError(err, "verify")
	require.Contains(out, "failed: 0", "verify")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(os.WriteFile(bad, []byte(`- algorithm: AES
  key: "000102030405060708090a0b0c0d0e0f"
  plaintext: "00112233445566778899aabbccddeeff"
  ciphertext: "00000000000000000000000000000000"
`), 0o600), "write bad vectors")

	out, logs, err := runApp(t, "-o", "json", "verify", bad)
	require.Error(err, "verify - bad vector")
	var res VerifyResult
	require.NoError(json.Unmarshal([]byte(out), &res), "verify - json decode")
	require.Equal(VerifyResult{Passed: 0, Failed: 1}, res, "verify - result")
	require.Contains(logs, "vector failed", "verify - logged")

	_, _, err = runApp(t, "verify")
	require.Error(err, "verify - no files")
}

func TestAvalancheCommand(t *testing.T) {
	require := require.New(t)

	out, _, err := runApp(t, "-o", "json", "avalanche", "--alg", "camellia", "--key-size", "256", "--trials", "200")
	require.NoError(err, "avalanche")
	var res analysis.AvalancheResult
	require.NoError(json.Unmarshal([]byte(out), &res), "avalanche - json decode")
	require.Equal(200, res.Trials, "avalanche - trials")
	require.InDelta(0.5, res.PlaintextFlip, 0.05, "avalanche - plaintext")

	_, _, err = runApp(t, "avalanche", "--key-size", "100")
	require.Error(err, "avalanche - bad key size")
	require.Contains(err.Error(), "100 bits", "avalanche - bad key size message")

	for _, size := range []string{"-8", "0", "-128"} {
		require.NotPanics(func() {
			_, _, err = runApp(t, "avalanche", "--key-size", size, "--trials", "1")
		}, "avalanche --key-size %s", size)
		require.Error(err, "avalanche --key-size %s", size)
	}
}

func TestLogLevel(t *testing.T) {
	_, _, err := runApp(t, "--log-level", "loud", "list")
	require.Error(t, err, "bad log level")
}

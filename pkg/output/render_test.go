// pkg/output/render_test.go

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = Report{
	Candidates: []string{"P@55w0rd!23xyzAB", "pA$sw0rD#12abcdE", "Pa55!w0rd12zzzzQ", "p@SS(w)0rd!2QQQQ"},
	Rationale:  []string{"Increases entropy by approximately 61%", "Avoids dictionary words that are vulnerable to dictionary attacks"},
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, sample))
	out := buf.String()

	assert.Contains(t, out, candidatesHeading)
	assert.Contains(t, out, rationaleHeading)
	assert.Contains(t, out, managerNote)
	for i, c := range sample.Candidates {
		assert.Contains(t, out, c)
		assert.Contains(t, out, strings.Repeat(" ", 2)+string(rune('1'+i))+".")
	}
	for _, r := range sample.Rationale {
		assert.Contains(t, out, r)
	}
}

func TestRenderTextRationaleOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, Report{Rationale: sample.Rationale}))

	assert.NotContains(t, buf.String(), candidatesHeading)
	assert.NotContains(t, buf.String(), managerNote)
	assert.Contains(t, buf.String(), sample.Rationale[0])
}

func TestRenderTextHashes(t *testing.T) {
	t.Parallel()

	report := Report{
		Hashes: []crypto.HashedCandidate{
			{Password: "P@55w0rd!23xyzAB", Algorithm: crypto.HashBcrypt, Digest: "$2a$12$abc"},
		},
		Rationale: sample.Rationale,
		StoredAt:  "secret/data/app",
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, report))
	out := buf.String()

	assert.Contains(t, out, "DIGEST")
	assert.Contains(t, out, "$2a$12$abc")
	assert.Contains(t, out, "secret/data/app")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sample))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.NotContains(t, buf.String(), "stored_at")
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sample))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Render(&bytes.Buffer{}, Format("xml"), sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestTableWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewTableTo(&buf).WithHeaders("A", "BB").AddRow("1", "2").Render())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "-")
	assert.Contains(t, lines[2], "1")
}

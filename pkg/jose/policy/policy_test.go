package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexadamm/jose-algorithms/pkg/jose/algorithms"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    *Policy
		wantErr error
	}{
		{
			name: "full document",
			doc: `
minimum_requirement: RECOMMENDED
families: [RSA, EC]
allow: [RS256, ES256]
`,
			want: &Policy{
				MinimumRequirement: algorithms.RequirementRecommended,
				Families:           []algorithms.FamilyName{algorithms.FamilyRSA, algorithms.FamilyEC},
				Allow:              []string{"RS256", "ES256"},
			},
		},
		{
			name: "families default to SIGNATURE",
			doc:  "allow: [EdDSA]\n",
			want: &Policy{
				Families: []algorithms.FamilyName{algorithms.FamilySignature},
				Allow:    []string{"EdDSA"},
			},
		},
		{
			name: "empty document",
			doc:  "",
			want: &Policy{Families: []algorithms.FamilyName{algorithms.FamilySignature}},
		},
		{
			name:    "unknown field",
			doc:     "deny: [RS256]\n",
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "unknown requirement",
			doc:     "minimum_requirement: MANDATORY\n",
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "unknown family",
			doc:     "families: [DSA]\n",
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "malformed yaml",
			doc:     "families: [RSA\n",
			wantErr: ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("families: [ED]\n"), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []algorithms.FamilyName{algorithms.FamilyED}, p.Families)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	reg := algorithms.NewRegistry()

	t.Run("Default policy", func(t *testing.T) {
		got, err := DefaultPolicy.Apply(reg)
		require.NoError(t, err)
		sig, _ := reg.Family(algorithms.FamilySignature)
		assert.True(t, got.Equal(sig))
	})

	t.Run("Minimum requirement", func(t *testing.T) {
		p := &Policy{MinimumRequirement: algorithms.RequirementRecommended}
		got, err := p.Apply(reg)
		require.NoError(t, err)
		assert.ElementsMatch(t, []algorithms.Algorithm{algorithms.RS256, algorithms.ES256}, got.Values())
	})

	t.Run("Allow list", func(t *testing.T) {
		p := &Policy{
			Families: []algorithms.FamilyName{algorithms.FamilyRSA, algorithms.FamilyHMACSHA},
			Allow:    []string{"PS256", "HS512"},
		}
		got, err := p.Apply(reg)
		require.NoError(t, err)
		assert.ElementsMatch(t, []algorithms.Algorithm{algorithms.PS256, algorithms.HS512}, got.Values())
	})

	t.Run("Allow list and floor", func(t *testing.T) {
		p := &Policy{
			MinimumRequirement: algorithms.RequirementRecommended,
			Allow:              []string{"RS256", "EdDSA"},
		}
		got, err := p.Apply(reg)
		require.NoError(t, err)
		assert.ElementsMatch(t, []algorithms.Algorithm{algorithms.RS256}, got.Values())
	})

	t.Run("Allow name outside families", func(t *testing.T) {
		p := &Policy{
			Families: []algorithms.FamilyName{algorithms.FamilyEC},
			Allow:    []string{"RS256"},
		}
		_, err := p.Apply(reg)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
		assert.ErrorIs(t, p.Validate(reg), ErrUnknownAlgorithm)
	})

	t.Run("Unknown family", func(t *testing.T) {
		p := &Policy{Families: []algorithms.FamilyName{"DSA"}}
		assert.ErrorIs(t, p.Validate(reg), ErrInvalidPolicy)
	})

	t.Run("Registry unchanged", func(t *testing.T) {
		p := &Policy{Allow: []string{"ES256"}}
		_, err := p.Apply(reg)
		require.NoError(t, err)

		sig, _ := reg.Family(algorithms.FamilySignature)
		assert.Equal(t, 11, sig.Len())
	})
}

func TestPermits(t *testing.T) {
	reg := algorithms.NewRegistry()
	p := &Policy{
		MinimumRequirement: algorithms.RequirementOptional,
		Families:           []algorithms.FamilyName{algorithms.FamilyEC},
	}

	assert.True(t, p.Permits(reg, "ES256K"))
	assert.False(t, p.Permits(reg, "RS256"))
	assert.False(t, p.Permits(reg, "none"))

	bad := &Policy{Allow: []string{"HS256"}}
	assert.False(t, bad.Permits(reg, "HS256"))
}

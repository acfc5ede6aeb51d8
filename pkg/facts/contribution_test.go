package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurocrista/genemap/pkg/errors"
)

func TestNewContributionDefaults(t *testing.T) {
	c, err := New(SourceIDFaceBase, "SOX9")
	require.NoError(t, err)

	assert.Equal(t, SourceIDFaceBase, c.Source())
	assert.Equal(t, "SOX9", c.Symbol().String())
	assert.True(t, c.Present())
	assert.Equal(t, "", c.NativeID())
	assert.Nil(t, c.Payload())
	assert.Empty(t, c.Fields())
}

func TestNewContributionOptions(t *testing.T) {
	c, err := New(SourceIDOMIM, "PAX3",
		WithNativeID("606597"),
		WithPayload(OMIMFacts{Syndromes: []string{"Waardenburg syndrome, type 1, 193500"}}),
	)
	require.NoError(t, err)

	assert.Equal(t, "606597", c.NativeID())
	assert.True(t, c.Present())

	payload, ok := c.Payload().(OMIMFacts)
	require.True(t, ok)
	assert.Len(t, payload.Syndromes, 1)
	assert.Equal(t, []string{"Waardenburg syndrome, type 1, 193500"}, c.Fields()["omim_syndromes"])
}

func TestNewContributionExplicitAbsence(t *testing.T) {
	c, err := New(SourceIDFaceBase, "RHOA", WithPresence(false))
	require.NoError(t, err)
	assert.False(t, c.Present())

	// An absent contribution carrying data is contradictory
	_, err = New(SourceIDOMIM, "RHOA",
		WithPresence(false),
		WithPayload(OMIMFacts{Syndromes: []string{"x"}}),
	)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewContributionRejectsBadInputs(t *testing.T) {
	_, err := New(SourceID("orphanet"), "SOX9")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = New(SourceIDOMIM, "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = New(SourceIDOMIM, "SOX 9")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestOwnershipEnforcedForEveryPayload(t *testing.T) {
	// Constructing a contribution whose payload belongs to another source
	// must fail for every payload type under every non-owning source.
	payloads := []Payload{
		GOFacts{}, OMIMFacts{}, HPOFacts{}, UniProtFacts{}, FaceBaseFacts{},
		ClinVarFacts{}, PubMedFacts{}, GnomADFacts{}, NIHReporterFacts{},
		GTExFacts{}, ClinicalTrialsFacts{}, STRINGFacts{},
	}

	for _, p := range payloads {
		owner := p.Source()
		for _, source := range AllSources() {
			c, err := New(source, "SOX10", WithPayload(p))
			if source == owner {
				require.NoError(t, err, "payload %T under its owner %s", p, source)
				assert.Equal(t, owner, c.Payload().Source())
				continue
			}
			require.Error(t, err, "payload %T under source %s", p, source)
			assert.ErrorIs(t, err, errors.ErrSchemaViolation, "payload %T under source %s", p, source)

			var ownErr *errors.OwnershipError
			require.ErrorAs(t, err, &ownErr)
			assert.Equal(t, string(source), ownErr.Source)
			assert.Equal(t, string(owner), ownErr.Owner)
			assert.Equal(t, "SOX10", ownErr.Symbol)
		}
	}
}

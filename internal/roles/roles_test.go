package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	assert.Equal(t, []Role{
		RoleSoftwareEngineer,
		RoleDataAnalyst,
		RoleFullstackDeveloper,
		RoleProductManager,
	}, repo.Roles())
}

func TestRepository_EntriesArePrecomputed(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	for _, role := range repo.Roles() {
		criteria := repo.Criteria(role)

		assert.Equal(t, role, criteria.Role)
		assert.NotEmpty(t, criteria.Text)
		assert.NotEmpty(t, criteria.NormalizedText)
		assert.NotEmpty(t, criteria.Skills, "catalog must never be empty for a configured role")
		assert.NotEmpty(t, criteria.Keywords)
		assert.LessOrEqual(t, len(criteria.Keywords), 20)
	}
}

func TestRepository_UnknownRoleFallsBack(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	fallback := repo.Criteria("astronaut")

	// Unknown roles score against the baseline profile by policy.
	assert.Same(t, repo.Criteria(DefaultRole), fallback)
	assert.Equal(t, DefaultRole, fallback.Role)
}

func TestRepository_NormalizedTextIsLowercaseSingleSpaced(t *testing.T) {
	repo, err := NewRepository()
	require.NoError(t, err)

	normalized := repo.Criteria(RoleSoftwareEngineer).NormalizedText

	assert.NotContains(t, normalized, "\n")
	assert.Equal(t, normalized, repo.Criteria(RoleSoftwareEngineer).NormalizedText)
	assert.Contains(t, normalized, "software engineer")
}

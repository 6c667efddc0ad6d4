package fixtures

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedProfiles(t *testing.T) {
	hasher := security.NewPINHasher(bcrypt.MinCost)
	profiles, err := SeedProfiles(hasher, time.Now())
	require.NoError(t, err)
	require.Len(t, profiles, len(SeedStaff))

	for i, p := range profiles {
		assert.Equal(t, SeedStaff[i].ID, p.ID)
		assert.NotEqual(t, SeedStaff[i].PIN, p.PINHash)
		assert.True(t, hasher.Verify(SeedStaff[i].PIN, p.PINHash))
		assert.Equal(t, SeedStaff[i].Gender.Icon(), p.Icon)
	}
	assert.Equal(t, int64(len(SeedStaff)+1), NextStaffSequence)
}

package user_test

import (
	"testing"

	"guidely/internal/domain/user"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in    string
		want  user.Role
		errIs error
	}{
		{in: "learner", want: user.RoleLearner},
		{in: " Guide ", want: user.RoleGuide},
		{in: "ADMIN", want: user.RoleAdmin},
		{in: "viewer", errIs: user.ErrInvalidRole},
		{in: "", errIs: user.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := user.ParseRole(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := uuid.New()
		a, err := user.NewActor(id, user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, id, a.UserID)
		assert.True(t, a.IsAdmin())
	})

	t.Run("nil user id is forbidden", func(t *testing.T) {
		_, err := user.NewActor(uuid.Nil, user.RoleLearner)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := user.NewActor(uuid.New(), user.Role("owner"))
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmguard/internal/models"
)

func TestLoginSelectsRoleProfile(t *testing.T) {
	s := NewService()
	assert.False(t, s.LoggedIn())
	assert.Equal(t, "user-guest", s.Current().ID)

	s.Login(models.RoleFarmer)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "user-rajesh-patel", s.Current().ID)
	assert.Equal(t, models.RoleFarmer, s.Role())

	s.Login(models.RoleAdmin)
	assert.Equal(t, "user-admin", s.Current().ID)
}

func TestVetSharesFarmerProfile(t *testing.T) {
	s := NewService()
	s.Login(models.RoleVet)
	assert.Equal(t, "user-rajesh-patel", s.Current().ID)
	assert.Equal(t, models.RoleVet, s.Role(), "role is kept even though the profile is shared")
}

func TestLogoutRestoresGuest(t *testing.T) {
	s := NewService()
	s.Login(models.RoleConsumer)
	s.Logout()

	assert.False(t, s.LoggedIn())
	assert.Equal(t, "user-guest", s.Current().ID)
	assert.Empty(t, string(s.Role()))
}

func TestUpdateMergesOnlySetFields(t *testing.T) {
	s := NewService()
	s.Login(models.RoleFarmer)

	name := "R. Patel"
	push := false
	s.Update(Updates{Name: &name, PushNotifications: &push})

	got := s.Current()
	assert.Equal(t, "R. Patel", got.Name)
	assert.Equal(t, "rajesh.p@example.com", got.Email, "unset fields stay")
	assert.True(t, got.Notifications.Email)
	assert.False(t, got.Notifications.Push)
}

func TestUpdateDoesNotTouchFixture(t *testing.T) {
	s := NewService()
	s.Login(models.RoleFarmer)
	name := "Changed"
	s.Update(Updates{Name: &name})

	fresh := NewService()
	fresh.Login(models.RoleFarmer)
	assert.Equal(t, "Rajesh Patel", fresh.Current().Name)
}

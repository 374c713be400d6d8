// Package profile is the sign-in stub: fixed demo profiles selected by role.
// There is no real authentication; picking a role on the login screen is the
// whole flow.
package profile

import "farmguard/internal/models"

var farmerProfile = models.UserProfile{
	ID:            "user-rajesh-patel",
	Name:          "Rajesh Patel",
	Email:         "rajesh.p@example.com",
	Avatar:        "https://ui-avatars.com/api/?name=F&background=22c55e&color=fff",
	Notifications: models.NotificationPrefs{Email: true, Push: true},
}

var adminProfile = models.UserProfile{
	ID:            "user-admin",
	Name:          "Admin User",
	Email:         "admin@farmguard.gov.in",
	Avatar:        "https://ui-avatars.com/api/?name=G&background=3b82f6&color=fff",
	Notifications: models.NotificationPrefs{Email: true, Push: false},
}

var consumerProfile = models.UserProfile{
	ID:            "user-consumer",
	Name:          "Consumer User",
	Email:         "consumer@example.com",
	Avatar:        "https://ui-avatars.com/api/?name=C&background=f97316&color=fff",
	Notifications: models.NotificationPrefs{Email: false, Push: false},
}

var guestProfile = models.UserProfile{
	ID:     "user-guest",
	Name:   "Guest",
	Avatar: "https://ui-avatars.com/api/?name=G&background=6b7280&color=fff",
}

func byRole(role models.Role) models.UserProfile {
	switch role {
	case models.RoleFarmer, models.RoleVet:
		return farmerProfile
	case models.RoleAdmin:
		return adminProfile
	case models.RoleConsumer:
		return consumerProfile
	default:
		return guestProfile
	}
}

// Updates carries the fields a user may edit on the settings page. Nil
// pointers leave the current value alone.
type Updates struct {
	Name               *string
	Email              *string
	Avatar             *string
	EmailNotifications *bool
	PushNotifications  *bool
}

// Service tracks the signed-in user for the session.
type Service struct {
	current  models.UserProfile
	role     models.Role
	loggedIn bool
}

func NewService() *Service {
	return &Service{current: guestProfile}
}

// Login replaces the whole profile with the role's fixture. Vets share the
// farmer portal and its profile.
func (s *Service) Login(role models.Role) {
	s.current = byRole(role)
	s.role = role
	s.loggedIn = true
}

// Logout restores the guest profile.
func (s *Service) Logout() {
	s.current = guestProfile
	s.role = ""
	s.loggedIn = false
}

func (s *Service) Current() models.UserProfile { return s.current }
func (s *Service) Role() models.Role           { return s.role }
func (s *Service) LoggedIn() bool              { return s.loggedIn }

// Update merges the set fields into the current profile.
func (s *Service) Update(u Updates) {
	if u.Name != nil {
		s.current.Name = *u.Name
	}
	if u.Email != nil {
		s.current.Email = *u.Email
	}
	if u.Avatar != nil {
		s.current.Avatar = *u.Avatar
	}
	if u.EmailNotifications != nil {
		s.current.Notifications.Email = *u.EmailNotifications
	}
	if u.PushNotifications != nil {
		s.current.Notifications.Push = *u.PushNotifications
	}
}

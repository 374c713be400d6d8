package models

// Role selects which portal the dashboard presents after sign-in.
type Role string

const (
	RoleFarmer   Role = "Farmer"
	RoleAdmin    Role = "Administrator"
	RoleConsumer Role = "Consumer"
	RoleVet      Role = "Veterinarian"
)

// SelectableRoles are the roles offered on the sign-in screen. Vets sign in
// through the farmer portal and are not selectable on their own.
var SelectableRoles = []Role{RoleFarmer, RoleAdmin, RoleConsumer}

type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type UserProfile struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Avatar        string            `json:"avatar"`
	Notifications NotificationPrefs `json:"notifications"`
}

package entity

// RoleID is the integer role discriminator persisted on each user record.
// It is carried through login responses for the client's benefit; no route
// checks it server-side.
type RoleID int

const (
	RoleAdmin      RoleID = 0
	RoleNormalUser RoleID = 1
)

package entity

// UserRole categorizes what a member does in the network.
type UserRole string

const (
	UserRoleUnknown  UserRole = ""
	UserRoleFounder  UserRole = "founder"
	UserRoleInvestor UserRole = "investor"
	UserRoleMentor   UserRole = "mentor"
	UserRoleCXO      UserRole = "cxo"
	UserRoleService  UserRole = "service"
	UserRoleOther    UserRole = "other"
)

func UserRoleFromString(s string) UserRole {
	switch UserRole(s) {
	case UserRoleFounder, UserRoleInvestor, UserRoleMentor, UserRoleCXO, UserRoleService, UserRoleOther:
		return UserRole(s)
	default:
		return UserRoleUnknown
	}
}

func (r UserRole) String() string { return string(r) }

// Valid reports whether the role is one of the known values or unset.
func (r UserRole) Valid() bool {
	return r == UserRoleUnknown || UserRoleFromString(string(r)) != UserRoleUnknown
}

// PrimaryGoal is what a member wants out of the network right now.
type PrimaryGoal string

const (
	PrimaryGoalUnknown     PrimaryGoal = ""
	PrimaryGoalFundraising PrimaryGoal = "fundraising"
	PrimaryGoalClients     PrimaryGoal = "clients"
	PrimaryGoalCofounder   PrimaryGoal = "cofounder"
	PrimaryGoalHiring      PrimaryGoal = "hiring"
	PrimaryGoalLearn       PrimaryGoal = "learn"
	PrimaryGoalOther       PrimaryGoal = "other"
)

func PrimaryGoalFromString(s string) PrimaryGoal {
	switch PrimaryGoal(s) {
	case PrimaryGoalFundraising, PrimaryGoalClients, PrimaryGoalCofounder,
		PrimaryGoalHiring, PrimaryGoalLearn, PrimaryGoalOther:
		return PrimaryGoal(s)
	default:
		return PrimaryGoalUnknown
	}
}

func (g PrimaryGoal) String() string { return string(g) }

// Valid reports whether the goal is one of the known values or unset.
func (g PrimaryGoal) Valid() bool {
	return g == PrimaryGoalUnknown || PrimaryGoalFromString(string(g)) != PrimaryGoalUnknown
}

package entity

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusUnknown   GoalStatus = ""
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
	GoalStatusCancelled GoalStatus = "cancelled"
)

func GoalStatusFromString(s string) GoalStatus {
	switch s {
	case "active":
		return GoalStatusActive
	case "completed":
		return GoalStatusCompleted
	case "archived":
		return GoalStatusArchived
	case "cancelled":
		return GoalStatusCancelled
	default:
		return GoalStatusUnknown
	}
}

func (g GoalStatus) String() string {
	return string(g)
}

func (g GoalStatus) Valid() bool {
	return g != GoalStatusUnknown
}

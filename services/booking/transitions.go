package booking

import "hireme/models"

// edge is one permitted status transition.
type edge struct {
	from models.BookingStatus
	to   models.BookingStatus
}

// allowedTransitions is the full status graph, with the roles permitted to
// request each edge. PENDING -> ACCEPTED -> IN_PROGRESS -> COMPLETED is the
// happy path; CANCELLED is reachable from PENDING only, by either side.
// DISPUTED has no edge here and is reachable only through ForceStatus.
var allowedTransitions = map[edge][]models.Role{
	{models.StatusPending, models.StatusAccepted}:     {models.RoleProvider},
	{models.StatusPending, models.StatusCancelled}:    {models.RoleProvider, models.RoleCustomer},
	{models.StatusAccepted, models.StatusInProgress}:  {models.RoleProvider},
	{models.StatusInProgress, models.StatusCompleted}: {models.RoleProvider},
}

// CanTransition reports whether actor may move a booking from one status to
// another.
func CanTransition(from, to models.BookingStatus, actor models.Role) bool {
	roles, ok := allowedTransitions[edge{from, to}]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == actor {
			return true
		}
	}
	return false
}

package model

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID  int64
	Email   string
	Role    string
	IsStaff bool
}

// CanModify reports whether the caller may change a record owned by ownerID.
func (sc Scope) CanModify(ownerID int64) bool {
	return sc.IsStaff || sc.UserID == ownerID
}

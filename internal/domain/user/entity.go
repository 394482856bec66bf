package user

type Role string

const (
	RoleOwner    Role = "owner"    // full company access
	RoleManager  Role = "manager"  // can review leave and correct punches
	RoleEmployee Role = "employee" // self-service only
)

func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleManager
}

package entities

type RoleType string

const (
	RoleSuperAdmin RoleType = "super_admin"
	RoleAdmin      RoleType = "admin"
	RoleDriver     RoleType = "driver"
	RoleUser       RoleType = "user"
)

func (r RoleType) String() string {
	return string(r)
}

// Actor - аутентифицированный вызывающий. Ядро не лезет в сессию само,
// актор передается явным параметром в каждую операцию.
type Actor struct {
	UserID     int64
	EmployeeID *int64
	Role       RoleType
}

func (a Actor) IsDriver() bool {
	return a.Role == RoleDriver
}

// CanAdministrate - доступ к административным операциям над карточками.
func (a Actor) CanAdministrate() bool {
	return a.Role == RoleSuperAdmin || a.Role == RoleAdmin
}

// IsSuperAdmin - заведение новых карточек доступно только диспетчеру.
func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// OwnsJobCard сообщает, закреплена ли карточка за этим водителем.
func (a Actor) OwnsJobCard(jobCard *JobCard) bool {
	if jobCard == nil || a.EmployeeID == nil {
		return false
	}
	return jobCard.DriverID == *a.EmployeeID
}

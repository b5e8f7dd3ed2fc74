package entity

import "strconv"

type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeManager  UserType = "gestor"
	UserTypeSupplier UserType = "fornecedor"
)

type User struct {
	ID         int64
	Name       string
	Email      string
	Type       UserType
	UnitID     int64
	SupplierID int64
}

func (u User) String() string {
	return strconv.FormatInt(u.ID, 10) + " <" + u.Email + ">"
}

// CanIssue reports whether the user may create requisitions.
func (u User) CanIssue() bool {
	return u.Type == UserTypeAdmin || u.Type == UserTypeManager
}

// CanSettle reports whether the user may redeem vouchers at a station.
func (u User) CanSettle() bool {
	return u.Type == UserTypeAdmin || u.Type == UserTypeSupplier
}

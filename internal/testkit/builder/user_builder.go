package builder

import (
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"
)

type UserBuilder struct {
	ID    int64
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    200,
		Name:  "Boris",
		Email: "boris@example.com",
	}
}

func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (u *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}

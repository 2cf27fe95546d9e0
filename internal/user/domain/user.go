package domain

type User struct {
	Username string
	Password string
}

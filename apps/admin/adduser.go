package main

import (
	"fmt"

	"github.com/jjyf27/redpro/core/user"
)

func (cli *commandLine) addUser(firstName, lastName, email, phone, pwd string) error {
	usr, err := cli.usrSvc.Register(user.NewUser{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           phone,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		return err
	}
	fmt.Printf("user %d %q added\n", usr.ID, usr.Email)
	return nil
}

package users

import (
	"errors"
	"strings"
)

// ValidateRegister normalizes and checks a registration payload
func ValidateRegister(req *RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errors.New("please provide all fields")
	}

	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	if req.Role == "" {
		req.Role = RoleUser
	}
	if req.Role != RoleUser && req.Role != RolePublisher && req.Role != RoleAdmin {
		return errors.New("role must be one of: user, publisher, admin")
	}

	return nil
}

// ValidateLogin checks a login payload
func ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" {
		return errors.New("please provide an email and the password")
	}

	return nil
}

// ValidateUpdateDetails checks a profile update payload
func ValidateUpdateDetails(req *UpdateDetailsRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" && req.Email == "" {
		return errors.New("nothing to update")
	}

	return nil
}

package types

import "fmt"

// Required-field presence checks only; the server stays the authority on
// everything else. Pagination parameters are deliberately not checked: the
// client forwards skip/limit exactly as given.

// ValidateCredentials rejects empty username or password before any request
// is sent.
func ValidateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	return nil
}

// ValidateAccessToken rejects an empty bearer token.
func ValidateAccessToken(token string) error {
	if token == "" {
		return fmt.Errorf("access token must not be empty")
	}
	return nil
}

// ValidateID rejects non-positive identifiers. name appears in the error
// message ("poll id", "option id").
func ValidateID(id int, name string) error {
	if id <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, id)
	}
	return nil
}

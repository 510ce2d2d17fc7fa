package domain

// Admin is the single operator account allowed to manage the directory.
type Admin struct {
	Username     string
	PasswordHash string
}

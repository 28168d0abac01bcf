package service

// AdminService validates the shared admin secret.
type AdminService interface {
	ValidatePassword(candidate string) bool
}

type AdminConfig interface {
	AdminPassword() string
}

type Admin struct {
	cfg AdminConfig
}

func NewAdmin(cfg AdminConfig) AdminService {
	return &Admin{cfg}
}

// ValidatePassword returns true only when both a candidate and a configured
// secret are present and equal. Absence of either yields false, never an
// error. The secret is a deployment-level shared password, not a per-user
// credential, so comparison is plain equality.
func (a *Admin) ValidatePassword(candidate string) bool {
	if candidate == "" {
		return false
	}
	secret := a.cfg.AdminPassword()
	if secret == "" {
		return false
	}
	return candidate == secret
}

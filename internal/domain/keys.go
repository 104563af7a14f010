package domain

type CtxKey string

const (
	KeyAdminUsername CtxKey = "AdminUsername"
	KeyAdminRole     CtxKey = "AdminRole"
)

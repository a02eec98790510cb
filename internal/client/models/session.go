package models

// Credential is the bearer-token pair returned by the login endpoint.
type Credential struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether the credential carries no access token.
func (c Credential) Empty() bool {
	return c.Access == ""
}

// Identity is derived from the access token's claims. It is never
// persisted on its own.
type Identity struct {
	UserID    int
	Username  string
	IsStaff   bool
	IsFaculty bool
}

// RegisterRequest is the payload of the self-registration endpoint.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ReportKind selects one of the server-rendered PDF documents.
type ReportKind string

const (
	ReportSummary    ReportKind = "summary"
	ReportEvaluation ReportKind = "evaluation"
)

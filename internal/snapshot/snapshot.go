// Package snapshot defines the ledger's record types and the aggregate
// snapshot that is the sole unit of persistence. Every component reads from
// and writes to one snapshot value; there is no other source of truth.
package snapshot

import "time"

// Role is a capability tag on a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleInspector Role = "inspector"
)

// Kind identifies what sort of answer a checklist question collects.
type Kind string

const (
	KindYesNo    Kind = "yesno"
	KindText     Kind = "text"
	KindPhoto    Kind = "photo"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindMultiple Kind = "multiple"
	KindChoice   Kind = "choice"
)

// ValidKind reports whether k is one of the supported question kinds.
func ValidKind(k Kind) bool {
	switch k {
	case KindYesNo, KindText, KindPhoto, KindNumber, KindDate, KindMultiple, KindChoice:
		return true
	}
	return false
}

// User is an identity consumed from the identity provider. The ledger never
// authenticates; it only reads id, email/name and role tags.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Roles []Role `json:"roles"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// DisplayName returns the user's name, falling back to email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// TemplateItem is one question definition within a template.
type TemplateItem struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type"`
	Label    string   `json:"label"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Template is a reusable checklist definition. Item order is significant and
// is preserved verbatim into every inspection derived from it.
type Template struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Site              string         `json:"site,omitempty"`
	Instructions      string         `json:"instructions,omitempty"`
	LogoRef           string         `json:"logo_url,omitempty"`
	SignatureRequired bool           `json:"signature_required,omitempty"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	Items             []TemplateItem `json:"items"`
}

// Inspection lifecycle states.
const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// InspectionItem is one answered question within an inspection run. Kind and
// label are copied from the template item at run time so a later template
// edit never retroactively alters a submitted inspection.
type InspectionItem struct {
	ID    string   `json:"id"`
	QID   string   `json:"qid"`
	Kind  Kind     `json:"type"`
	Label string   `json:"label"`
	Value any      `json:"value,omitempty"`
	Pass  *bool    `json:"pass,omitempty"`
	Media []string `json:"media,omitempty"`
}

// Inspection is one run of a template. Template name and site are
// denormalized so the record stays readable after the template is edited or
// deleted.
type Inspection struct {
	ID           string           `json:"id"`
	TemplateID   string           `json:"templateId"`
	TemplateName string           `json:"templateName"`
	Site         string           `json:"site,omitempty"`
	Status       string           `json:"status"`
	StartedAt    time.Time        `json:"startedAt"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty"`
	Score        *int             `json:"score,omitempty"`
	OwnerID      string           `json:"ownerId,omitempty"`
	OwnerName    string           `json:"ownerName,omitempty"`
	Signature    string           `json:"signature,omitempty"`
	Items        []InspectionItem `json:"items"`
}

// Action priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Action statuses.
const (
	ActionOpen       = "open"
	ActionInProgress = "in_progress"
	ActionResolved   = "resolved"
	ActionVerified   = "verified"
)

// ValidPriority reports whether p is a known action priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ValidActionStatus reports whether s is a known action status.
func ValidActionStatus(s string) bool {
	switch s {
	case ActionOpen, ActionInProgress, ActionResolved, ActionVerified:
		return true
	}
	return false
}

// Action is a remediation task. Inspection and item references are soft: a
// missing referent is tolerated and rendered as "—", never an error.
type Action struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	InspectionID string    `json:"inspectionId,omitempty"`
	ItemID       string    `json:"itemId,omitempty"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	DueDate      string    `json:"dueDate,omitempty"`
	Assignee     string    `json:"assignee,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	OwnerID      string    `json:"ownerId,omitempty"`
}

// Snapshot is the full in-memory state at a point in time: the sole unit of
// persistence and the only thing the store ever writes.
type Snapshot struct {
	Users         []User       `json:"users"`
	CurrentUserID string       `json:"currentUserId,omitempty"`
	Templates     []Template   `json:"templates"`
	Inspections   []Inspection `json:"inspections"`
	Actions       []Action     `json:"actions"`
}

// UserByID returns the user with the given id, or nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// CurrentUser returns the active user, falling back to the first user when
// the pointer is unset or dangling (the seed guarantees at least one user).
func (s *Snapshot) CurrentUser() *User {
	if u := s.UserByID(s.CurrentUserID); u != nil {
		return u
	}
	if len(s.Users) > 0 {
		return &s.Users[0]
	}
	return nil
}

// TemplateByID returns the template with the given id, or nil.
func (s *Snapshot) TemplateByID(id string) *Template {
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i]
		}
	}
	return nil
}

// InspectionByID returns the inspection with the given id, or nil.
func (s *Snapshot) InspectionByID(id string) *Inspection {
	for i := range s.Inspections {
		if s.Inspections[i].ID == id {
			return &s.Inspections[i]
		}
	}
	return nil
}

// ActionByID returns the action with the given id, or nil.
func (s *Snapshot) ActionByID(id string) *Action {
	for i := range s.Actions {
		if s.Actions[i].ID == id {
			return &s.Actions[i]
		}
	}
	return nil
}

package domain

import (
	"strings"
	"time"
)

// Department is the owning department of a use case. The value set is closed;
// nothing outside it is ever persisted.
type Department string

const (
	DepartmentMarketing   Department = "Marketing"
	DepartmentRnD         Department = "R&D"
	DepartmentProcurement Department = "Procurement"
	DepartmentIT          Department = "IT"
	DepartmentHR          Department = "HR"
	DepartmentOperations  Department = "Operations"
)

// Status is the lifecycle stage of a use case, ordered from idea to retirement.
type Status string

const (
	StatusIdeation      Status = "Ideation"
	StatusPreEvaluation Status = "Pre-Evaluation"
	StatusEvaluation    Status = "Evaluation"
	StatusPoC           Status = "PoC"
	StatusMVP           Status = "MVP"
	StatusLive          Status = "Live"
	StatusArchived      Status = "Archived"
)

// ValidDepartments returns the closed department set in display order.
func ValidDepartments() []Department {
	return []Department{
		DepartmentMarketing,
		DepartmentRnD,
		DepartmentProcurement,
		DepartmentIT,
		DepartmentHR,
		DepartmentOperations,
	}
}

// ValidStatuses returns the closed status set in lifecycle order.
func ValidStatuses() []Status {
	return []Status{
		StatusIdeation,
		StatusPreEvaluation,
		StatusEvaluation,
		StatusPoC,
		StatusMVP,
		StatusLive,
		StatusArchived,
	}
}

func (d Department) Valid() bool {
	for _, v := range ValidDepartments() {
		if d == v {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	for _, v := range ValidStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// DepartmentList renders the closed department set for validation messages.
func DepartmentList() string {
	parts := make([]string, 0, len(ValidDepartments()))
	for _, d := range ValidDepartments() {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ", ")
}

// StatusList renders the closed status set for validation messages.
func StatusList() string {
	parts := make([]string, 0, len(ValidStatuses()))
	for _, s := range ValidStatuses() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// UseCase represents a tracked innovation record.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type UseCase struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	ShortDescription  string            `json:"short_description"`
	FullDescription   string            `json:"full_description"`
	Department        Department        `json:"department"`
	Status            Status            `json:"status"`
	OwnerName         string            `json:"owner_name"`
	OwnerEmail        string            `json:"owner_email"`
	BusinessImpact    *string           `json:"business_impact"`
	TechnologyStack   []string          `json:"technology_stack"`
	Tags              []string          `json:"tags"`
	InternalLinks     map[string]string `json:"internal_links"`
	RelatedUseCaseIDs []string          `json:"related_use_case_ids"`
	ApplicationURL    *string           `json:"application_url"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CreateUseCaseRequest carries the payload for creating a use case.
// The id and timestamps are assigned by the repository, never by the caller.
type CreateUseCaseRequest struct {
	Title             string            `json:"title"`
	ShortDescription  string            `json:"short_description"`
	FullDescription   string            `json:"full_description"`
	Department        Department        `json:"department"`
	Status            Status            `json:"status"`
	OwnerName         string            `json:"owner_name"`
	OwnerEmail        string            `json:"owner_email"`
	BusinessImpact    *string           `json:"business_impact,omitempty"`
	TechnologyStack   []string          `json:"technology_stack"`
	Tags              []string          `json:"tags"`
	InternalLinks     map[string]string `json:"internal_links"`
	RelatedUseCaseIDs []string          `json:"related_use_case_ids,omitempty"`
	ApplicationURL    *string           `json:"application_url,omitempty"`
}

// UpdateUseCaseRequest carries a partial update. A nil field means "leave the
// stored value unchanged"; only non-nil fields overwrite.
type UpdateUseCaseRequest struct {
	Title             *string           `json:"title,omitempty"`
	ShortDescription  *string           `json:"short_description,omitempty"`
	FullDescription   *string           `json:"full_description,omitempty"`
	Department        *Department       `json:"department,omitempty"`
	Status            *Status           `json:"status,omitempty"`
	OwnerName         *string           `json:"owner_name,omitempty"`
	OwnerEmail        *string           `json:"owner_email,omitempty"`
	BusinessImpact    *string           `json:"business_impact,omitempty"`
	TechnologyStack   []string          `json:"technology_stack,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	InternalLinks     map[string]string `json:"internal_links,omitempty"`
	RelatedUseCaseIDs []string          `json:"related_use_case_ids,omitempty"`
	ApplicationURL    *string           `json:"application_url,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateUseCaseRequest) Empty() bool {
	return r.Title == nil &&
		r.ShortDescription == nil &&
		r.FullDescription == nil &&
		r.Department == nil &&
		r.Status == nil &&
		r.OwnerName == nil &&
		r.OwnerEmail == nil &&
		r.BusinessImpact == nil &&
		r.TechnologyStack == nil &&
		r.Tags == nil &&
		r.InternalLinks == nil &&
		r.RelatedUseCaseIDs == nil &&
		r.ApplicationURL == nil
}

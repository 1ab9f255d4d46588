// Package validation holds the pure payload checks that gate use-case
// mutation. Rules run in a fixed order and the first violation wins.
package validation

import (
	"regexp"
	"strings"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCreate checks a create payload. It returns the first violated
// rule's message, never an aggregate.
func ValidateCreate(req domain.CreateUseCaseRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return domain.NewValidationError("Title is required")
	}

	if strings.TrimSpace(req.ShortDescription) == "" {
		return domain.NewValidationError("Short description is required")
	}

	if strings.TrimSpace(req.FullDescription) == "" {
		return domain.NewValidationError("Full description is required")
	}

	if !req.Department.Valid() {
		return domain.NewValidationError("Invalid department. Must be one of: " + domain.DepartmentList())
	}

	if !req.Status.Valid() {
		return domain.NewValidationError("Invalid status. Must be one of: " + domain.StatusList())
	}

	if strings.TrimSpace(req.OwnerName) == "" {
		return domain.NewValidationError("Owner name is required")
	}

	if !emailPattern.MatchString(req.OwnerEmail) {
		return domain.NewValidationError("Valid owner email is required")
	}

	// A missing or null JSON array decodes to nil; a present array, even an
	// empty one, does not.
	if req.TechnologyStack == nil {
		return domain.NewValidationError("Technology stack must be an array")
	}

	if req.Tags == nil {
		return domain.NewValidationError("Tags must be an array")
	}

	if req.InternalLinks == nil {
		return domain.NewValidationError("Internal links must be an object")
	}

	return nil
}

// ValidateUpdate checks a partial update payload. Absent (nil) fields are
// skipped; present fields must satisfy the same rules as on create.
func ValidateUpdate(req domain.UpdateUseCaseRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return domain.NewValidationError("Title is required")
	}

	if req.ShortDescription != nil && strings.TrimSpace(*req.ShortDescription) == "" {
		return domain.NewValidationError("Short description is required")
	}

	if req.FullDescription != nil && strings.TrimSpace(*req.FullDescription) == "" {
		return domain.NewValidationError("Full description is required")
	}

	if req.Department != nil && !req.Department.Valid() {
		return domain.NewValidationError("Invalid department. Must be one of: " + domain.DepartmentList())
	}

	if req.Status != nil && !req.Status.Valid() {
		return domain.NewValidationError("Invalid status. Must be one of: " + domain.StatusList())
	}

	if req.OwnerName != nil && strings.TrimSpace(*req.OwnerName) == "" {
		return domain.NewValidationError("Owner name is required")
	}

	if req.OwnerEmail != nil && !emailPattern.MatchString(*req.OwnerEmail) {
		return domain.NewValidationError("Invalid email format")
	}

	return nil
}

package domain

// Event types published by the lifecycle service.
const (
	EventUseCaseCreated = "useCase.created"
	EventUseCaseUpdated = "useCase.updated"
	EventUseCaseDeleted = "useCase.deleted"
)

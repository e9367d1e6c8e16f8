package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWorkspaceName names the workspace created at first login
const DefaultWorkspaceName = "My Plan"

// Workspace scopes a user's plan; every plan read and write goes through its id
type Workspace struct {
	ID        int32     `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWorkspace returns the default workspace of a user
func NewWorkspace(userID uuid.UUID) *Workspace {
	return &Workspace{UserID: userID, Name: DefaultWorkspaceName}
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	GetByUserID(userID uuid.UUID) (*Workspace, error)
	GetByUserAuth0ID(auth0ID string) (*Workspace, error)
	Create(workspace *Workspace) (*Workspace, error)
}

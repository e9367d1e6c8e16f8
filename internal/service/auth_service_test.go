package service

import (
	"errors"
	"testing"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/google/uuid"
)

func TestAuthenticateUser_NewUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	planRepo := testutil.NewMockPlanRepository()
	service := NewAuthService(userRepo, workspaceRepo, planRepo)

	name := "Test User"
	result, err := service.AuthenticateUser("auth0|12345", "test@example.com", &name)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.IsNewUser {
		t.Error("Expected IsNewUser to be true for new user")
	}
	if result.User.Auth0ID != "auth0|12345" {
		t.Errorf("Expected auth0ID auth0|12345, got %s", result.User.Auth0ID)
	}
	if result.Workspace == nil {
		t.Fatal("Expected workspace, got nil")
	}
	if result.Workspace.Name != domain.DefaultWorkspaceName {
		t.Errorf("Expected workspace name %q, got %s", domain.DefaultWorkspaceName, result.Workspace.Name)
	}

	plan, err := planRepo.GetByWorkspace(result.Workspace.ID)
	if err != nil {
		t.Fatalf("Expected default plan to be seeded, got %v", err)
	}
	if len(plan.Goals) != len(domain.PredefinedGoals) {
		t.Errorf("Expected %d goals, got %d", len(domain.PredefinedGoals), len(plan.Goals))
	}
}

func TestAuthenticateUser_ExistingUser(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	planRepo := testutil.NewMockPlanRepository()
	service := NewAuthService(userRepo, workspaceRepo, planRepo)

	user := &domain.User{ID: uuid.New(), Auth0ID: "auth0|existing", Email: "existing@example.com"}
	userRepo.AddUser(user)
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 4, UserID: user.ID, Name: "My Workspace"}, user.Auth0ID)

	result, err := service.AuthenticateUser(user.Auth0ID, user.Email, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.IsNewUser {
		t.Error("Expected IsNewUser to be false for existing user")
	}
	if result.Workspace.ID != 4 {
		t.Errorf("Expected workspace 4, got %d", result.Workspace.ID)
	}
	if planRepo.SaveCalls != 0 {
		t.Errorf("Expected no plan to be seeded, got %d saves", planRepo.SaveCalls)
	}
}

func TestAuthenticateUser_UserRepoError(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.CreateFn = func(auth0ID, email string, name *string) (*domain.User, error) {
		return nil, errors.New("db down")
	}
	service := NewAuthService(userRepo, testutil.NewMockWorkspaceRepository(), testutil.NewMockPlanRepository())

	if _, err := service.AuthenticateUser("auth0|x", "x@example.com", nil); err == nil {
		t.Error("Expected error when user repository fails")
	}
}

func TestAuthenticateUser_PlanSeedError(t *testing.T) {
	planRepo := testutil.NewMockPlanRepository()
	planRepo.SaveErr = errors.New("insert failed")
	service := NewAuthService(testutil.NewMockUserRepository(), testutil.NewMockWorkspaceRepository(), planRepo)

	if _, err := service.AuthenticateUser("auth0|x", "x@example.com", nil); err == nil {
		t.Error("Expected error when seeding the plan fails")
	}
}

func TestGetWorkspaceByAuth0ID(t *testing.T) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 9, UserID: uuid.New()}, "auth0|ws")
	service := NewAuthService(testutil.NewMockUserRepository(), workspaceRepo, testutil.NewMockPlanRepository())

	ws, err := service.GetWorkspaceByAuth0ID("auth0|ws")
	if err != nil || ws.ID != 9 {
		t.Errorf("Expected workspace 9, got %v (err %v)", ws, err)
	}

	if _, err := service.GetWorkspaceByAuth0ID("auth0|missing"); !errors.Is(err, domain.ErrWorkspaceNotFound) {
		t.Errorf("Expected ErrWorkspaceNotFound, got %v", err)
	}
}

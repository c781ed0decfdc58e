package auth

import (
	"context"
	"errors"
	"slices"

	"github.com/dmehra2102/todoboard/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user_context"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type UserContext struct {
	UserID string
	Roles  []string
}

// ContextWithUserContext adds user context to the context
func ContextWithUserContext(ctx context.Context, userCtx *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, userCtx)
}

// UserContextFromContext extracts user context from the context
func UserContextFromContext(ctx context.Context) (*UserContext, error) {
	userCtx, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || userCtx == nil {
		return nil, errors.New("user context not found")
	}
	return userCtx, nil
}

type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// CanCreate reports whether the caller may create lists. Tokens without any
// role are treated as plain users.
func (a *Authorizer) CanCreate(userCtx *UserContext) bool {
	return len(userCtx.Roles) == 0 || hasRole(userCtx, RoleUser) || hasRole(userCtx, RoleAdmin)
}

// CanAccessList covers reads and writes of the list and every item in it.
func (a *Authorizer) CanAccessList(userCtx *UserContext, list *domain.TodoList) bool {
	if hasRole(userCtx, RoleAdmin) {
		return true
	}
	return list.OwnerID == userCtx.UserID
}

// CanDeleteList is owner-only; admins cannot delete someone else's list.
func (a *Authorizer) CanDeleteList(userCtx *UserContext, list *domain.TodoList) bool {
	return list.OwnerID == userCtx.UserID
}

func hasRole(userCtx *UserContext, role string) bool {
	return slices.Contains(userCtx.Roles, role)
}

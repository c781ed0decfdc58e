package auth

import (
	"context"
	"testing"

	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserContextRoundTrip(t *testing.T) {
	_, err := UserContextFromContext(context.Background())
	require.Error(t, err)

	ctx := ContextWithUserContext(context.Background(), &UserContext{UserID: "u1", Roles: []string{RoleUser}})
	userCtx, err := UserContextFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", userCtx.UserID)
}

func TestAuthorizer(t *testing.T) {
	a := NewAuthorizer()
	list := &domain.TodoList{ID: "l1", OwnerID: "owner"}

	owner := &UserContext{UserID: "owner", Roles: []string{RoleUser}}
	stranger := &UserContext{UserID: "someone", Roles: []string{RoleUser}}
	admin := &UserContext{UserID: "root", Roles: []string{RoleAdmin}}
	guest := &UserContext{UserID: "guest", Roles: []string{"viewer"}}

	assert.True(t, a.CanAccessList(owner, list))
	assert.False(t, a.CanAccessList(stranger, list))
	assert.True(t, a.CanAccessList(admin, list))

	assert.True(t, a.CanDeleteList(owner, list))
	assert.False(t, a.CanDeleteList(admin, list))

	assert.True(t, a.CanCreate(owner))
	assert.True(t, a.CanCreate(&UserContext{UserID: "bare"}))
	assert.False(t, a.CanCreate(guest))
}

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickify/tickify/internal/domain/account"
	"github.com/tickify/tickify/internal/domain/session"
	"github.com/tickify/tickify/internal/domain/ticket"
	"github.com/tickify/tickify/internal/repository"
	"github.com/tickify/tickify/internal/store"
)

func TestCredentialRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	repo := repository.NewCredentialRepository(st)

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	cred := &account.Credential{Email: "a@b.com", Password: "secret1"}
	require.NoError(t, repo.Put(ctx, cred))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, cred, loaded)
}

func TestCredentialRepository_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCredentialRepository(store.NewMemory())

	require.NoError(t, repo.Put(ctx, &account.Credential{Email: "first@b.com", Password: "secret1"}))
	require.NoError(t, repo.Put(ctx, &account.Credential{Email: "second@b.com", Password: "secret2"}))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "second@b.com", loaded.Email)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSessionRepository(store.NewMemory())

	_, err := repo.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, repo.Put(ctx, &session.Session{Email: "a@b.com"}))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", loaded.Email)

	require.NoError(t, repo.Delete(ctx))
	_, err = repo.Get(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTicketRepository_EmptyStoreListsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTicketRepository(store.NewMemory())

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tickets)
}

func TestTicketRepository_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTicketRepository(store.NewMemory())

	saved := []ticket.Ticket{
		{ID: 3, Title: "third", Status: ticket.StatusOpen},
		{ID: 1, Title: "first", Status: ticket.StatusClosed},
		{ID: 2, Title: "second", Status: ticket.StatusInProgress},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestTicketRepository_SaveNilClearsCollection(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTicketRepository(store.NewMemory())

	require.NoError(t, repo.Save(ctx, []ticket.Ticket{{ID: 1, Title: "one", Status: ticket.StatusOpen}}))
	require.NoError(t, repo.Save(ctx, nil))

	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, loaded)
}

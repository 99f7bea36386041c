package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"interviewlog/internal/domain/repository"
	mockRepo "interviewlog/internal/mocks/repository"
)

// newPassthroughTxManager returns a transaction manager whose Execute simply
// runs the given function against the provided factory, with no real
// transaction underneath.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardapio-admin-svc/internal/models"
	"cardapio-admin-svc/internal/repository"
	"cardapio-admin-svc/pkg/logger"
)

func TestOperationLogService_ListTranslatesPage(t *testing.T) {
	repo := newFakeLogRepo()
	auditor := NewAuditor(repo, logger.NewNop())
	auditor.Start(models.OpBulkDelete, "Deleting 2 items", 1).Finish(models.OperationSuccess, "done", nil)
	svc := NewOperationLogService(repo)

	filter := repository.OperationLogFilter{OperationCode: models.OpBulkDelete}
	logs, total, err := svc.List(filter, 3, 20)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, filter, repo.lastFilter)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 40, repo.lastOffset)
}

func TestOperationLogService_Get(t *testing.T) {
	repo := newFakeLogRepo()
	op := NewAuditor(repo, logger.NewNop()).Start(models.OpGuestImport, "Importing", 0)
	op.Finish(models.OperationPartial, "1 of 2", nil)
	svc := NewOperationLogService(repo)

	log, err := svc.Get(op.DocumentID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationPartial, log.Status)

	_, err = svc.Get("missing")
	assert.Error(t, err)
}

package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().CreateMapping(gomock.Any(), "PIX RECEBIDO", "Sinal de venda").Return(nil)

	require.NoError(t, svc.Learn(context.Background(), "  PIX RECEBIDO ", " Sinal de venda "))
}

func TestService_Learn_EmptyPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(NewMockRepository(ctrl))

	assert.ErrorIs(t, svc.Learn(context.Background(), "   ", "x"), ErrEmptyPattern)
	assert.ErrorIs(t, svc.Learn(context.Background(), "x", ""), ErrEmptyPattern)
}

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().FindMatch(gomock.Any(), "PIX RECEBIDO JOAO").Return("Sinal de venda", nil)

	got, err := svc.Suggest(context.Background(), "PIX RECEBIDO JOAO")
	require.NoError(t, err)
	assert.Equal(t, "Sinal de venda", got)
}

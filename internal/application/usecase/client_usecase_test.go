package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain"
)

func TestClientCreateDefaultsStatusToActive(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	out, err := uc.Create(dto.CreateClientRequest{
		Name:     "Skyline Airways",
		Industry: "airlines",
		Email:    "ops@skyline.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status)
	assert.NotEmpty(t, out.ID)
	assert.NotNil(t, repo.clients[out.ID])
}

func TestClientCreateValidation(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	tests := []struct {
		name string
		in   dto.CreateClientRequest
	}{
		{"missing name", dto.CreateClientRequest{Industry: "airlines"}},
		{"missing industry", dto.CreateClientRequest{Name: "Acme"}},
		{"unknown industry", dto.CreateClientRequest{Name: "Acme", Industry: "mining"}},
		{"unknown status", dto.CreateClientRequest{Name: "Acme", Industry: "airlines", Status: "paused"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestClientGetByIDMissing(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClientRepo())

	_, err := uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUpdateRoundTrip(t *testing.T) {
	repo := newFakeClientRepo()
	uc := usecase.NewClientUseCase(repo)

	out, err := uc.Create(dto.CreateClientRequest{Name: "Acme", Industry: "airlines"})
	require.NoError(t, err)

	updated, err := uc.Update(out.ID, dto.UpdateClientRequest{
		Name:     "Acme Travel",
		Industry: "travel_agency",
		Status:   "inactive",
		GSTTaxID: "GST-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Travel", updated.Name)
	assert.Equal(t, "inactive", repo.clients[out.ID].Status)
	assert.Equal(t, "GST-42", repo.clients[out.ID].GSTTaxID)
}

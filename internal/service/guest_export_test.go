package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cardapio-admin-svc/internal/cardapio"
	"cardapio-admin-svc/internal/models"
)

func TestPromoter_ExportGuests(t *testing.T) {
	api := newFakePromoterAPI()
	api.guests[17] = []models.Guest{
		{ID: 1, GuestListID: 17, Name: "Ana", WhatsApp: "011999990000"},
		{ID: 2, GuestListID: 17, Name: "Bruno", CheckedIn: true},
	}
	svc := newPromoterService(api, newFakeLogRepo())

	data, filename, err := svc.ExportGuests(context.Background(), 17)
	require.NoError(t, err)
	assert.Regexp(t, `^convidados_17_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{guestSheet}, f.GetSheetList())
	rows, err := f.GetRows(guestSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"No", "Nome", "WhatsApp", "Check-in"}, rows[0])
	assert.Equal(t, []string{"1", "Ana", "011999990000", "Não"}, rows[1])
	assert.Equal(t, "Bruno", rows[2][1])
	assert.Equal(t, "Sim", rows[2][3])
}

func TestPromoter_ExportGuestsRequiresList(t *testing.T) {
	svc := newPromoterService(newFakePromoterAPI(), newFakeLogRepo())

	_, _, err := svc.ExportGuests(context.Background(), 0)
	assert.True(t, cardapio.IsValidation(err))
}

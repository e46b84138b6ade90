package commands_test

import (
	"testing"

	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(partnerID, []commands.ItemLine{
		{Product: "Steel beam", Quantity: 2, UnitPrice: kernel.MustMoneyFromString("1500.00")},
		{Product: "Bolt kit", Quantity: 3, UnitPrice: kernel.MustMoneyFromString("0.3333")},
	}, "dock 3")
	require.NoError(t, err)

	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.PartnerID().IsEqual(partnerID))
	assert.Equal(t, "dock 3", cmd.Notes())
	require.Len(t, cmd.Items(), 2)
	assert.Equal(t, "3000.00", cmd.Items()[0].Subtotal().String())
	assert.Equal(t, "1.00", cmd.Items()[1].Subtotal().String())
}

func TestNewCreateOrderCommand_EmptyItemsAreAccepted(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(partnerID, nil, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.PublicID{}, []commands.ItemLine{
		{Product: "", Quantity: 0, UnitPrice: kernel.ZeroMoney()},
	}, "")
	require.Error(t, err)

	assert.ErrorIs(t, err, kernel.ErrPublicIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "item 0")
}

func TestCreateOrderCommand_ZeroValueIsNotValid(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

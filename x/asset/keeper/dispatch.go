package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/paw-chain/vault-network/x/asset/types"
)

// Dispatch executes msg on behalf of sender. Bank sends go through the bank
// keeper and contract executions through the wasm keeper.
func (k Keeper) Dispatch(ctx context.Context, sender string, msg types.CosmosMsg) (err error) {
	msgType := "wasm"
	if msg.Bank != nil {
		msgType = "bank"
	}
	ctx, span := startSpan(ctx, "asset.Dispatch",
		attribute.String("type", msgType),
		attribute.String("sender", sender),
	)
	defer func() {
		k.metrics.MessagesDispatched.WithLabelValues(msgType, statusLabel(err)).Inc()
		endSpan(span, err)
	}()

	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	senderAddr, err := k.accAddress(sender)
	if err != nil {
		return err
	}

	if msg.Bank != nil {
		send := msg.Bank.Send
		toAddr, err := k.accAddress(send.ToAddress)
		if err != nil {
			return err
		}
		if err := k.bankKeeper.SendCoins(ctx, senderAddr, toAddr, send.Amount); err != nil {
			k.logger.Error("bank send failed", "from", sender, "to", send.ToAddress, "amount", send.Amount, "error", err)
			return errorsmod.Wrap(err, "bank send")
		}
		return nil
	}

	exec := msg.Wasm.Execute
	contractAddr, err := k.accAddress(exec.ContractAddr)
	if err != nil {
		return err
	}
	if _, err := k.wasmKeeper.Execute(ctx, contractAddr, senderAddr, exec.Msg, exec.Funds); err != nil {
		k.logger.Error("contract execute failed", "contract", exec.ContractAddr, "sender", sender, "error", err)
		return errorsmod.Wrap(err, "contract execute")
	}
	return nil
}

// Transfer moves asset from sender to recipient.
func (k Keeper) Transfer(ctx context.Context, sender, recipient string, asset types.Asset) (err error) {
	msgType := "wasm"
	if asset.IsNativeToken() {
		msgType = "bank"
	}
	defer func() { emitTransferTelemetry(msgType, asset.GetID(), err) }()

	if err := asset.Validate(); err != nil {
		return err
	}

	msg, err := asset.IntoMsg(recipient)
	if err != nil {
		return err
	}
	return k.Dispatch(ctx, sender, msg)
}

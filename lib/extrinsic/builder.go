// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package extrinsic

import (
	"fmt"
	"os"

	"github.com/ChainSafe/subadmin/lib/amount"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Weight is the weight argument given to unchecked weight sudo calls.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
	// Legacy runtimes, before weight v2, take a single u64.
	Legacy bool
}

type weightV2 struct {
	RefTime   types.UCompact
	ProofSize types.UCompact
}

// MinimalWeight returns the unit weight. The weight of a sudo override
// is not accounted so the smallest value is used.
func MinimalWeight(legacy bool) Weight {
	return Weight{RefTime: 1, ProofSize: 1, Legacy: legacy}
}

func (w Weight) encodable() interface{} {
	if w.Legacy {
		return types.NewU64(w.RefTime)
	}
	return weightV2{
		RefTime:   types.NewUCompactFromUInt(w.RefTime),
		ProofSize: types.NewUCompactFromUInt(w.ProofSize),
	}
}

func (w Weight) String() string {
	if w.Legacy {
		return fmt.Sprint(w.RefTime)
	}
	return fmt.Sprintf("{ref_time: %d, proof_size: %d}", w.RefTime, w.ProofSize)
}

// Sudo wraps the call in a privileged sudo envelope.
func Sudo(inner *Call) *Call {
	return NewCall("Sudo", "sudo", inner)
}

// SudoUncheckedWeight wraps the call in a privileged sudo envelope
// bypassing the weight of the inner call.
func SudoUncheckedWeight(inner *Call, weight Weight) *Call {
	return NewCall("Sudo", "sudo_unchecked_weight", inner, weight)
}

// AddAuthority returns the privileged call adding an authority account.
func AddAuthority(who AccountID) *Call {
	return Sudo(NewCall("Creditcoin", "add_authority", who))
}

// Transfer returns the balance transfer call.
func Transfer(to AccountID, value amount.ScaledAmount) *Call {
	return NewCall("Balances", "transfer", Address(to), value)
}

// SetBalance returns the privileged call overriding the free balance of an
// account. The reserved balance is always set to zero.
func SetBalance(who AccountID, free amount.ScaledAmount) *Call {
	var zero amount.ScaledAmount
	return Sudo(NewCall("Balances", "set_balance", Address(who), free, zero))
}

// SetCode returns the privileged call upgrading the runtime code to the
// content of the file at path.
func SetCode(path string, weight Weight) (*Call, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading runtime code: %w", err)
	}

	return SudoUncheckedWeight(NewCall("System", "set_code", code), weight), nil
}

// SwitchToPos returns the privileged call switching consensus to proof of stake.
func SwitchToPos(weight Weight) *Call {
	return SudoUncheckedWeight(NewCall("PosSwitch", "switch_to_pos"), weight)
}

// SetSudoKey returns the privileged call handing the sudo key to another account.
func SetSudoKey(who AccountID) *Call {
	return NewCall("Sudo", "set_key", Address(who))
}
